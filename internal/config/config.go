package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/client"
	"github.com/joho/godotenv"
)

const (
	DefaultServerPort = "8080"
	DefaultAgentModel = "gemini-2.0-flash"
)

var ErrMissingValue = errors.New("missing configuration value")

type Services struct {
	UserService   string
	BalanceReader string
	Contacts      string
	Port          string
}

func (s Services) UserServiceURL() string {
	return client.BaseURLFor(s.UserService, s.Port)
}

func (s Services) BalanceReaderURL() string {
	return client.BaseURLFor(s.BalanceReader, s.Port)
}

func (s Services) ContactsURL() string {
	return client.BaseURLFor(s.Contacts, s.Port)
}

type Config struct {
	Env        string
	ServerPort string
	LogLevel   string
	AgentModel string

	Services Services

	// PEM encoded key the user service signs tokens with
	ClusterPublicKey string

	// Go reference layout of timestamps sent by the bank services
	TimestampFormat string

	// Zero keeps the client default
	HTTPTimeout time.Duration
}

// Load reads envFile when it exists and then the process environment.
func Load(envFile string) (*Config, error) {
	_ = godotenv.Load(envFile)

	return FromEnv(os.LookupEnv)
}

func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	var missing []error

	required := func(key string) string {
		value, ok := lookup(key)
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, fmt.Errorf("%w: %s", ErrMissingValue, key))
			return ""
		}
		return strings.TrimSpace(value)
	}

	optional := func(key string, fallback string) string {
		value, ok := lookup(key)
		if !ok || strings.TrimSpace(value) == "" {
			return fallback
		}
		return strings.TrimSpace(value)
	}

	cfg := &Config{
		Env:        optional("ENV", "development"),
		ServerPort: optional("SERVER_PORT", DefaultServerPort),
		LogLevel:   optional("LOG_LEVEL", "info"),
		AgentModel: optional("AGENT_MODEL", DefaultAgentModel),
		Services: Services{
			UserService:   required("USER_SERVICE"),
			BalanceReader: required("BALANCE_READER"),
			Contacts:      required("CONTACTS"),
			Port:          required("PORT"),
		},
		ClusterPublicKey: required("CLUSTER_PUBLIC_KEY"),
		TimestampFormat:  required("TIMESTAMP_FORMAT"),
	}

	if raw := optional("HTTP_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout < 0 {
			missing = append(missing, fmt.Errorf("invalid HTTP_TIMEOUT %q", raw))
		}
		cfg.HTTPTimeout = timeout
	}

	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
