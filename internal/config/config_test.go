package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func completeEnv() map[string]string {
	return map[string]string{
		"USER_SERVICE":       "userservice",
		"BALANCE_READER":     "balancereader",
		"CONTACTS":           "contacts",
		"PORT":               "8080",
		"CLUSTER_PUBLIC_KEY": "-----BEGIN PUBLIC KEY-----",
		"TIMESTAMP_FORMAT":   "2006-01-02T15:04:05.000000-0700",
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("should build urls and apply defaults", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(completeEnv()))

		require.NoError(t, err)
		assert.Equal(t, "http://userservice:8080", cfg.Services.UserServiceURL())
		assert.Equal(t, "http://balancereader:8080", cfg.Services.BalanceReaderURL())
		assert.Equal(t, "http://contacts:8080", cfg.Services.ContactsURL())
		assert.Equal(t, DefaultServerPort, cfg.ServerPort)
		assert.Equal(t, DefaultAgentModel, cfg.AgentModel)
		assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("should report every missing key", func(t *testing.T) {
		env := completeEnv()
		delete(env, "CONTACTS")
		env["CLUSTER_PUBLIC_KEY"] = "   "

		_, err := FromEnv(lookupFrom(env))

		assert.ErrorIs(t, err, ErrMissingValue)
		assert.Contains(t, err.Error(), "CONTACTS")
		assert.Contains(t, err.Error(), "CLUSTER_PUBLIC_KEY")
		assert.NotContains(t, err.Error(), "USER_SERVICE")
	})

	t.Run("should parse timeout", func(t *testing.T) {
		env := completeEnv()
		env["HTTP_TIMEOUT"] = "1500ms"

		cfg, err := FromEnv(lookupFrom(env))

		require.NoError(t, err)
		assert.Equal(t, 1500*time.Millisecond, cfg.HTTPTimeout)
	})

	t.Run("should reject invalid timeout", func(t *testing.T) {
		env := completeEnv()
		env["HTTP_TIMEOUT"] = "soon"

		_, err := FromEnv(lookupFrom(env))
		assert.ErrorContains(t, err, "HTTP_TIMEOUT")
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")

	content := ""
	for key, value := range completeEnv() {
		content += key + "=" + value + "\n"
	}
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	for key := range completeEnv() {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, "balancereader", cfg.Services.BalanceReader)
}
