package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the service logger. Unknown or empty levels fall back to info.
func New(level string) *zerolog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(out io.Writer, level string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	log := zerolog.New(out).
		Level(parsed).
		With().
		Timestamp().
		Str("service", "bank-agent").
		Logger()

	return &log
}
