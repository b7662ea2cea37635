package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LoggerConfig controls the process-wide logger
type LoggerConfig struct {
	Level  string
	Pretty bool
	Output io.Writer
}

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ConfigureLogger replaces the default logger. Unknown levels fall back to info.
func ConfigureLogger(cfg LoggerConfig) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := cfg.Output
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	logger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = logger
}

// Log returns the configured logger
func Log() *zerolog.Logger {
	return &logger
}

// LogWith returns a child logger carrying one extra field
func LogWith(key string, value interface{}) zerolog.Logger {
	return logger.With().Interface(key, value).Logger()
}
