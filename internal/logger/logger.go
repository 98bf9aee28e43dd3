// Package logger provides centralized slog configuration for the application
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds logger configuration
type Config struct {
	// Level sets the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL"`
	// Format sets the output format (text or json)
	Format string `env:"LOG_FORMAT"`
	// AddSource adds source file information to log entries
	AddSource bool `env:"LOG_ADD_SOURCE"`
	// Output is where log entries are written; nil means stdout
	Output io.Writer `env:"-"`
}

var dotenvLoaded sync.Once

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
	}
}

// LoadConfig overlays environment variables onto base.
// A .env file in the working directory is read first if one exists.
func LoadConfig(base Config) (Config, error) {
	dotenvLoaded.Do(func() {
		// A missing .env file is fine
		_ = godotenv.Load()
	})

	cfg := base
	if err := env.Parse(&cfg); err != nil {
		return base, fmt.Errorf("failed to parse logger environment: %w", err)
	}
	return cfg, nil
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a new slog.Logger with the given configuration
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler)
}

// NewDefaultLogger creates a new slog.Logger from the environment.
// If the environment cannot be parsed the defaults are used and a warning is logged.
func NewDefaultLogger() *slog.Logger {
	cfg, err := LoadConfig(DefaultConfig())
	log := NewLogger(cfg)
	if err != nil {
		log.Warn("Using default logger configuration", slog.String("error", err.Error()))
	}
	return log
}

// SetDefault sets the default slog logger
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// WithLambda adds AWS Lambda context fields to a logger
func WithLambda(logger *slog.Logger, functionName, functionVersion, requestID string) *slog.Logger {
	return logger.With(
		slog.Group("lambda",
			slog.String("function_name", functionName),
			slog.String("function_version", functionVersion),
			slog.String("request_id", requestID),
		),
	)
}

// WithExecutable adds executable name to a logger for filtering by program
func WithExecutable(logger *slog.Logger, executableName string) *slog.Logger {
	return logger.With(slog.String("executable", executableName))
}
