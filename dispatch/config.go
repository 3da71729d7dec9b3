package dispatch

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/typedispatch/internal/ctxlog"
	"github.com/specialistvlad/typedispatch/internal/logging"
)

// Config holds the logging configuration of a family or scope. A nil
// LogOutput discards all records.
type Config struct {
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// NewConfig validates cfg and fills in defaults. Level and format names are
// case-insensitive and stored in lower case.
func NewConfig(cfg Config) (*Config, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(level.String())
	cfg.LogFormat = string(format)
	return &cfg, nil
}

type options struct {
	logger *slog.Logger
}

// Option configures Declare and NewScope.
type Option func(*options)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithContext takes the logger carried by ctx.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.logger = ctxlog.FromContext(ctx)
	}
}

// WithConfig builds the logger from cfg.
func WithConfig(cfg *Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		// Unvalidated settings fall back to info/text, as ParseLevel and
		// ParseFormat do on error.
		level, _ := logging.ParseLevel(cfg.LogLevel)
		format, _ := logging.ParseFormat(cfg.LogFormat)
		o.logger = logging.New(level, format, cfg.LogOutput)
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
