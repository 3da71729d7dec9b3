// Package logging turns the textual log settings of a dispatch Config into
// a slog.Logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	ErrUnknownLevel  = errors.New("invalid log level: must be 'debug', 'info', 'warn', or 'error'")
	ErrUnknownFormat = errors.New("invalid log format: must be 'text' or 'json'")
)

// ParseLevel reads a level name in any case. An empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: got %q", ErrUnknownLevel, name)
	}
}

// ParseFormat reads a format name in any case. An empty name is text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON:
		return f, nil
	default:
		return FormatText, fmt.Errorf("%w: got %q", ErrUnknownFormat, name)
	}
}

// New builds an isolated logger writing to outW. A nil writer discards
// every record.
func New(level slog.Level, format Format, outW io.Writer) *slog.Logger {
	if outW == nil {
		return Discard()
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
