// Package logging builds the structured logger used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const attrService = "service"

// ErrInvalidLevel is returned for an unrecognized level name.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel maps debug, info, warn or error to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(name))))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}

	return level, nil
}

// New builds a logger writing to w. Format "json" selects the JSON handler;
// anything else selects the text handler.
func New(w io.Writer, level slog.Level, format, service string) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}

	var inner slog.Handler
	if strings.EqualFold(format, "json") {
		inner = slog.NewJSONHandler(w, handlerOpts)
	} else {
		inner = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(inner).With(slog.String(attrService, service))
}
