// Package log builds the zap loggers used by the xofhash command. Library
// packages accept a *zap.Logger and default to a nop logger.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ConsoleEncoder represents logging with plain text.
	ConsoleEncoder = "console"
	// JSONEncoder represents logging with JSON.
	JSONEncoder = "json"
)

// ErrUnknownEncoder is returned for encoder names other than console and json.
var ErrUnknownEncoder = errors.New("unknown log encoder")

// where logs go by default.
var logWriter io.Writer = os.Stderr

// NewNop creates silent logger.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

// Encoder returns the zap encoder registered under name.
func Encoder(name string) (zapcore.Encoder, error) {
	switch name {
	case ConsoleEncoder, "":
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	case JSONEncoder:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoder, name)
	}
}

// New creates a logger writing to w (stderr when nil) at the given level,
// with a set of (optional) hooks.
func New(level, encoder string, w io.Writer, hooks ...func(zapcore.Entry) error) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevel()
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
	}
	enc, err := Encoder(encoder)
	if err != nil {
		return nil, err
	}
	return NewWithLevel(lvl, enc, w, hooks...), nil
}

// NewWithLevel creates a logger with a dynamic level.
func NewWithLevel(level zap.AtomicLevel, encoder zapcore.Encoder, w io.Writer, hooks ...func(zapcore.Entry) error) *zap.Logger {
	if w == nil {
		w = logWriter
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(zapcore.RegisterHooks(core, hooks...))
}
