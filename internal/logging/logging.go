// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConfig returns the console logger config. Stacktraces are disabled and
// levels are colored.
func NewConfig(level zapcore.Level) zap.Config {
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      zapcore.OmitKey,
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// ParseLevel accepts the zap level names, case insensitive.
func ParseLevel(level string) (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return l, errors.Wrapf(err, "invalid log level %q", level)
	}
	return l, nil
}

// NewLogger returns a sugared console logger writing to stderr at level.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger, err := NewConfig(l).Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger.Sugar(), nil
}

// NewWriterLogger logs to w without colors or timestamps.
func NewWriterLogger(w io.Writer, level string) (*zap.SugaredLogger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := NewConfig(l).EncoderConfig
	cfg.TimeKey = zapcore.OmitKey
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), l)
	return zap.New(core).Sugar(), nil
}
