// Package logging builds the zap logger shared by commands and runners.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select where logs go and how much is written.
type Options struct {
	// Level is one of debug, info, warn or error. Unknown values mean warn.
	Level string
	// File receives the logs when set. Empty means stderr.
	File string
	// Development switches to the human friendly console encoder.
	Development bool
}

// New returns a logger for opts.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		cfg.Sampling = nil
	}

	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(opts.Level))

	out := "stderr"
	if f := strings.TrimSpace(opts.File); f != "" {
		out = f
	}
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{out}
	cfg.DisableStacktrace = true

	return cfg.Build()
}

// ParseLevel maps a config string to a zap level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.WarnLevel
	}
}
