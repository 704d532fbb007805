// Package logger builds the zap logger used for diagnostics.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared console logger at the given level ("debug",
// "info", "warn", "error"). Diagnostics go to stderr so they never mix
// with report output on stdout.
func New(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("could not build logger: %w", err)
	}
	return l.Sugar(), nil
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
