// Package diag emits non-fatal developer diagnostics.
//
// Diagnostics never change control flow. They are written as zap Warn entries and
// are dropped entirely when the library runs in production mode.
package diag

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/comalice/statestore/internal/config"
)

// Warner writes diagnostics to a zap logger when enabled.
type Warner struct {
	logger  *zap.Logger
	enabled bool
}

// New returns a Warner. A nil logger falls back to Default().
func New(logger *zap.Logger, enabled bool) *Warner {
	if logger == nil {
		logger = Default()
	}
	return &Warner{logger: logger, enabled: enabled}
}

// FromConfig returns a Warner that is enabled outside production mode.
func FromConfig(logger *zap.Logger, cfg config.Config) *Warner {
	return New(logger, !cfg.Production())
}

// Enabled reports whether Warn writes anything.
func (w *Warner) Enabled() bool {
	return w != nil && w.enabled
}

// Warn logs msg with fields.
func (w *Warner) Warn(msg string, fields ...zap.Field) {
	if !w.Enabled() {
		return
	}
	w.logger.Warn(msg, fields...)
}

var (
	defaultOnce   sync.Once
	defaultLogger *zap.Logger
)

// Default returns the shared diagnostics logger, built once from config.Load.
func Default() *zap.Logger {
	defaultOnce.Do(func() {
		cfg, err := config.Load()
		defaultLogger, err = build(cfg, err)
		if err != nil {
			defaultLogger = zap.NewNop()
		}
	})
	return defaultLogger
}

func build(cfg config.Config, loadErr error) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.WarnLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.Sampling = nil

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	logger = logger.Named("statestore")
	if loadErr != nil {
		fmt.Fprintln(os.Stderr, "statestore: config:", loadErr)
	}
	return logger, nil
}
