// Package logger is a thin structured-logging wrapper over zap.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Mode selects encoder and level, from the log.mode setting.
type Mode string

const (
	ModeDev   Mode = "dev"   // console encoder, debug level
	ModeProd  Mode = "prod"  // JSON encoder, info level
	ModeQuiet Mode = "quiet" // console encoder, warnings and errors only
)

// ParseMode accepts the log.mode values. Empty means dev.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", "development":
		return ModeDev, nil
	case "prod", "production":
		return ModeProd, nil
	case "quiet":
		return ModeQuiet, nil
	}
	return "", fmt.Errorf("unknown log mode %q (dev, prod or quiet)", s)
}

func (m Mode) config() zap.Config {
	switch m {
	case ModeProd:
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		return cfg
	case ModeQuiet:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.DisableStacktrace = true
		return cfg
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		return cfg
	}
}

type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a logger for a log.mode value.
func New(mode string) (*Logger, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	zapLogger, err := m.config().Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// FromCore wraps an existing zap core, e.g. an observer in tests.
func FromCore(core zapcore.Core) *Logger {
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Component names the subsystem that logs, e.g. "http" or "measure".
// Nested components are joined with dots.
func (l *Logger) Component(name string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(name)}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
