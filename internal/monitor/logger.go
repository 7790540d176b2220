package monitor

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the verbosity of logging.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// NewLogger builds a zap logger for the requested verbosity.
func NewLogger(level LogLevel) *zap.Logger {
	var config zap.Config

	switch level {
	case LogLevelError:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case LogLevelWarn:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case LogLevelInfo:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelDebug:
		config = zap.NewDevelopmentConfig() // Use DevelopmentConfig for more detailed debug output
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder // Optional: colored output
	default:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, _ := config.Build()
	return logger
}
