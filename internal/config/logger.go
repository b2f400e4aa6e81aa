package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the console logger for the given level. "quiet"
// disables output below the error level; unknown levels behave as
// "normal". The logger writes to stderr so markdown output on stdout
// stays clean.
func NewLogger(level string) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	var enabler zapcore.LevelEnabler
	switch level {
	case "debug":
		enabler = zapcore.DebugLevel
	case "quiet":
		enabler = zapcore.ErrorLevel
	default:
		enabler = zapcore.InfoLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), enabler)
	return zap.New(core)
}
