package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log field keys
const (
	KeyRunID = "run_id"
	KeyItem  = "item"
	KeyPath  = "path"
	KeyCount = "count"
	KeyMode  = "mode"
)

// Output targets. Stdout is left to batch progress messages.
const (
	OutputStderr = "stderr"
	EncodingText = "console"
)

var logger = zap.NewNop()

// Initialize sets up the global logger. Debug enables debug level output.
func Initialize(debug bool) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	config := zap.Config{
		Level:             level,
		Development:       debug,
		DisableStacktrace: !debug,
		Encoding:          EncodingText,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{OutputStderr},
		ErrorOutputPaths:  []string{OutputStderr},
	}

	built, err := config.Build()
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		return
	}
	logger = built
}

// L returns the global logger. Before Initialize it discards everything.
func L() *zap.Logger {
	return logger
}

// Set replaces the global logger, used by tests
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Close flushes buffered log entries
func Close() {
	_ = logger.Sync()
}
