// file: internals/logging/logger.go
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process logger. It is a no-op until InitLogger runs so packages
// (and tests) can log without any setup.
var Log = zap.NewNop()

var atom = zap.NewAtomicLevel()

// InitLogger builds the production JSON logger. level accepts zap level names
// ("debug", "info", "warn", "error"); anything else keeps "info".
func InitLogger(level string) {
	config := zap.NewProductionConfig()
	config.Level = atom
	SetLevel(level)

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.StacktraceKey = "stacktrace"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	Log = logger
	zap.ReplaceGlobals(logger)
}

// SetLevel changes the level of the running logger. Unknown or empty names
// are ignored.
func SetLevel(level string) {
	if lvl := strings.TrimSpace(level); lvl != "" {
		if parsed, err := zapcore.ParseLevel(lvl); err == nil {
			atom.SetLevel(parsed)
		}
	}
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

// Sync flushes buffered entries; call it on shutdown.
func Sync() {
	_ = Log.Sync()
}
