package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SPINBUTTON_LOG_LEVEL"

// LogFileEnvVar names the file log output is appended to. The interactive
// widget owns the terminal, so stdout is only used when this is unset.
const LogFileEnvVar = "SPINBUTTON_LOG_FILE"

// maxPayloadLog bounds how much of a binding message is logged.
const maxPayloadLog = 256

// Initialize creates a new logger with the specified level writing to path.
// Empty arguments fall back to SPINBUTTON_LOG_LEVEL and SPINBUTTON_LOG_FILE.
// If no level is set anywhere, logging is disabled (silent mode).
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if path != "" {
		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
		// No ANSI colour in files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the environment only.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogValueChange logs a value mutation of a spin button
func LogValueChange(id, from, to, source string) {
	Debug("Value changed",
		zap.String("id", id),
		zap.String("from", orAbsent(from)),
		zap.String("to", orAbsent(to)),
		zap.String("source", source),
	)
}

// LogKeyEvent logs a key press and whether the widget consumed it
func LogKeyEvent(id, key string, handled bool) {
	Debug("Key event",
		zap.String("id", id),
		zap.String("key", key),
		zap.Bool("handled", handled),
	)
}

// LogBindingEvent logs a binding connection event
func LogBindingEvent(remoteAddr string, event string) {
	Info("Binding event",
		zap.String("remote_addr", remoteAddr),
		zap.String("event", event),
	)
}

// LogBindingMessage logs a binding message in either direction
func LogBindingMessage(remoteAddr string, direction string, data []byte) {
	content := string(data)
	if len(content) > maxPayloadLog {
		content = content[:maxPayloadLog] + "..."
	}
	Debug("Binding message",
		zap.String("remote_addr", remoteAddr),
		zap.String("direction", direction),
		zap.Int("length", len(data)),
		zap.String("content", content),
	)
}

func orAbsent(s string) string {
	if s == "" {
		return "<absent>"
	}
	return s
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
