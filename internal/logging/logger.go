package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnvVar controls logging verbosity when no level is configured.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "RIZUMU_LOG_LEVEL"

const defaultLogFile = "rizumu/rizumu.log"

var (
	mu      sync.RWMutex
	logger  *zap.Logger
	logPath string
)

// Initialize creates the global logger writing to path at the given level.
// If level is empty, RIZUMU_LOG_LEVEL is consulted. If neither is set the
// logger is a no-op. An empty path resolves to $XDG_STATE_HOME/rizumu/rizumu.log.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	level = strings.ToLower(strings.TrimSpace(level))

	if level == "" {
		set(zap.NewNop(), "")
		return nil
	}

	zapLevel, err := parseLevel(level)
	if err != nil {
		return err
	}

	if strings.TrimSpace(path) == "" {
		resolved, err := xdg.StateFile(defaultLogFile)
		if err != nil {
			return fmt.Errorf("resolve log file: %w", err)
		}
		path = resolved
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	set(built, path)
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

func set(l *zap.Logger, path string) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	logPath = path
}

// GetLogger returns the global logger instance.
func GetLogger() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		// Silent until Initialize is called.
		return zap.NewNop()
	}
	return l
}

// Path returns the file the logger writes to, or "" when logging is disabled.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// Sync flushes buffered log entries.
func Sync() {
	_ = GetLogger().Sync()
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}
