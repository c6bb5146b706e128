package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Level controls which messages are emitted
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	currentLevel atomic.Int32
	logger       = log.New(os.Stdout, "", log.LstdFlags)
)

func init() {
	currentLevel.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level that will be logged
func SetLevel(level Level) {
	currentLevel.Store(int32(level))
}

// SetOutput redirects log output (useful for tests)
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func enabled(level Level) bool {
	return int32(level) >= currentLevel.Load()
}

func output(prefix, msg string) {
	logger.Output(3, prefix+" "+msg)
}

// Debug logs a debug message
func Debug(msg string) {
	if enabled(LevelDebug) {
		output("[DEBUG]", msg)
	}
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...any) {
	if enabled(LevelDebug) {
		output("[DEBUG]", fmt.Sprintf(format, args...))
	}
}

// Info logs an info message
func Info(msg string) {
	if enabled(LevelInfo) {
		output("[INFO]", msg)
	}
}

// Infof logs a formatted info message
func Infof(format string, args ...any) {
	if enabled(LevelInfo) {
		output("[INFO]", fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message
func Warn(msg string) {
	if enabled(LevelWarn) {
		output("[WARN]", msg)
	}
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...any) {
	if enabled(LevelWarn) {
		output("[WARN]", fmt.Sprintf(format, args...))
	}
}

// Error logs an error message
func Error(msg string) {
	if enabled(LevelError) {
		output("[ERROR]", msg)
	}
}

// Errorf logs a formatted error message
func Errorf(format string, args ...any) {
	if enabled(LevelError) {
		output("[ERROR]", fmt.Sprintf(format, args...))
	}
}

// Fatalf logs a formatted error message and exits
func Fatalf(format string, args ...any) {
	output("[FATAL]", fmt.Sprintf(format, args...))
	os.Exit(1)
}
