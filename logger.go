package main

import (
	"log/slog"
	"os"

	"woodgrain/texture"
)

// Logger writes structured records to a log file. The terminal belongs to
// the TUI, so nothing is logged to stdout or stderr.
type Logger struct {
	file *os.File
	log  *slog.Logger
}

var globalLogger *Logger

// InitLogger opens (or appends to) the log file and routes the texture
// package's logging into it.
func InitLogger(filepath string, level slog.Level) error {
	f, err := os.OpenFile(filepath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	globalLogger = &Logger{
		file: f,
		log:  l,
	}
	texture.SetLogger(l)

	globalLogger.Info("=== Wood Grain Preview Started ===")
	return nil
}

// CloseLogger flushes and closes the log file
func CloseLogger() {
	if globalLogger != nil {
		globalLogger.Info("=== Wood Grain Preview Stopped ===")
		texture.SetLogger(nil)
		globalLogger.file.Sync()
		globalLogger.file.Close()
		globalLogger = nil
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l == nil {
		return
	}
	l.log.Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		return
	}
	l.log.Error(msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	if l == nil {
		return
	}
	l.log.Debug(msg, args...)
}

// Panic logs a recovered panic value with context
func (l *Logger) Panic(panicValue any, context string) {
	if l == nil {
		return
	}
	l.log.Error("panic", "context", context, "value", panicValue)
}

// Convenience functions for global logger
func LogInfo(msg string, args ...any) {
	globalLogger.Info(msg, args...)
}

func LogError(msg string, args ...any) {
	globalLogger.Error(msg, args...)
}

func LogDebug(msg string, args ...any) {
	globalLogger.Debug(msg, args...)
}

func LogPanic(panicValue any, context string) {
	globalLogger.Panic(panicValue, context)
}
