package logger

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Logger is a subsystem logger. All messages are tagged with the subsystem
// name and filtered by the configured level before reaching the backend.
type Logger struct {
	level   uint32 // atomic Level
	tag     string
	backend *Backend
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

func (l *Logger) print(level Level, args ...interface{}) {
	if level < l.Level() {
		return
	}
	l.backend.write(level, l.format(level, fmt.Sprint(args...)))
}

func (l *Logger) printf(level Level, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}
	l.backend.write(level, l.format(level, fmt.Sprintf(format, args...)))
}

func (l *Logger) format(level Level, msg string) []byte {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	return []byte(fmt.Sprintf("%s [%s] %s: %s\n", timestamp, level, l.tag, msg))
}

// Tracef formats a message according to a format specifier and writes it at
// the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.printf(LevelTrace, format, args...)
}

// Debugf formats a message according to a format specifier and writes it at
// the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

// Infof formats a message according to a format specifier and writes it at
// the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.printf(LevelInfo, format, args...)
}

// Warnf formats a message according to a format specifier and writes it at
// the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf(LevelWarn, format, args...)
}

// Errorf formats a message according to a format specifier and writes it at
// the error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}

// Criticalf formats a message according to a format specifier and writes it
// at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}

// Trace writes a message at the trace level.
func (l *Logger) Trace(args ...interface{}) { l.print(LevelTrace, args...) }

// Debug writes a message at the debug level.
func (l *Logger) Debug(args ...interface{}) { l.print(LevelDebug, args...) }

// Info writes a message at the info level.
func (l *Logger) Info(args ...interface{}) { l.print(LevelInfo, args...) }

// Warn writes a message at the warn level.
func (l *Logger) Warn(args ...interface{}) { l.print(LevelWarn, args...) }

// Error writes a message at the error level.
func (l *Logger) Error(args ...interface{}) { l.print(LevelError, args...) }

// Critical writes a message at the critical level.
func (l *Logger) Critical(args ...interface{}) { l.print(LevelCritical, args...) }
