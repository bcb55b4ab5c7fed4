package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const (
	defaultThresholdKB = 100 * 1000 // 100 MB logs by default.
	defaultMaxRolls    = 8          // keep 8 last logs by default.
)

// logWriter couples a destination with the minimum level it accepts.
type logWriter struct {
	io.WriteCloser
	logLevel Level
}

// Backend is a logging backend. Subsystems created from the backend write to
// the backend's writers. Writes from all subsystems are serialized by a
// mutex so interleaved lines stay whole.
type Backend struct {
	mtx     sync.Mutex
	writers []logWriter
}

// NewBackend creates a new logger backend.
func NewBackend() *Backend {
	return &Backend{}
}

// AddLogWriter adds an io.WriteCloser the log will write into for messages
// at or above the given level.
func (b *Backend) AddLogWriter(w io.WriteCloser, logLevel Level) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.writers = append(b.writers, logWriter{WriteCloser: w, logLevel: logLevel})
}

// AddLogFile adds a rotated log file the log will write into for messages at
// or above the given level. The file is created if it doesn't exist.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, defaultThresholdKB, false, defaultMaxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}
	b.AddLogWriter(r, logLevel)
	return nil
}

// write fans a formatted log line out to every writer whose level accepts
// it.
func (b *Backend) write(level Level, line []byte) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	for _, w := range b.writers {
		if level >= w.logLevel {
			_, _ = w.Write(line)
		}
	}
}

// Close finalizes all writers of this backend.
func (b *Backend) Close() {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	for _, w := range b.writers {
		_ = w.Close()
	}
}

// Logger returns a new logger for a particular subsystem that writes to the
// Backend b. A tag describes the subsystem and is included in all log
// messages. The logger writes nothing until a level is set.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{level: uint32(LevelOff), tag: subsystemTag, backend: b}
}

// stdoutCloser adapts os.Stdout to io.WriteCloser without closing the real
// stream.
type stdoutCloser struct{}

func (stdoutCloser) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdoutCloser) Close() error                { return nil }

// StdoutWriter returns a WriteCloser for process standard output.
func StdoutWriter() io.WriteCloser {
	return stdoutCloser{}
}
