package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the path to the engine log file, relative to the working directory (project root when run via go run ./cmd/scene).
const LogFilePath = "logs/engine.txt"

// Logger stores engine events in memory and appends them to a file on disk and to stderr.
// Registries and the renderer log texture/material lookup misses here so degraded draws
// are visible instead of silent.
type Logger struct {
	mu    sync.Mutex
	lines []string
}

// New returns a new Logger and ensures the logs directory exists.
func New() *Logger {
	dir := filepath.Dir(LogFilePath)
	_ = os.MkdirAll(dir, 0755)
	return &Logger{lines: make([]string, 0)}
}

// Infof logs an informational event (resource loaded, scene prepared).
func (l *Logger) Infof(format string, args ...any) {
	l.log("INFO", fmt.Sprintf(format, args...))
}

// Warnf logs a degraded-but-recoverable event (lookup miss, skipped registration).
func (l *Logger) Warnf(format string, args ...any) {
	l.log("WARN", fmt.Sprintf(format, args...))
}

// Errorf logs a failure the caller will also see as a returned error.
func (l *Logger) Errorf(format string, args ...any) {
	l.log("ERROR", fmt.Sprintf(format, args...))
}

// log appends a line to the logger, the log file on disk, and stderr.
// Each entry is prefixed with [timestamp] LEVEL using computer time.
func (l *Logger) log(level, msg string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + level + " " + msg

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	fmt.Fprintln(os.Stderr, stamped)

	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
