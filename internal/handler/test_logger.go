package handler

import (
	"strings"
	"sync"

	"pdf-toolkit/internal/domain"
)

// MockHandlerLogger records log lines for handler package tests.
type MockHandlerLogger struct {
	mu    sync.Mutex
	lines []string
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{}
}

var _ domain.Logger = (*MockHandlerLogger)(nil)

func (l *MockHandlerLogger) Info(msg string, fields ...interface{}) { l.add("INFO", msg) }
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.add("ERROR", msg)
}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{}) { l.add("DEBUG", msg) }
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})  { l.add("WARN", msg) }

func (l *MockHandlerLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+msg)
}

// Has reports whether a line with the given level and message prefix was logged
func (l *MockHandlerLogger) Has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.HasPrefix(line, level+": "+msg) {
			return true
		}
	}
	return false
}
