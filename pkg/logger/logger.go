package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"pdf-toolkit/internal/domain"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// AppLogger implements the domain.Logger interface
type AppLogger struct {
	level  LogLevel
	logger *log.Logger
	now    func() time.Time
}

// NewLogger creates a logger writing to stdout
func NewLogger(levelStr string) domain.Logger {
	return NewLoggerTo(os.Stdout, levelStr)
}

// NewLoggerTo creates a logger writing to w. The MCP server logs to stderr
// since stdout carries the protocol.
func NewLoggerTo(w io.Writer, levelStr string) domain.Logger {
	return &AppLogger{
		level:  parseLogLevel(levelStr),
		logger: log.New(w, "", 0),
		now:    time.Now,
	}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	if l.level <= INFO {
		l.log("INFO", msg, fields...)
	}
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	if l.level <= ERROR {
		allFields := append([]interface{}{"error", err}, fields...)
		l.log("ERROR", msg, allFields...)
	}
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	if l.level <= DEBUG {
		l.log("DEBUG", msg, fields...)
	}
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	if l.level <= WARN {
		l.log("WARN", msg, fields...)
	}
}

func (l *AppLogger) log(level, msg string, fields ...interface{}) {
	timestamp := l.now().Format("2006-01-02 15:04:05")

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", timestamp, level, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%s", fields[i], formatValue(fields[i+1]))
	}
	// odd trailing key
	if len(fields)%2 == 1 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}

	l.logger.Println(b.String())
}

// formatValue quotes values containing whitespace so lines stay parseable
func formatValue(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	if strings.ContainsAny(s, " \t\n\"") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// parseLogLevel converts string log level to LogLevel enum
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
