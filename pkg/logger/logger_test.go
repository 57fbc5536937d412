package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestLogger(buf *bytes.Buffer, level string) *AppLogger {
	l := NewLoggerTo(buf, level).(*AppLogger)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }
	return l
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, "info")

	l.Info("PDF merged", "files", 2, "output", "a_b_merged.pdf")

	want := "[2024-03-01 12:30:00] INFO: PDF merged files=2 output=a_b_merged.pdf\n"
	if buf.String() != want {
		t.Fatalf("unexpected log line:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestLogger_QuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, "debug")

	l.Debug("upload received", "filename", "My File.pdf")

	if !strings.Contains(buf.String(), `filename="My File.pdf"`) {
		t.Fatalf("expected quoted filename, got %s", buf.String())
	}
}

func TestLogger_ErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, "error")

	l.Error("merge failed", errors.New("bad xref"), "request_id", "abc")

	line := buf.String()
	if !strings.Contains(line, "ERROR: merge failed") {
		t.Fatalf("missing level and message: %s", line)
	}
	if !strings.Contains(line, `error="bad xref"`) || !strings.Contains(line, "request_id=abc") {
		t.Fatalf("missing fields: %s", line)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, "warn")

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug and info to be filtered, got %s", buf.String())
	}

	l.Warn("shown")
	if !strings.Contains(buf.String(), "WARN: shown") {
		t.Fatalf("expected warn line, got %s", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warning": WARN,
		" error ": ERROR,
		"bogus":   INFO,
		"":        INFO,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q) = %d, want %d", in, got, want)
		}
	}
}
