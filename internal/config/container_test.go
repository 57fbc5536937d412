package config

import (
	"bytes"
	"testing"

	"pdf-toolkit/internal/i18n"
	"pdf-toolkit/pkg/logger"
)

func TestNewContainer(t *testing.T) {
	t.Setenv("DEFAULT_LANGUAGE", "zh")
	t.Setenv("PDF_VALIDATION", "strict")

	c := NewContainer()

	if c.GetConfig() == nil || c.GetLogger() == nil || c.GetPDFService() == nil || c.GetLocalizer() == nil {
		t.Fatalf("expected all dependencies to be wired: %+v", c)
	}
	if c.Localizer.Fallback() != i18n.Chinese {
		t.Fatalf("expected fallback language zh, got %s", c.Localizer.Fallback())
	}
}

func TestNewContainerWithLogger(t *testing.T) {
	var buf bytes.Buffer
	appLogger := logger.NewLoggerTo(&buf, "debug")

	c := NewContainerWithLogger(appLogger)

	if c.Logger != appLogger {
		t.Fatalf("expected the supplied logger to be used")
	}
}
