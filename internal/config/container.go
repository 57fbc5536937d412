package config

import (
	"pdf-toolkit/internal/domain"
	"pdf-toolkit/internal/i18n"
	"pdf-toolkit/internal/service"
	"pdf-toolkit/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config     domain.Config
	Logger     domain.Logger
	Localizer  *i18n.Localizer
	PDFService domain.PDFService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return newContainer(NewConfig(), nil)
}

// NewContainerWithLogger wires the container around an existing logger. The
// MCP server uses it to keep stdout free for the protocol.
func NewContainerWithLogger(appLogger domain.Logger) *Container {
	return newContainer(NewConfig(), appLogger)
}

func newContainer(config domain.Config, appLogger domain.Logger) *Container {
	if appLogger == nil {
		appLogger = logger.NewLogger(config.GetLogLevel())
	}

	localizer := i18n.NewLocalizer(config.GetDefaultLanguage())
	pdfService := service.NewPDFService(config.GetValidationMode(), appLogger)

	return &Container{
		Config:     config,
		Logger:     appLogger,
		Localizer:  localizer,
		PDFService: pdfService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetPDFService returns the PDF service instance
func (c *Container) GetPDFService() domain.PDFService {
	return c.PDFService
}

// GetLocalizer returns the localizer instance
func (c *Container) GetLocalizer() *i18n.Localizer {
	return c.Localizer
}
