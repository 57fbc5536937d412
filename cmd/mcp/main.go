package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pdf-toolkit/internal/config"
	"pdf-toolkit/internal/mcptools"
	"pdf-toolkit/pkg/logger"
)

const version = "v0.1.0"

func main() {
	// stdout carries the protocol, so nothing else may write to it
	log.SetOutput(os.Stderr)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.NewConfig()
	container := config.NewContainerWithLogger(logger.NewLoggerTo(os.Stderr, cfg.GetLogLevel()))

	container.GetLogger().Info("Starting pdf-toolkit MCP server", "version", version)

	srv := mcptools.CreateServer(mcptools.Deps{
		PDFService:  container.GetPDFService(),
		Localizer:   container.GetLocalizer(),
		Logger:      container.GetLogger(),
		MaxFileSize: container.GetConfig().GetMaxFileSize(),
	}, version)
	if err := srv.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		container.GetLogger().Error("MCP server failed", err)
		os.Exit(1)
	}
}
