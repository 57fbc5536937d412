package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-toolkit/internal/config"
	"pdf-toolkit/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()

	// Handlers
	pdfHandler := handler.NewPDFHandler(
		container.GetPDFService(),
		container.GetLocalizer(),
		container.GetLogger(),
		container.GetConfig().GetMaxFileSize(),
	)

	uiHandler := handler.NewUIHandler(
		container.GetLocalizer(),
		container.GetLogger(),
	)

	requestMiddleware := handler.NewRequestMiddleware(
		container.GetLogger(),
	)

	// Router
	router := handler.NewRouter(
		pdfHandler,
		uiHandler,
		container.GetConfig().GetAllowedOrigins(),
		requestMiddleware.Middleware,
	)

	// start server
	server := &http.Server{
		Addr:              ":" + container.GetConfig().GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	// Run server
	go func() {
		container.GetLogger().Info("Server listening", "address", server.Addr,
			"max_file_size", container.GetConfig().GetMaxFileSize(),
			"validation", container.GetConfig().GetValidationMode())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.GetLogger().Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.GetLogger().Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.GetLogger().Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.GetLogger().Info("Server exited")
}
