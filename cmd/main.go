package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pagegen_server/api"
	"pagegen_server/config"
	"pagegen_server/internal/ai"
	internalapi "pagegen_server/internal/api"
	"pagegen_server/internal/llm"
)

func main() {
	// --- Load .env file ---
	// Must happen BEFORE viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		// It's common for .env to not exist (e.g., in production), so only log a
		// warning if the error is something other than "file not found".
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".") // Load from config.yaml or env vars
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---
	// Inference backend: local Ollama by default, OpenAI when a key is set.
	var backend llm.Client
	if cfg.OpenAIKey != "" {
		log.Printf("Using OpenAI inference backend (model %s)", cfg.ModelID)
		backend = llm.NewOpenAI(cfg.OpenAIKey, cfg.ModelID, cfg.Temperature)
	} else {
		log.Printf("Using Ollama inference backend at %s (model %s)", cfg.OllamaBaseURL, cfg.ModelID)
		backend = llm.NewOllama(cfg.OllamaBaseURL, cfg.ModelID, cfg.Temperature)
	}

	generator := ai.NewGenerator(backend)
	apiHandler := internalapi.NewAPIHandler(generator)

	// --- Start API Server ---
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()        // Use gin.New() for more control over middleware
	router.Use(gin.Logger())   // Add structured logger middleware
	router.Use(gin.Recovery()) // Add panic recovery middleware

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Generation requests block on model inference; the write timeout has
		// to outlast the backend client's own timeout.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
