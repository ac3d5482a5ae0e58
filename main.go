package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrimix/internal/app"
	"nutrimix/internal/config"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Storage, realtime and HTTP wiring ---
	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if cfg.Seed {
		seedProducts(application)
		return
	}

	log.Printf("Starting server on %s (backend: %s)", cfg.Addr(), cfg.DBDriver)
	if !cfg.AuthRequired {
		log.Println("Warning: mutating routes are not authenticated (set AUTH_REQUIRED=true to protect them)")
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Fiber.Listen(cfg.Addr()); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := application.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// seedProducts resets the product catalog and exits the process.
func seedProducts(application *app.App) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := application.Seed(ctx)
	if shutdownErr := application.Shutdown(); shutdownErr != nil {
		log.Printf("Error during shutdown: %v", shutdownErr)
	}
	if err != nil {
		log.Fatalf("Seeding error: %v", err)
	}
	log.Println("Successfully seeded database")
}
