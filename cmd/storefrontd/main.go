package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clipclic-storefront-backend/config"
	"clipclic-storefront-backend/internal/api"
	"clipclic-storefront-backend/internal/db"
	"clipclic-storefront-backend/internal/lang"
	"clipclic-storefront-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "storefront ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Refuse to serve a locale with missing copy.
	for _, texts := range []lang.AppTexts{lang.Spanish(), lang.English()} {
		if err := texts.Validate(); err != nil {
			logger.Fatalf("text tables are incomplete: %v", err)
		}
	}
	if err := lang.Parity(lang.Spanish(), lang.English()); err != nil {
		logger.Fatalf("text tables disagree: %v", err)
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	catalog := store.NewGormStore(gormDB)

	router := api.NewRouter(catalog, cfg)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d (default language %s)", cfg.Server.Port, cfg.Locale.Default)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Println("Server gracefully stopped")
}
