package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"clipforge/internal/api"
	"clipforge/internal/config"
	"clipforge/internal/editor"
	"clipforge/internal/logger"
	"clipforge/internal/media"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] No .env file found, using system environment variables")
	}

	zlog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	cfg := config.Load(zlog)

	// Metadata probing belongs to the ingestion surface; the engine runs
	// without one and treats durations as provisional until reported.
	resolver := media.NewResolver(nil, zlog)
	store := editor.NewStore(cfg.PixelsPerSecond, resolver, zlog)
	router := api.NewRouter(api.NewSessionHandler(store), zlog, cfg.CORSOrigins)

	zlog.Info("clipforge editor engine running", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", "error", err)
	}
}
