package main

import (
	"log"
	"log/slog"

	"github.com/jhaabhishek9/Nutrifitnes/config"
	"github.com/jhaabhishek9/Nutrifitnes/routes"
	"github.com/jhaabhishek9/Nutrifitnes/storage"
)

func main() {
	cfg := config.Load()

	store, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, using in-memory storage")
	}

	r := routes.SetupRouter(cfg, store)

	slog.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
