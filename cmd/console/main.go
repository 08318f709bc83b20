package main

import (
	"fmt"
	"os"

	"github.com/authx-dev/authx/internal/config"
	"github.com/authx-dev/authx/internal/console"
	"github.com/authx-dev/authx/internal/logger"
)

var version = "dev" // Will be set during build with -ldflags

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	// Create server
	srv, err := console.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	log.Info().Str("version", version).Str("api", cfg.API.BaseURL).Msg("Starting AuthX console...")

	// Start HTTP server (this blocks)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
