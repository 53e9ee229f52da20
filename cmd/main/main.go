package main

import (
	"context"
	"os"

	"catalogtree/converter/internal/config"
	"catalogtree/converter/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)

	// Load configuration using viper
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.Log.Level, err)
	}
	log.SetLevel(level)

	log.Info("Starting catalog tree conversion...")

	// Initialize container with all dependencies
	app, err := container.New(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Run the conversion
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	log.Info("Conversion finished successfully")
}
