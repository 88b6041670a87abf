// main.go
package main

import (
	"log"

	"movie-booking/cmd"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/wire"
	"movie-booking/pkg/storage"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.Bool("debug", config.App.Debug),
	)

	// Backing store over the OS filesystem
	store := storage.NewOS()

	// Initialize all repositories
	repos := repository.NewRepository(store, config, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Run the console front end
	cmd.Run(app, logger)
}
