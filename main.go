// main.go
package main

import (
	"log"

	"vridhira/cmd"
	"vridhira/internal/data/repository"
	"vridhira/internal/wire"
	"vridhira/pkg/storage"
	"vridhira/pkg/utils"

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
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize the record store
	store, err := storage.InitStore(config.Storage.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to init record store", zap.Error(err))
	}

	logger.Info("Record store ready", zap.String("data_dir", config.Storage.DataDir))

	// Initialize all repositories
	repos := repository.NewRepository(store, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
