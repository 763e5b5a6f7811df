// File: cmd/s3lync/app.go
package main

import (
	"log/slog"
	"os"

	"s3lync/internal/config"
	"s3lync/internal/logger"
	"s3lync/internal/provider/factory"
	"s3lync/internal/service"
	"s3lync/internal/ui/prompt"
	"s3lync/pkg/formatter"
)

// appContainer holds all the shared dependencies for the application
type appContainer struct {
	ConfigManager *config.Manager
	Settings      config.Settings
	StoreFactory  *factory.Factory
	SyncService   *service.SyncService
	StatFormatter *formatter.StatFormatter
	Prompter      prompt.Prompter
	Logger        *slog.Logger
}

// Creates and initializes a new application container
func newApp() (*appContainer, error) {
	cfgManager, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	settings, err := cfgManager.Snapshot()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger(settings)
	storeFactory := factory.NewFactory(settings, log)
	syncService := service.NewSyncService(storeFactory, settings, log)

	return &appContainer{
		ConfigManager: cfgManager,
		Settings:      settings,
		StoreFactory:  storeFactory,
		SyncService:   syncService,
		StatFormatter: formatter.NewStatFormatter(),
		Prompter:      prompt.NewStandardPrompter(os.Stdin, os.Stdout),
		Logger:        log,
	}, nil
}
