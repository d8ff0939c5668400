package cmd

import (
	"context"
	"fmt"

	"drone-config/core/config"
	"drone-config/core/database"
	"drone-config/core/logger"
	"drone-config/feature/drone"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadRuntime loads configuration and builds the logger every command needs.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// openStore connects to the database, migrates the drone table and seeds the defaults.
func openStore(ctx context.Context, cfg database.Config, logg *zap.Logger) (*gorm.DB, *drone.GormStore, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}

	store := drone.NewGormStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, nil, err
	}
	if err := store.SeedDefaults(ctx); err != nil {
		return nil, nil, err
	}

	logg.Info("Drone config store ready",
		zap.String("driver", cfg.Driver),
		zap.Int("seeds", len(drone.DefaultSeeds)))
	return db, store, nil
}
