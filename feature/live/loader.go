package live

import (
	"context"
	"time"

	"drone-config/core/broadcast"
	"drone-config/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	path    string
}

// NewFeature creates the live session feature.
func NewFeature(ctx context.Context, cfg server.Config, broadcaster *broadcast.Broadcaster, updater Updater, logger *zap.Logger) *Feature {
	timeout := time.Duration(cfg.WriteTimeout()) * time.Second
	return &Feature{
		handler: NewHandler(ctx, broadcaster, updater, logger, timeout),
		path:    cfg.WebSocketPath(),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "live"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the WebSocket route.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, f.path)
	return nil
}
