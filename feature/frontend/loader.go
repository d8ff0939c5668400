package frontend

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new Frontend feature serving from source.
func NewFeature(source Source, indexFile string, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(source, indexFile, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "frontend"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
