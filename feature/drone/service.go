package drone

import (
	"context"

	"drone-config/core/broadcast"

	"go.uber.org/zap"
)

// Broadcaster is the part of broadcast.Broadcaster the service needs.
type Broadcaster interface {
	Broadcast(ev broadcast.Event) (broadcast.Result, error)
}

// Service applies config changes and announces them to live sessions.
type Service struct {
	store       Store
	broadcaster Broadcaster
	logger      *zap.Logger
}

// NewService creates a new drone service.
func NewService(store Store, broadcaster Broadcaster, logger *zap.Logger) *Service {
	return &Service{
		store:       store,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Get returns one drone config.
func (s *Service) Get(ctx context.Context, key string) (*Config, error) {
	return s.store.Get(ctx, key)
}

// List returns every drone config.
func (s *Service) List(ctx context.Context) ([]Config, error) {
	return s.store.List(ctx)
}

// Update validates and persists p, then broadcasts exactly one update event
// carrying the changed fields. An empty patch is returned as a plain read and
// never broadcast.
func (s *Service) Update(ctx context.Context, key string, p Patch) (*Config, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	c, err := s.store.ApplyUpdate(ctx, key, p)
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return c, nil
	}

	res, err := s.broadcaster.Broadcast(broadcast.UpdateEvent(key, p.Fields()))
	if err != nil {
		// The record is already persisted at this point.
		s.logger.Error("Failed to broadcast update", zap.String("key", key), zap.Error(err))
		return c, nil
	}

	s.logger.Info("Drone config updated",
		zap.String("key", key),
		zap.Any("fields", p.Fields()),
		zap.Int("recipients", res.Recipients),
		zap.Int("failed", res.Failed))
	return c, nil
}
