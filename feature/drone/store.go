package drone

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the durable key to Config table.
type Store interface {
	// Get returns one record or ErrNotFound.
	Get(ctx context.Context, key string) (*Config, error)
	// List returns every record ordered by key.
	List(ctx context.Context) ([]Config, error)
	// ApplyUpdate merges p into the record atomically and returns the result.
	ApplyUpdate(ctx context.Context, key string, p Patch) (*Config, error)
	// SeedDefaults inserts each default seed whose key is absent.
	SeedDefaults(ctx context.Context) error
}

// GormStore implements Store on a gorm connection.
type GormStore struct {
	db    *gorm.DB
	seeds []Seed
}

// NewGormStore creates a store seeded with DefaultSeeds.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, seeds: DefaultSeeds}
}

// Migrate creates or updates the drone_configs table.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Config{}); err != nil {
		return fmt.Errorf("failed to migrate drone configs: %w", err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, key string) (*Config, error) {
	return find(s.db.WithContext(ctx), key)
}

func (s *GormStore) List(ctx context.Context) ([]Config, error) {
	var configs []Config
	if err := s.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("failed to list drone configs: %w", err)
	}
	return configs, nil
}

func (s *GormStore) ApplyUpdate(ctx context.Context, key string, p Patch) (*Config, error) {
	var out *Config
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := find(tx, key)
		if err != nil {
			return err
		}
		if !p.IsEmpty() {
			p.Apply(c)
			if err := tx.Save(c).Error; err != nil {
				return fmt.Errorf("failed to save drone config %s: %w", key, err)
			}
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) SeedDefaults(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seed := range s.seeds {
			_, err := find(tx, seed.Key)
			if err == nil {
				continue
			}
			if !errors.Is(err, ErrNotFound) {
				return err
			}
			c := NewConfig(seed.Key, seed.Title, seed.Description)
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("failed to seed drone config %s: %w", seed.Key, err)
			}
		}
		return nil
	})
}

func find(db *gorm.DB, key string) (*Config, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var c Config
	err := db.Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load drone config %s: %w", key, err)
	}
	return &c, nil
}
