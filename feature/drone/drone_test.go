package drone

import (
	"context"
	"sync"
	"testing"

	"drone-config/core/broadcast"
	"drone-config/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newTestStore returns a migrated and seeded store on an in-memory sqlite database.
func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, File: ":memory:"})
	require.NoError(t, err)

	store := NewGormStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.SeedDefaults(context.Background()))
	return store
}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// recordingBroadcaster captures events instead of delivering them.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []broadcast.Event
	err    error
}

func (r *recordingBroadcaster) Broadcast(ev broadcast.Event) (broadcast.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return broadcast.Result{}, r.err
	}
	r.events = append(r.events, ev)
	return broadcast.Result{Recipients: 1}, nil
}

func (r *recordingBroadcaster) Events() []broadcast.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]broadcast.Event(nil), r.events...)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
