package drone

import (
	"context"
	"testing"

	"drone-config/core/broadcast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("BroadcastsChangedFieldsOnce", func(t *testing.T) {
		rec := &recordingBroadcaster{}
		svc := NewService(newTestStore(t), rec, zap.NewNop())

		c, err := svc.Update(ctx, "quadcopter", Patch{Scale: floatPtr(2.5)})
		require.NoError(t, err)
		assert.Equal(t, 2.5, c.Scale)

		assert.Equal(t, []broadcast.Event{
			broadcast.UpdateEvent("quadcopter", map[string]any{"scale": 2.5}),
		}, rec.Events())
	})

	t.Run("EmptyPatchDoesNotBroadcast", func(t *testing.T) {
		rec := &recordingBroadcaster{}
		store := newTestStore(t)
		svc := NewService(store, rec, zap.NewNop())

		before, err := store.Get(ctx, "delivery")
		require.NoError(t, err)

		c, err := svc.Update(ctx, "delivery", Patch{})
		require.NoError(t, err)
		assert.Equal(t, before, c)
		assert.Empty(t, rec.Events())
	})

	t.Run("NotFoundDoesNotBroadcast", func(t *testing.T) {
		rec := &recordingBroadcaster{}
		svc := NewService(newTestStore(t), rec, zap.NewNop())

		_, err := svc.Update(ctx, "foo", Patch{Scale: floatPtr(2)})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, rec.Events())

		_, err = svc.Update(ctx, "foo", Patch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("InvalidPatchIsNotWritten", func(t *testing.T) {
		rec := &recordingBroadcaster{}
		store := newTestStore(t)
		svc := NewService(store, rec, zap.NewNop())

		_, err := svc.Update(ctx, "military", Patch{Style: strPtr("plasma"), Scale: floatPtr(4)})
		assert.True(t, IsValidationError(err))
		assert.Empty(t, rec.Events())

		c, err := store.Get(ctx, "military")
		require.NoError(t, err)
		assert.Equal(t, DefaultScale, c.Scale)
	})

	t.Run("BroadcastFailureKeepsWrite", func(t *testing.T) {
		rec := &recordingBroadcaster{err: assert.AnError}
		store := newTestStore(t)
		svc := NewService(store, rec, zap.NewNop())

		c, err := svc.Update(ctx, "spherical", Patch{Animate: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, c.Animate)
	})
}

func TestService_Reads(t *testing.T) {
	svc := NewService(newTestStore(t), &recordingBroadcaster{}, zap.NewNop())

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultSeeds))

	c, err := svc.Get(context.Background(), "singlerotor")
	require.NoError(t, err)
	assert.Equal(t, "Single-Rotor", c.Title)
}
