package loader

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("LoadsEnabledOnly", func(t *testing.T) {
		on := &stubFeature{name: "on", enabled: true}
		off := &stubFeature{name: "off"}

		mgr := NewManager()
		mgr.Register(on)
		mgr.Register(off)

		assert.NoError(t, mgr.LoadAll(fiber.New()))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("PropagatesError", func(t *testing.T) {
		mgr := NewManager()
		mgr.Register(&stubFeature{name: "broken", enabled: true, err: assert.AnError})

		err := mgr.LoadAll(fiber.New())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("RejectsDuplicates", func(t *testing.T) {
		mgr := NewManager()
		mgr.Register(&stubFeature{name: "dup", enabled: true})
		mgr.Register(&stubFeature{name: "dup", enabled: true})

		assert.Error(t, mgr.LoadAll(fiber.New()))
	})
}
