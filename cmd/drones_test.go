package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"drone-config/core/database"
	"drone-config/feature/drone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeededStore(t *testing.T) *drone.GormStore {
	t.Helper()
	_, store, err := openStore(context.Background(), database.Config{Driver: database.DriverSQLite, File: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestRunDroneList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDroneList(context.Background(), &out, newSeededStore(t)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(drone.DefaultSeeds)+1)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.True(t, strings.HasPrefix(lines[1], "agricultural"))
	assert.Contains(t, out.String(), "#06e0ff")
}

func TestRunDroneDetail(t *testing.T) {
	store := newSeededStore(t)

	var out bytes.Buffer
	require.NoError(t, runDroneDetail(context.Background(), &out, store, "hybrid"))
	assert.Contains(t, out.String(), "Title:        Hybrid")
	assert.Contains(t, out.String(), "Style:        neon")

	err := runDroneDetail(context.Background(), &out, store, "zeppelin")
	assert.EqualError(t, err, `drone "zeppelin" not found`)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "seed", "drones", "publish", "health"} {
		assert.True(t, names[want], want)
	}
}
