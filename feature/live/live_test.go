package live

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"drone-config/core/broadcast"
	"drone-config/core/database"
	"drone-config/feature/drone"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeConn feeds inbound frames from a channel and records outbound ones.
type fakeConn struct {
	in      chan []byte
	out     chan []byte
	closed  chan struct{}
	once    sync.Once
	failing bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		in:     make(chan []byte, 16),
		out:    make(chan []byte, 64),
		closed: make(chan struct{}),
	}
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case data, ok := <-f.in:
		if !ok {
			return 0, nil, io.EOF
		}
		return 1, data, nil
	case <-f.closed:
		return 0, nil, errors.New("use of closed connection")
	}
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	if f.failing {
		return errors.New("broken pipe")
	}
	select {
	case <-f.closed:
		return errors.New("use of closed connection")
	default:
	}
	f.out <- data
	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.once.Do(func() { close(f.closed) })
	return nil
}

func (f *fakeConn) send(t *testing.T, msg string) {
	t.Helper()
	f.in <- []byte(msg)
}

// nextRaw waits for the next outbound frame.
func (f *fakeConn) nextRaw(t *testing.T) string {
	t.Helper()
	select {
	case data := <-f.out:
		return string(data)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

// next waits for the next outbound event.
func (f *fakeConn) next(t *testing.T) broadcast.Event {
	t.Helper()
	var ev broadcast.Event
	require.NoError(t, json.Unmarshal([]byte(f.nextRaw(t)), &ev))
	return ev
}

// silent asserts nothing is written for a short while.
func (f *fakeConn) silent(t *testing.T) {
	t.Helper()
	select {
	case data := <-f.out:
		t.Fatalf("unexpected event: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

type harness struct {
	handler     *Handler
	broadcaster *broadcast.Broadcaster
	store       *drone.GormStore
	service     *drone.Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, File: ":memory:"})
	require.NoError(t, err)

	store := drone.NewGormStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.SeedDefaults(context.Background()))

	b := broadcast.New(zap.NewNop(), nil)
	svc := drone.NewService(store, b, zap.NewNop())
	return &harness{
		handler:     NewHandler(context.Background(), b, svc, zap.NewNop(), time.Second),
		broadcaster: b,
		store:       store,
		service:     svc,
	}
}

// connect starts a session and waits until it is registered.
func (h *harness) connect(t *testing.T, ctx context.Context) (*fakeConn, <-chan struct{}) {
	t.Helper()
	conn := newFakeConn()
	done := make(chan struct{})
	before := h.broadcaster.Len()
	go func() {
		defer close(done)
		h.handler.Serve(ctx, conn)
	}()
	require.Eventually(t, func() bool { return h.broadcaster.Len() == before+1 }, 2*time.Second, 5*time.Millisecond)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, done
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end")
	}
}
