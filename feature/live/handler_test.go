package live

import (
	"context"
	"testing"

	"drone-config/core/broadcast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeLifecycle(t *testing.T) {
	h := newHarness(t)

	t.Run("PeerClose", func(t *testing.T) {
		conn, done := h.connect(t, context.Background())
		close(conn.in)
		waitDone(t, done)
		assert.Equal(t, 0, h.broadcaster.Len())
	})

	t.Run("ContextCancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		_, done := h.connect(t, ctx)
		cancel()
		waitDone(t, done)
		assert.Equal(t, 0, h.broadcaster.Len())
	})

	t.Run("TransportError", func(t *testing.T) {
		conn, done := h.connect(t, context.Background())
		_ = conn.Close()
		waitDone(t, done)
		assert.Equal(t, 0, h.broadcaster.Len())
	})
}

func TestServeInvalidJSON(t *testing.T) {
	h := newHarness(t)
	sender, _ := h.connect(t, context.Background())
	other, _ := h.connect(t, context.Background())

	sender.send(t, "not json")

	ev := sender.next(t)
	assert.Equal(t, broadcast.TypeError, ev.Type)
	assert.Equal(t, DetailInvalidJSON, ev.Detail)
	other.silent(t)

	// The session stays usable.
	sender.send(t, `"hello"`)
	assert.Equal(t, "hello", sender.next(t).Data)
	assert.Equal(t, 2, h.broadcaster.Len())
}

func TestServeEphemeralUpdate(t *testing.T) {
	h := newHarness(t)
	sender, _ := h.connect(t, context.Background())
	other, _ := h.connect(t, context.Background())

	sender.send(t, `{"type":"update","key":"quadcopter","payload":{"color":"#ff0000","anything":1}}`)

	for _, c := range []*fakeConn{sender, other} {
		ev := c.next(t)
		assert.Equal(t, broadcast.TypeUpdate, ev.Type)
		assert.Equal(t, "quadcopter", ev.Key)
		assert.Equal(t, map[string]any{"color": "#ff0000", "anything": float64(1)}, ev.Payload)
	}

	c, err := h.store.Get(context.Background(), "quadcopter")
	require.NoError(t, err)
	assert.NotEqual(t, "#ff0000", c.Color)
}

func TestServeKeepsEnvelopeFields(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"EmptyPayload", `{"type":"update","key":"quadcopter","payload":{}}`, `{"type":"update","key":"quadcopter","payload":{}}`},
		{"EmptyKey", `{"type":"update","key":"","payload":{"color":"#fff"}}`, `{"type":"update","key":"","payload":{"color":"#fff"}}`},
		{"Null", `null`, `{"type":"message","data":null}`},
		{"EmptyObject", `{}`, `{"type":"message","data":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			sender, _ := h.connect(t, context.Background())
			other, _ := h.connect(t, context.Background())

			sender.send(t, tt.msg)

			for _, c := range []*fakeConn{sender, other} {
				assert.JSONEq(t, tt.want, c.nextRaw(t))
			}
		})
	}
}

func TestServePersistedUpdate(t *testing.T) {
	h := newHarness(t)
	sender, _ := h.connect(t, context.Background())
	other, _ := h.connect(t, context.Background())

	sender.send(t, `{"type":"update","key":"quadcopter","persist":true,"payload":{"scale":2.5,"unknown":"x"}}`)

	for _, c := range []*fakeConn{sender, other} {
		ev := c.next(t)
		assert.Equal(t, broadcast.TypeUpdate, ev.Type)
		assert.Equal(t, map[string]any{"scale": 2.5}, ev.Payload)
		c.silent(t)
	}

	c, err := h.store.Get(context.Background(), "quadcopter")
	require.NoError(t, err)
	assert.Equal(t, 2.5, c.Scale)
}

func TestServePersistedUpdateErrors(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		detail string
	}{
		{"UnknownKey", `{"type":"update","key":"nope","persist":true,"payload":{"scale":2}}`, DetailNotFound},
		{"InvalidValue", `{"type":"update","key":"quadcopter","persist":true,"payload":{"scale":-1}}`, ""},
		{"WrongType", `{"type":"update","key":"quadcopter","persist":true,"payload":{"animate":"yes"}}`, ""},
		{"KeyNotString", `{"type":"update","key":7,"payload":{}}`, DetailKeyNotString},
		{"PayloadNotObject", `{"type":"update","key":"quadcopter","payload":[1]}`, DetailPayloadNotMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			sender, _ := h.connect(t, context.Background())
			other, _ := h.connect(t, context.Background())

			sender.send(t, tt.msg)

			ev := sender.next(t)
			assert.Equal(t, broadcast.TypeError, ev.Type)
			if tt.detail != "" {
				assert.Equal(t, tt.detail, ev.Detail)
			} else {
				assert.NotEmpty(t, ev.Detail)
			}
			other.silent(t)

			c, err := h.store.Get(context.Background(), "quadcopter")
			require.NoError(t, err)
			assert.Equal(t, 1.0, c.Scale)
		})
	}
}

func TestServeRelaysOtherMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want any
	}{
		{"Array", `[1,2]`, []any{float64(1), float64(2)}},
		{"OtherType", `{"type":"chat","text":"hi"}`, map[string]any{"type": "chat", "text": "hi"}},
		{"UpdateWithoutPayload", `{"type":"update","key":"quadcopter"}`, map[string]any{"type": "update", "key": "quadcopter"}},
		{"Number", `42`, float64(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			sender, _ := h.connect(t, context.Background())
			other, _ := h.connect(t, context.Background())

			sender.send(t, tt.msg)

			for _, c := range []*fakeConn{sender, other} {
				ev := c.next(t)
				assert.Equal(t, broadcast.TypeMessage, ev.Type)
				assert.Equal(t, tt.want, ev.Data)
			}
		})
	}
}

func TestServeFailingPeerDoesNotAffectOthers(t *testing.T) {
	h := newHarness(t)
	sender, _ := h.connect(t, context.Background())
	broken, _ := h.connect(t, context.Background())
	broken.failing = true

	res, err := h.broadcaster.Broadcast(broadcast.MessageEvent("ping"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Recipients)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "ping", sender.next(t).Data)
}
