package live

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"drone-config/core/broadcast"
	"drone-config/core/logger"
	"drone-config/feature/drone"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// Error details sent to the originating session.
const (
	DetailInvalidJSON     = "invalid json"
	DetailNotFound        = "drone not found"
	DetailKeyNotString    = "key must be a string"
	DetailPayloadNotMap   = "payload must be an object"
	DetailInternalFailure = "internal error"
)

// Updater persists a patch and announces it. *drone.Service implements it.
type Updater interface {
	Update(ctx context.Context, key string, p drone.Patch) (*drone.Config, error)
}

// Handler runs the message loop of every live session.
type Handler struct {
	ctx          context.Context
	broadcaster  *broadcast.Broadcaster
	updater      Updater
	logger       *zap.Logger
	writeTimeout time.Duration
}

// NewHandler creates a handler. Cancelling ctx closes every session it serves.
func NewHandler(ctx context.Context, broadcaster *broadcast.Broadcaster, updater Updater, logger *zap.Logger, writeTimeout time.Duration) *Handler {
	return &Handler{
		ctx:          ctx,
		broadcaster:  broadcaster,
		updater:      updater,
		logger:       logger,
		writeTimeout: writeTimeout,
	}
}

// RegisterRoutes mounts the WebSocket endpoint at path.
func (h *Handler) RegisterRoutes(app fiber.Router, path string) {
	app.Use(path, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get(path, websocket.New(func(c *websocket.Conn) {
		h.Serve(h.ctx, c)
	}))
}

// Serve runs one session from Open to Closed. It returns when the peer
// disconnects, a read fails or ctx is cancelled; the session is unregistered
// exactly once on every path.
func (h *Handler) Serve(ctx context.Context, conn Conn) {
	s := NewSession(conn, h.writeTimeout)
	l := logger.WithSession(h.logger, s.ID())

	if !s.open() {
		return
	}
	h.broadcaster.Register(s)
	l.Info("Live session opened", zap.Int("sessions", h.broadcaster.Len()))

	cleanup := func() {
		h.broadcaster.Unregister(s)
		l.Info("Live session closed", zap.Int("sessions", h.broadcaster.Len()))
	}
	defer func() {
		if r := recover(); r != nil {
			l.Error("Live session panicked", zap.Any("panic", r))
		}
	}()
	defer s.close(cleanup)

	// Closing the connection unblocks the pending read.
	stop := context.AfterFunc(ctx, func() { s.close(cleanup) })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if s.State() != StateClosed {
				l.Debug("Live session read ended", zap.Error(err))
			}
			return
		}
		h.handleMessage(ctx, s, l, data)
	}
}

func (h *Handler) handleMessage(ctx context.Context, s *Session, l *zap.Logger, data []byte) {
	var msg any
	if err := json.Unmarshal(data, &msg); err != nil {
		h.reply(s, l, DetailInvalidJSON)
		return
	}

	obj, ok := msg.(map[string]any)
	if !ok || obj["type"] != broadcast.TypeUpdate {
		h.broadcast(l, broadcast.MessageEvent(msg))
		return
	}
	rawKey, hasKey := obj["key"]
	rawPayload, hasPayload := obj["payload"]
	if !hasKey || !hasPayload {
		h.broadcast(l, broadcast.MessageEvent(msg))
		return
	}

	key, ok := rawKey.(string)
	if !ok {
		h.reply(s, l, DetailKeyNotString)
		return
	}
	payload, ok := rawPayload.(map[string]any)
	if !ok {
		h.reply(s, l, DetailPayloadNotMap)
		return
	}

	if persist, _ := obj["persist"].(bool); persist {
		h.persist(ctx, s, l, key, payload)
		return
	}
	h.broadcast(l, broadcast.UpdateEvent(key, payload))
}

// persist writes through the shared update path, which broadcasts on success.
func (h *Handler) persist(ctx context.Context, s *Session, l *zap.Logger, key string, payload map[string]any) {
	p, err := drone.PatchFromMap(payload)
	if err == nil {
		_, err = h.updater.Update(ctx, key, p)
	}

	var ve *drone.ValidationError
	switch {
	case err == nil:
	case errors.Is(err, drone.ErrNotFound):
		h.reply(s, l, DetailNotFound)
	case errors.As(err, &ve):
		h.reply(s, l, ve.Error())
	default:
		l.Error("Failed to persist live update", zap.String("key", key), zap.Error(err))
		h.reply(s, l, DetailInternalFailure)
	}
}

func (h *Handler) reply(s *Session, l *zap.Logger, detail string) {
	if err := h.broadcaster.Send(s, broadcast.ErrorEvent(detail)); err != nil {
		l.Debug("Failed to send error event", zap.Error(err))
	}
}

func (h *Handler) broadcast(l *zap.Logger, ev broadcast.Event) {
	if _, err := h.broadcaster.Broadcast(ev); err != nil {
		l.Error("Failed to broadcast event", zap.String("type", ev.Type), zap.Error(err))
	}
}
