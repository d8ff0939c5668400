package broadcast

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"drone-config/core/metrics"

	"go.uber.org/zap"
)

// Session is one connected live client.
type Session interface {
	// ID uniquely identifies the session for its lifetime.
	ID() string
	// Send writes one encoded event. It must be safe for concurrent use.
	Send(data []byte) error
}

// Result summarises one broadcast.
type Result struct {
	Recipients int
	Failed     int
}

// Broadcaster owns the set of active sessions and fans events out to them.
type Broadcaster struct {
	mu       sync.Mutex
	sessions map[string]Session

	logger  *zap.Logger
	metrics *Metrics
}

// New creates a broadcaster. A nil registry disables metrics.
func New(logger *zap.Logger, registry *metrics.Registry) *Broadcaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Broadcaster{
		sessions: make(map[string]Session),
		logger:   logger,
		metrics:  newMetrics(registry),
	}
}

// Register adds a session to the active set.
func (b *Broadcaster) Register(s Session) {
	b.mu.Lock()
	b.sessions[s.ID()] = s
	n := len(b.sessions)
	b.mu.Unlock()

	b.metrics.registered(n)
}

// Unregister removes a session. Removing an unknown session is a no-op.
func (b *Broadcaster) Unregister(s Session) {
	b.mu.Lock()
	_, ok := b.sessions[s.ID()]
	delete(b.sessions, s.ID())
	n := len(b.sessions)
	b.mu.Unlock()

	if ok {
		b.metrics.unregistered(n)
	}
}

// Len returns the number of active sessions.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

// Broadcast encodes ev once and delivers it to every session active at call time.
// Delivery failures are isolated per session and only counted in the result;
// the returned error is reserved for encoding failures.
func (b *Broadcaster) Broadcast(ev Event) (Result, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode %s event: %w", ev.Type, err)
	}

	start := time.Now()
	recipients := b.snapshot()
	res := Result{Recipients: len(recipients)}

	var (
		wg     sync.WaitGroup
		failMu sync.Mutex
	)
	for _, s := range recipients {
		wg.Add(1)
		go func(s Session) {
			defer wg.Done()
			if err := s.Send(data); err != nil {
				b.logger.Debug("Broadcast delivery failed",
					zap.String("session_id", s.ID()),
					zap.String("type", ev.Type),
					zap.Error(err))
				failMu.Lock()
				res.Failed++
				failMu.Unlock()
			}
		}(s)
	}
	wg.Wait()

	b.metrics.broadcasted(ev.Type, res, time.Since(start))
	return res, nil
}

// Send encodes ev and delivers it to a single session.
func (b *Broadcaster) Send(s Session, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", ev.Type, err)
	}
	err = s.Send(data)
	b.metrics.sent(ev.Type, err)
	if err != nil {
		return fmt.Errorf("failed to send %s event to session %s: %w", ev.Type, s.ID(), err)
	}
	return nil
}

// snapshot copies the active set under the lock so deliveries never hold it.
func (b *Broadcaster) snapshot() []Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := make([]Session, 0, len(b.sessions))
	for _, s := range b.sessions {
		list = append(list, s)
	}
	return list
}
