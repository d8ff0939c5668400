package live

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// State is the lifecycle phase of a live session.
type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ErrSessionClosed is returned when sending on a closed session.
var ErrSessionClosed = errors.New("session closed")

// Conn is the subset of *websocket.Conn a session uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Session wraps one connection. Writes are serialized; the underlying
// websocket connection does not support concurrent writers.
type Session struct {
	id           string
	conn         Conn
	writeTimeout time.Duration

	state     atomic.Int32
	writeMu   sync.Mutex
	closeOnce sync.Once
}

// NewSession creates a session in the Connecting state.
func NewSession(conn Conn, writeTimeout time.Duration) *Session {
	return &Session{
		id:           uuid.NewString(),
		conn:         conn,
		writeTimeout: writeTimeout,
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Send writes one text frame.
func (s *Session) Send(data []byte) error {
	if s.State() == StateClosed {
		return ErrSessionClosed
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.writeTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// open moves Connecting to Open. It reports false if the session already left Connecting.
func (s *Session) open() bool {
	return s.state.CompareAndSwap(int32(StateConnecting), int32(StateOpen))
}

// close moves the session to Closed and runs onClose exactly once.
func (s *Session) close(onClose func()) {
	s.closeOnce.Do(func() {
		s.state.Store(int32(StateClosed))
		if onClose != nil {
			onClose()
		}
		_ = s.conn.Close()
	})
}
