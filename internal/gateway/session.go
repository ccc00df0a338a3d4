package gateway

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/coder/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/theta-arc/internal/chat"
	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// WriteBuffer is how many outbound frames a session queues before it
// starts refusing new ones
const WriteBuffer = 1024

// ErrBackpressure is returned when a session's write queue is full
var ErrBackpressure = errors.Unavailable("write queue is full")

// Transport moves raw frames over one connection
type Transport interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close(reason string) error
}

type wsTransport struct {
	conn *websocket.Conn
}

// NewTransport adapts a websocket connection
func NewTransport(conn *websocket.Conn) Transport {
	return &wsTransport{conn: conn}
}

func (t *wsTransport) Read(ctx context.Context) ([]byte, error) {
	_, data, err := t.conn.Read(ctx)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (t *wsTransport) Write(ctx context.Context, data []byte) error {
	return t.conn.Write(ctx, websocket.MessageText, data)
}

func (t *wsTransport) Close(reason string) error {
	return t.conn.Close(websocket.StatusNormalClosure, reason)
}

// FrameHandler receives decoded inbound frames. Replies go back through
// replier.
type FrameHandler interface {
	HandleFrame(ctx context.Context, frame *Frame, replier chat.Replier) error
}

// Session is one connected bridge
type Session struct {
	id        string
	transport Transport
	handler   FrameHandler
	writeCh   chan []byte
	closed    atomic.Bool
}

// NewSession creates a session reading from transport
func NewSession(id string, transport Transport, handler FrameHandler) *Session {
	return &Session{
		id:        id,
		transport: transport,
		handler:   handler,
		writeCh:   make(chan []byte, WriteBuffer),
	}
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Run pumps frames until the connection fails or ctx ends
func (s *Session) Run(ctx context.Context) error {
	defer s.close("session ended")

	if err := s.SendFrame(&Frame{Type: FrameHello, SessionID: s.id}); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.readLoop(ctx)
	})
	eg.Go(func() error {
		return s.writeLoop(ctx)
	})
	return eg.Wait()
}

// Send queues raw data without blocking
func (s *Session) Send(data []byte) error {
	if s.closed.Load() {
		return errors.Unavailable("session closed")
	}
	select {
	case s.writeCh <- data:
		return nil
	default:
		return ErrBackpressure
	}
}

// SendFrame encodes and queues f
func (s *Session) SendFrame(f *Frame) error {
	data, err := EncodeFrame(f)
	if err != nil {
		return err
	}
	return s.Send(data)
}

// Reply implements chat.Replier
func (s *Session) Reply(_ context.Context, r *chat.Reply) error {
	return s.SendFrame(&Frame{Type: FrameReply, Reply: r})
}

func (s *Session) readLoop(ctx context.Context) error {
	for {
		data, err := s.transport.Read(ctx)
		if err != nil {
			return err
		}

		frame, err := DecodeFrame(data)
		if err != nil {
			slog.Warn("Dropped inbound frame", "session_id", s.id, "error", err)
			s.sendError(errors.GetMessage(err))
			continue
		}
		if err := s.handler.HandleFrame(ctx, frame, s); err != nil {
			slog.Warn("Frame rejected", "session_id", s.id, "type", frame.Type, "error", err)
			s.sendError(errors.PlayerMessage(err))
		}
	}
}

func (s *Session) writeLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case data := <-s.writeCh:
			if err := s.transport.Write(ctx, data); err != nil {
				return err
			}
		}
	}
}

func (s *Session) sendError(msg string) {
	if err := s.SendFrame(&Frame{Type: FrameError, Error: msg}); err != nil {
		slog.Debug("Error frame dropped", "session_id", s.id, "error", err)
	}
}

func (s *Session) close(reason string) {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	if err := s.transport.Close(reason); err != nil {
		slog.Debug("Transport close failed", "session_id", s.id, "error", err)
	}
}
