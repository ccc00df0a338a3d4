package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	"github.com/KirkDiggler/theta-arc/internal/pkg/idgen"
)

// Path is where bridges connect
const Path = "/gateway"

// AcceptHandler upgrades bridge connections and runs their sessions
type AcceptHandler struct {
	hub            *Hub
	frames         FrameHandler
	ids            idgen.Generator
	originPatterns []string
}

// NewAcceptHandler creates the websocket endpoint. With no origin patterns
// every origin is accepted.
func NewAcceptHandler(hub *Hub, frames FrameHandler, originPatterns ...string) *AcceptHandler {
	return &AcceptHandler{
		hub:            hub,
		frames:         frames,
		ids:            idgen.NewUUID("bridge"),
		originPatterns: originPatterns,
	}
}

func (h *AcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: len(h.originPatterns) == 0,
		OriginPatterns:     h.originPatterns,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to accept bridge", "error", err)
		return
	}

	session := NewSession(h.ids.Generate(), NewTransport(conn), h.frames)
	h.hub.Register(session)
	defer h.hub.Unregister(session.ID())

	err = session.Run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case websocket.CloseStatus(err) == websocket.StatusNormalClosure,
		websocket.CloseStatus(err) == websocket.StatusGoingAway:
		slog.DebugContext(ctx, "Bridge closed", "session_id", session.ID())
	default:
		slog.ErrorContext(ctx, "Bridge session failed", "session_id", session.ID(), "error", err)
	}
}

// NewMux serves the gateway and a liveness probe
func NewMux(handler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(Path, handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
