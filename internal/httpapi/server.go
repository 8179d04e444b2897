// Package httpapi is the thin adapter mapping the core's data-oriented
// interface to JSON endpoints: a net/http.ServeMux built up once via
// sync.Once, a zerolog.Logger injected at construction. This package
// never reimplements rules-engine logic — every handler is a thin
// encode/decode shim around internal/engine, internal/policy, and
// internal/config.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/pokercore/internal/calibration"
	"github.com/lox/pokercore/internal/config"
)

// Server is the HTTP/WebSocket adapter process. It owns no game rules
// of its own: every request is validated and transitioned by
// internal/engine, with this layer only doing JSON marshaling, session
// bookkeeping, and error-category-to-status mapping.
type Server struct {
	cfg        *config.RuntimeConfig
	manifest   calibration.SeedManifest
	logger     zerolog.Logger
	upgrader   websocket.Upgrader
	mux        *http.ServeMux
	sessions   *sessionStore
	idGen      func() string
	http       *http.Server
	routesOnce sync.Once
}

// NewServer constructs a Server. manifest should be loaded once at
// process startup (see cmd/apiserver) and never mutated afterward —
// concurrent sessions read it without a lock.
func NewServer(logger zerolog.Logger, cfg *config.RuntimeConfig, manifest calibration.SeedManifest) *Server {
	return &Server{
		cfg:      cfg,
		manifest: manifest,
		logger:   logger.With().Str("component", "httpapi").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		mux:      http.NewServeMux(),
		sessions: newSessionStore(),
		idGen:    func() string { return uuid.New().String() },
	}
}

func (s *Server) ensureRoutes() {
	s.routesOnce.Do(func() {
		s.mux.HandleFunc("POST /game/start", s.handleStart)
		s.mux.HandleFunc("POST /game/step", s.handleStep)
		s.mux.HandleFunc("POST /game/jump", s.handleJump)
		s.mux.HandleFunc("GET /game/{id}/ai_trace", s.handleAITrace)
		s.mux.HandleFunc("GET /game/{id}/events", s.handleEvents)
		s.mux.HandleFunc("GET /health", s.handleHealth)
	})
}

// Start listens on addr and serves until the process exits or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve runs the HTTP server on an already-bound listener.
func (s *Server) Serve(listener net.Listener) error {
	s.ensureRoutes()
	s.http = &http.Server{Handler: s.mux}
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("httpapi starting")
	return s.http.Serve(listener)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	s.logger.Info().Msg("httpapi shutting down")
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK\n")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeCoreError(w http.ResponseWriter, messageKey string, params map[string]any) {
	writeJSON(w, statusFor(messageKey), errorResponse{MessageKey: messageKey, Params: params})
}
