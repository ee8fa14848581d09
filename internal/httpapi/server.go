// Package httpapi implements SPEC_FULL.md §7's HTTP facade: JSON
// endpoints over the memorable, personal, and streaming generators,
// with bearer-token auth and per-address rate limiting.
package httpapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jigsaw-gen/jigsaw/internal/logger"
)

// Server is the HTTP facade (spec.md §6, SPEC_FULL.md §7).
type Server struct {
	// APIToken, if non-empty, is the HS256 secret that request bearer
	// tokens must be signed with (SPEC_FULL.md §5); every route except
	// /health then requires a valid token.
	APIToken string
	// RateLimitRPS bounds sustained requests per remote address.
	RateLimitRPS float64

	limiter *addrLimiter

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
}

// Start begins listening and serving on addr. It blocks until the
// server stops (Close is called or Serve returns an error).
func (s *Server) Start(addr string) error {
	if s.RateLimitRPS <= 0 {
		s.RateLimitRPS = 20
	}
	s.limiter = newAddrLimiter(s.RateLimitRPS, int(s.RateLimitRPS))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/memorable/generate", s.withMiddleware(s.handleMemorable))
	mux.HandleFunc("POST /api/personal/generate", s.withMiddleware(s.handlePersonalGenerate))
	mux.HandleFunc("POST /api/check-password", s.withMiddleware(s.handleCheckPassword))
	mux.HandleFunc("GET /api/generate/stream", s.withMiddleware(s.handleStream))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("httpapi: listen: %w", err)
	}
	s.mu.Lock()
	s.listener = ln
	s.server = &http.Server{Handler: mux}
	s.mu.Unlock()

	logger.Info("httpapi listening", "addr", addr)
	err = s.server.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true,"service":"jigsaw"}`))
}
