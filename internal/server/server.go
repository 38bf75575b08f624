// Package server runs an http.Handler on a TCP listener, optionally behind
// TLS, and shuts it down gracefully.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"golang.org/x/net/netutil"
)

// MaxConnections caps concurrently open client connections.
const MaxConnections = 100

// ShutdownTimeout is how long the daemons let Stop drain open requests.
const ShutdownTimeout = 5 * time.Second

// Server runs one HTTP handler on a capped, optionally TLS, listener.
type Server struct {
	handler http.Handler
	logger  logging.Logger
	cert    *tls.Certificate

	mu       sync.Mutex
	listener net.Listener
	srv      *http.Server
}

// New returns a Server for h. Call Listen to start it.
func New(h http.Handler, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Server{handler: h, logger: logger}
}

// SetCertificate enables TLS with cert. It must be called before Listen.
func (s *Server) SetCertificate(cert tls.Certificate) {
	s.cert = &cert
}

// Listen serves on port until Stop is called. A port of "0" picks a free one;
// Addr reports it once listening. Listen returns nil after a graceful Stop.
func (s *Server) Listen(port string) error {
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}
	ln = netutil.LimitListener(ln, MaxConnections)
	if s.cert != nil {
		ln = tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{*s.cert},
			MinVersion:   tls.VersionTLS12,
		})
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       5 * time.Minute,
	}

	s.mu.Lock()
	s.listener = ln
	s.srv = srv
	s.mu.Unlock()

	s.logger.Info("listening", "addr", ln.Addr().String(), "tls", s.cert != nil)
	err = srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Addr returns the bound address, or nil before Listen has bound.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop waits for in-flight requests until ctx expires, then closes the
// remaining connections.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Warn("graceful shutdown incomplete", "err", err)
		return srv.Close()
	}
	return nil
}
