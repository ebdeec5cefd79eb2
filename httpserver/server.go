package httpserver

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// ServerConfig configures a Server.
type ServerConfig struct {
	// Addr is the TCP address to listen on, ":http" if empty.
	Addr string

	// Handler serves the requests; typically a Handler wrapped in
	// middleware via Chain.
	Handler http.Handler

	// H2C enables plaintext HTTP/2 (h2c) alongside HTTP/1.1.
	H2C bool

	// ReadHeaderTimeout bounds how long reading request headers may
	// take. Defaults to 10 seconds.
	ReadHeaderTimeout time.Duration

	// Logger receives server lifecycle diagnostics. Defaults to a
	// no-op logger.
	Logger *zap.Logger
}

// Server wraps http.Server with optional h2c support.
type Server struct {
	srv *http.Server
	log *zap.Logger
}

// NewServer returns a Server for the given configuration.
func NewServer(cfg ServerConfig) *Server {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	handler := cfg.Handler
	if cfg.H2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	readHeaderTimeout := cfg.ReadHeaderTimeout
	if readHeaderTimeout == 0 {
		readHeaderTimeout = 10 * time.Second
	}

	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log,
	}
}

// ListenAndServe starts serving. It blocks until the server stops and
// returns http.ErrServerClosed after a clean Shutdown.
func (s *Server) ListenAndServe() error {
	s.log.Info("server listening", zap.String("addr", s.srv.Addr))
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts the server down, waiting for in-flight
// requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("server shutting down")
	return s.srv.Shutdown(ctx)
}
