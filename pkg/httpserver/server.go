package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/xssguard/pkg/config"
	"github.com/dmitrymomot/xssguard/pkg/logger"
)

// Server wraps an http.Server with context-driven graceful shutdown.
type Server struct {
	srv             *http.Server
	shutdownTimeout time.Duration
	logger          *slog.Logger

	running atomic.Bool
	ready   chan struct{}
	addr    string
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a Server serving handler with the timeouts from cfg. A nil
// handler serves 404 for everything.
func New(cfg config.HTTPConfig, handler http.Handler, opts ...Option) *Server {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	s := &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger.Discard(),
		ready:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 5 * time.Second
	}
	s.srv.ErrorLog = slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn)
	return s
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr returns the bound listen address. It is only meaningful after Ready
// is closed.
func (s *Server) Addr() string { return s.addr }

// Run listens and serves until ctx is done or the server fails. A
// cancelled context is a clean stop and returns nil unless draining
// exceeds the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	s.addr = ln.Addr().String()
	close(s.ready)

	s.logger.InfoContext(ctx, "http server started", slog.String("addr", s.addr))

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Join(ErrStart, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	err = s.srv.Shutdown(shutdownCtx)
	<-errCh
	if err != nil {
		_ = s.srv.Close()
		return errors.Join(ErrShutdown, err)
	}

	s.logger.InfoContext(ctx, "http server stopped")
	return nil
}
