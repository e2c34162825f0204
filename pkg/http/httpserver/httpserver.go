package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 10
	defaultReadTimeout     = time.Second * 5
	defaultWriteTimeout    = time.Second * 5
)

var ErrNotListening = errors.New("http server: not listening")

type config struct {
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	handler         http.Handler
	onReady         func(net.Addr)
}

type Option func(*config) error

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout > 0 {
			c.shutdownTimeout = timeout
		}
		return nil
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout > 0 {
			c.readTimeout = timeout
		}
		return nil
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout > 0 {
			c.writeTimeout = timeout
		}
		return nil
	}
}

func WithHandler(handler http.Handler) Option {
	return func(c *config) error {
		if handler == nil {
			return errors.New("http server: nil handler")
		}
		c.handler = handler
		return nil
	}
}

// WithReadySignal registers a callback invoked once the listener is bound.
func WithReadySignal(cb func(net.Addr)) Option {
	return func(c *config) error {
		c.onReady = cb
		return nil
	}
}

type HTTPServer struct {
	addr     string
	cfg      config
	server   *http.Server
	listener net.Listener
	mutex    sync.Mutex
	closer   chan struct{}
	stopOnce sync.Once
}

func New(addr string, opts ...Option) (*HTTPServer, error) {
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return nil, fmt.Errorf("http server: invalid address %q: %w", addr, err)
	}
	cfg := config{
		readTimeout:     defaultReadTimeout,
		writeTimeout:    defaultWriteTimeout,
		shutdownTimeout: defaultShutdownTimeout,
		handler:         http.NotFoundHandler(),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &HTTPServer{
		addr: addr,
		cfg:  cfg,
		server: &http.Server{
			Addr:              addr,
			Handler:           cfg.handler,
			ReadTimeout:       cfg.readTimeout,
			ReadHeaderTimeout: cfg.readTimeout,
			WriteTimeout:      cfg.writeTimeout,
		},
		closer: make(chan struct{}),
	}, nil
}

// ListenAndServe blocks until the server is stopped or fails.
// A graceful stop is not reported as an error.
func (s *HTTPServer) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.mutex.Lock()
	s.listener = listener
	s.mutex.Unlock()

	if s.cfg.onReady != nil {
		s.cfg.onReady(listener.Addr())
	}

	fatal := make(chan error, 1)
	go func() {
		fatal <- s.server.Serve(listener)
	}()

	select {
	case err := <-fatal:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.closer:
		return nil
	}
}

func (s *HTTPServer) ListenAddr() (net.Addr, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.listener == nil {
		return nil, ErrNotListening
	}
	return s.listener.Addr(), nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		close(s.closer)
		stopCtx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		if shutErr := s.server.Shutdown(stopCtx); shutErr != nil {
			err = fmt.Errorf("http server: shutdown %s: %w", s.addr, shutErr)
		}
	})
	return err
}
