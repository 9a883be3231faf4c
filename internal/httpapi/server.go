// Package httpapi exposes the credential operations as a JSON API on chi.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bankapp/internal/logging"
)

type Server struct {
	address         string
	handler         http.Handler
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewServer(address string, as AuthService, l logging.Logger, shutdownTimeout time.Duration) *Server {
	l = l.With("module", "http_server")
	return &Server{
		address:         address,
		handler:         NewRouter(as, l),
		logger:          l,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run serves until ctx is cancelled, then waits up to the shutdown timeout
// for in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
