package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/akasprzok/pie/internal/server"
)

type ServeCmd struct {
	DataFlags `embed:""`

	Addr  string `help:"Address to listen on." default:"127.0.0.1:8080" env:"PIE_ADDR"`
	Title string `help:"Page title." default:"pie"`
}

func (s *ServeCmd) Run(_ *Context) error {
	srv, err := s.newServer()
	if err != nil {
		return err
	}
	defer srv.Close()

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.Addr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(ctx, ln, srv.Handler())
}

// newServer builds the server, mounting the initial data if any was given.
func (s *ServeCmd) newServer() (*server.Server, error) {
	srv := server.New(s.Title)
	if s.DataFlags.Empty() {
		return srv, nil
	}
	in, err := s.DataFlags.Input()
	if err != nil {
		return nil, err
	}
	if err := srv.Update(in); err != nil {
		return nil, err
	}
	return srv, nil
}

// serve runs h on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	httpServer := &http.Server{Handler: h}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("pie listening", "addr", ln.Addr().String(), "docs", "http://"+ln.Addr().String()+"/docs")
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown failed", "error", err)
		return err
	}
	return nil
}
