package binding

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/spinbutton/internal/logging"
)

// Path is where the hub is mounted.
const Path = "/ws"

// Server serves a Hub over HTTP.
type Server struct {
	hub      *Hub
	listener net.Listener
	http     *http.Server
	done     chan error
}

// Listen binds addr (":0" picks a free port) and starts serving hub in the
// background.
func Listen(addr string, hub *Hub) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle(Path, hub)

	s := &Server{
		hub:      hub,
		listener: listener,
		http: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		done: make(chan error, 1),
	}

	logging.Info("Binding server listening",
		zap.String("addr", listener.Addr().String()),
		zap.String("path", Path),
	)

	go func() {
		err := s.http.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
	}()

	return s, nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Port returns the bound TCP port.
func (s *Server) Port() int {
	if tcp, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// URL returns the WebSocket URL of the hub on the bound address.
func (s *Server) URL() string {
	return fmt.Sprintf("ws://%s%s", s.listener.Addr().String(), Path)
}

// Shutdown disconnects clients and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down binding server: %w", err)
	}
	return <-s.done
}
