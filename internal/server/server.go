package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server with graceful shutdown.
type Server struct {
	http *http.Server
}

// NewServer creates a server around the configured router.
func NewServer(router *gin.Engine, addr string) *Server {
	return &Server{
		http: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
}

// Run starts the server and blocks until an interrupt or a fatal
// listener error, then shuts down gracefully.
func (s *Server) Run() error {
	errChan := make(chan error, 1)
	go func() {
		log.Printf("[Server] Listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Printf("[Server] Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}

// Stop shuts the server down without waiting for a signal.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
