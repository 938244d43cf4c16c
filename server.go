package gateway

import (
	"context"
	"net/http"
	"time"
)

type Server struct {
	httpServer *http.Server
}

// NewServer builds the http.Server eagerly. Shutdown may be called from another
// goroutine at any point, including before Run.
func NewServer(port string, handler http.Handler, readTimeout, writeTimeout time.Duration) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           "0.0.0.0:" + port,
			Handler:        handler,
			MaxHeaderBytes: 1 << 20,
			ReadTimeout:    readTimeout,
			WriteTimeout:   writeTimeout,
		},
	}
}

// Run blocks until the server stops. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
