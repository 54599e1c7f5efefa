// Path: internal/delivery/rest/server.go
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RouteRegistrar is anything that mounts its routes on a ServeMux.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// Server is the HTTP server for the JSON API and any extra route sets
// (the web UI) mounted alongside it.
type Server struct {
	httpServer *http.Server
}

// NewServer creates and configures a new server.
func NewServer(port string, service dataService, extra ...RouteRegistrar) *Server {
	mux := http.NewServeMux()
	NewPokemonHandlers(service).RegisterRoutes(mux)
	for _, r := range extra {
		r.RegisterRoutes(mux)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      logRequests(mux),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler exposes the routed handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).Round(time.Microsecond),
		}).Debug("request")
	})
}
