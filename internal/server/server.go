package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"FxPulse/internal/engine"
)

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	engine           *engine.Engine
	defaultPair      string
	defaultTimeframe string
	httpServer       *http.Server
}

// New creates a Server with its routes registered.
func New(listen string, eng *engine.Engine, defaultPair, defaultTimeframe string) *Server {
	s := &Server{
		engine:           eng,
		defaultPair:      defaultPair,
		defaultTimeframe: defaultTimeframe,
	}
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Routes builds the HTTP router.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/signal", s.handleSignal).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/retrain", s.handleRetrain).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	return r
}

// ListenAndServe blocks serving HTTP until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	log.Printf("[INFO] http server listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] write json response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
