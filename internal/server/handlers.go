package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"FxPulse/internal/collector"
)

// handleSignal runs one analysis for the requested pair/timeframe.
// Missing query parameters fall back to the configured defaults. On any
// pipeline failure the response is exactly {"error": message}: no partial
// indicator values.
func (s *Server) handleSignal(w http.ResponseWriter, r *http.Request) {
	pair := r.URL.Query().Get("pair")
	if pair == "" {
		pair = s.defaultPair
	}
	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = s.defaultTimeframe
	}

	analysis, err := s.engine.Analyze(r.Context(), pair, timeframe)
	if err != nil {
		log.Printf("[ERROR] analyze %s %s: %v", pair, timeframe, err)
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// statusFor maps pipeline error kinds to HTTP status codes.
func statusFor(err error) int {
	var fetchErr *collector.FetchError
	var schemaErr *collector.SchemaError
	switch {
	case errors.Is(err, collector.ErrDataUnavailable):
		return http.StatusNotFound
	case errors.As(err, &fetchErr), errors.As(err, &schemaErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleRetrain is the decorative retrain affordance: a simulated delay
// and an acknowledgement. No model is trained.
func (s *Server) handleRetrain(w http.ResponseWriter, r *http.Request) {
	select {
	case <-time.After(2 * time.Second):
	case <-r.Context().Done():
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
