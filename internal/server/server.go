// Package server exposes the recap service over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"recap/internal/logging"
	"recap/internal/recap"
)

// RecapBuilder builds recaps. The recap service implements it.
type RecapBuilder interface {
	Build(ctx context.Context, req recap.Request) (*recap.Recap, error)
}

// Enqueuer pushes precompute jobs onto the work queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, queueName string, payload []byte) error
}

// Server holds the HTTP handlers.
type Server struct {
	builder   RecapBuilder
	queue     Enqueuer // nil disables the refresh endpoint
	queueName string
}

// New builds a Server.
func New(builder RecapBuilder, queue Enqueuer, queueName string) *Server {
	return &Server{builder: builder, queue: queue, queueName: queueName}
}

// Routes returns the API mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/recap", s.handleRecap)
	mux.HandleFunc("POST /api/recap/refresh", s.handleRefresh)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// handleRecap builds (or serves a cached) recap synchronously.
func (s *Server) handleRecap(w http.ResponseWriter, r *http.Request) {
	var req recap.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Validate up front so bad input gets a 400, not a 502. The normalized
	// request is what goes to the builder.
	if err := req.Normalize(time.Now()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := s.builder.Build(r.Context(), req)
	if err != nil {
		logging.Logger().Errorf("recap build failed for %s#%s: %v", req.GameName, req.TagLine, err)
		writeError(w, http.StatusBadGateway, "failed to build recap")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// handleRefresh queues a background rebuild instead of blocking the caller.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if s.queue == nil {
		writeError(w, http.StatusServiceUnavailable, "background refresh is not enabled")
		return
	}

	var req recap.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Normalize(time.Now()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := json.Marshal(recap.JobPayload{
		GameName: req.GameName,
		TagLine:  req.TagLine,
		Platform: req.Platform,
		Year:     req.Year,
		Force:    true,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode job")
		return
	}

	if err := s.queue.Enqueue(r.Context(), s.queueName, payload); err != nil {
		logging.Logger().Errorf("enqueue refresh failed: %v", err)
		writeError(w, http.StatusServiceUnavailable, "failed to queue refresh")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger().Errorf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
