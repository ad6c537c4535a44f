// Package server maps resolver outcomes onto the HTTP contract: 503 when the
// snapshot is empty, 404 for unknown recording URLs, 500 for malformed cells,
// 200 with the record otherwise.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"call-retrieval-go/internal/dataset"
	"call-retrieval-go/internal/logger"
	"call-retrieval-go/internal/resolver"
)

type Server struct {
	ds     *dataset.Dataset
	stats  resolver.Summary
	router *chi.Mux
}

// New builds the router. An empty apiKey disables authentication.
func New(ds *dataset.Dataset, stats resolver.Summary, apiKey string) *Server {
	s := &Server{
		ds:     ds,
		stats:  stats,
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(15 * time.Second))

	s.router.Get("/healthz", s.handleHealth)
	s.router.Group(func(r chi.Router) {
		r.Use(apiKeyAuth(apiKey))
		r.Get("/get-call-details", s.handleCallDetails)
		r.Get("/stats", s.handleStats)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	logger.New().WithRequest(r).Debug("health check")
	fmt.Fprint(w, "ok")
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	logger.New().WithRequest(r).WithField("handler", "stats").Info("stats requested")
	writeJSON(w, http.StatusOK, s.stats)
}

func (s *Server) handleCallDetails(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "get-call-details")

	recordingURL := r.URL.Query().Get("recording_url")
	if recordingURL == "" {
		reqLog.Warn("missing recording_url")
		writeError(w, http.StatusBadRequest, "missing recording_url")
		return
	}
	reqLog = reqLog.WithField("recording_url", recordingURL)

	rec, err := resolver.Resolve(s.ds, recordingURL)
	switch {
	case errors.Is(err, resolver.ErrUnavailable):
		reqLog.Warn("dataset empty, serving unavailable")
		writeError(w, http.StatusServiceUnavailable, "service unavailable: call data not loaded")
	case errors.Is(err, resolver.ErrNotFound):
		reqLog.Info("recording url not found")
		writeError(w, http.StatusNotFound, fmt.Sprintf("recording URL not found: %s", recordingURL))
	case err != nil:
		var fieldErr *resolver.FieldDecodeError
		if errors.As(err, &fieldErr) {
			reqLog.WithField("field", fieldErr.Field).WithField("error", err.Error()).Error("field decode failed")
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("error decoding field %s for the requested URL", fieldErr.Field))
			return
		}
		reqLog.WithField("error", err.Error()).Error("resolve failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		reqLog.Info("record resolved")
		writeJSON(w, http.StatusOK, rec)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
