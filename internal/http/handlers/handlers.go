// Package handlers wires the HTTP routes to the score service.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"livescore-service/internal/app/scores"
	"livescore-service/internal/logging"
	"livescore-service/internal/poller"
	"livescore-service/internal/providers/sportsdb"
	"livescore-service/internal/timeutil"
)

// Handler serves the API routes.
type Handler struct {
	svc      *scores.Service
	logger   *slog.Logger
	statusFn func() poller.Status
	adapters []string
}

// NewHandler constructs a Handler. statusFn may be nil when no poller
// runs; readiness then reports ready unconditionally.
func NewHandler(svc *scores.Service, logger *slog.Logger, statusFn func() poller.Status, adapters []string) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
		adapters: adapters,
	}
}

// Router builds the mux router with all API routes registered.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/ready", h.Ready).Methods(http.MethodGet)
	api.HandleFunc("/live", h.Live).Methods(http.MethodGet)
	api.HandleFunc("/today", h.Today).Methods(http.MethodGet)
	api.HandleFunc("/leagues", h.Leagues).Methods(http.MethodGet)
	api.HandleFunc("/leagues/{id}/standings", h.Standings).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}", h.MatchByID).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(h.notFound)
	return r
}

// Health reports liveness. It answers ok as long as the process runs;
// upstream state is visible on the data endpoints' online flag.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	resp := map[string]any{
		"status":   "ok",
		"adapters": h.adapters,
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Ready reports readiness for traffic based on the poller's health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Live returns the merged in-play matches.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	resp := h.svc.Live(r.Context())
	loggerFromContext(r, h.logger).Info("served live matches",
		logging.FieldCount, resp.Count, "online", resp.Online, "cached", resp.Cached)
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Today returns the day's fixtures grouped by league. An optional
// date=YYYY-MM-DD query selects another day where the upstreams allow.
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
	}
	resp := h.svc.Today(r.Context(), date)
	loggerFromContext(r, h.logger).Info("served today fixtures",
		logging.FieldDate, resp.Date, logging.FieldCount, resp.Count, "online", resp.Online, "cached", resp.Cached)
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Leagues returns the league directory split by the top-league policy.
func (h *Handler) Leagues(w http.ResponseWriter, r *http.Request) {
	resp := h.svc.Leagues(r.Context())
	loggerFromContext(r, h.logger).Info("served league directory",
		logging.FieldCount, resp.Count, "online", resp.Online, "cached", resp.Cached)
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Standings returns the league table. An optional season=YYYY-YYYY
// query selects a historical season.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	season := r.URL.Query().Get("season")

	resp, err := h.svc.Standings(r.Context(), id, season)
	if err != nil {
		if errors.Is(err, scores.ErrAllUnreachable) {
			writeError(w, r, http.StatusServiceUnavailable, "standings unavailable", h.logger)
			return
		}
		loggerFromContext(r, h.logger).Error("standings lookup failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "upstream error", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// MatchByID returns the detail view for one match.
func (h *Handler) MatchByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "missing match id", h.logger)
		return
	}

	resp, err := h.svc.MatchDetail(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, sportsdb.ErrNotFound):
			writeError(w, r, http.StatusNotFound, "match not found", h.logger)
		case errors.Is(err, scores.ErrAllUnreachable):
			writeError(w, r, http.StatusServiceUnavailable, "match detail unavailable", h.logger)
		default:
			loggerFromContext(r, h.logger).Error("match detail lookup failed", "err", err)
			writeError(w, r, http.StatusBadGateway, "upstream error", h.logger)
		}
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}
