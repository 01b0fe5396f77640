package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	appinsights "github.com/preston-bernstein/nba-insights-service/internal/app/insights"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
	"github.com/preston-bernstein/nba-insights-service/internal/poller"
)

const (
	mvpPrefix   = "/views/mvp/"
	benchPrefix = "/views/bench/"
)

// Handler wires HTTP routes to the view service.
type Handler struct {
	svc      *appinsights.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the service is
// always reported ready.
func NewHandler(svc *appinsights.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// ServeHTTP dispatches every route; NewRouter registers the same handlers on a ServeMux.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch path := r.URL.Path; {
	case path == "/health":
		h.Health(w, r)
	case path == "/ready":
		h.Ready(w, r)
	case path == "/debug":
		h.Debug(w, r)
	case path == "/views/mvp":
		h.MVP(w, r)
	case strings.HasPrefix(path, mvpPrefix):
		h.MVPPlayer(w, r)
	case path == "/views/bench":
		h.Bench(w, r)
	case strings.HasPrefix(path, benchPrefix):
		h.BenchTeam(w, r)
	case path == "/views/scoring":
		h.Scoring(w, r)
	case path == "/views/championship":
		h.Championship(w, r)
	case path == "/views/trade-impact":
		h.TradeImpact(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

type debugResponse struct {
	Snapshot *appinsights.Debug `json:"snapshot"`
	Reloader *poller.Status     `json:"reloader,omitempty"`
}

// Debug lists the loaded collections with record counts and the reloader state.
func (h *Handler) Debug(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	var resp debugResponse
	if info, err := h.svc.Debug(r.Context()); err == nil {
		resp.Snapshot = &info
	}
	if h.statusFn != nil {
		status := h.statusFn()
		resp.Reloader = &status
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// MVP returns the ranked MVP candidates.
func (h *Handler) MVP(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	candidates, err := h.svc.MVP(r.Context())
	if err != nil {
		writeViewError(w, r, err, logger)
		return
	}
	logging.Info(logger, "served view", logging.FieldView, appinsights.ViewMVP, logging.FieldCount, len(candidates))
	writeJSON(w, nethttp.StatusOK, candidates, logger)
}

// MVPPlayer returns one player's averages and recent game scores.
func (h *Handler) MVPPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	player, ok := pathParam(r, mvpPrefix)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	candidate, err := h.svc.MVPPlayer(r.Context(), player)
	if err != nil {
		writeViewError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, candidate, logger)
}

// Bench returns the teams ranked by bench contribution.
func (h *Handler) Bench(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	profiles, err := h.svc.Bench(r.Context())
	if err != nil {
		writeViewError(w, r, err, logger)
		return
	}
	logging.Info(logger, "served view", logging.FieldView, appinsights.ViewBench, logging.FieldCount, len(profiles))
	writeJSON(w, nethttp.StatusOK, profiles, logger)
}

// BenchTeam returns one team's bench profile.
func (h *Handler) BenchTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	team, ok := pathParam(r, benchPrefix)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	profile, err := h.svc.BenchTeam(r.Context(), team)
	if err != nil {
		writeViewError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, profile, logger)
}

// Scoring returns the scoring leaders. hide accepts comma-separated player names and
// may be repeated.
func (h *Handler) Scoring(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	var hidden []string
	for _, raw := range r.URL.Query()["hide"] {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				hidden = append(hidden, name)
			}
		}
	}
	logger := loggerFromContext(r, h.logger)
	series, err := h.svc.Scoring(r.Context(), hidden)
	if err != nil {
		writeViewError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, series, logger)
}

// Championship returns bubble points filtered by ?conference=all|east|west.
func (h *Handler) Championship(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	points, err := h.svc.Championship(r.Context(), r.URL.Query().Get("conference"))
	if err != nil {
		writeViewError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, points, logger)
}

// TradeImpact returns the deduplicated players and post-trade team windows.
func (h *Handler) TradeImpact(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	impact, err := h.svc.TradeImpact(r.Context())
	if err != nil {
		writeViewError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, impact, logger)
}

// pathParam extracts the single escaped segment following prefix.
func pathParam(r *nethttp.Request, prefix string) (string, bool) {
	raw := strings.TrimPrefix(r.URL.EscapedPath(), prefix)
	if raw == "" || strings.Contains(raw, "/") {
		return "", false
	}
	val, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}
	val = strings.TrimSpace(val)
	return val, val != ""
}
