package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	appinsights "github.com/preston-bernstein/nba-insights-service/internal/app/insights"
	"github.com/preston-bernstein/nba-insights-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeViewError maps service errors onto HTTP statuses.
func writeViewError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, appinsights.ErrNoSnapshot):
		writeError(w, r, http.StatusServiceUnavailable, "data not loaded", logger)
	case errors.Is(err, appinsights.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found", logger)
	default:
		logging.Error(logger, "view failed", err, slog.String(logging.FieldPath, r.URL.Path))
		writeError(w, r, http.StatusInternalServerError, "failed to compute view", logger)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
