package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-insights-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The admin routes are mounted only
// when admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/debug", handler.Debug)
	mux.HandleFunc("/views/mvp", handler.MVP)
	mux.HandleFunc("/views/mvp/", handler.MVPPlayer)
	mux.HandleFunc("/views/bench", handler.Bench)
	mux.HandleFunc("/views/bench/", handler.BenchTeam)
	mux.HandleFunc("/views/scoring", handler.Scoring)
	mux.HandleFunc("/views/championship", handler.Championship)
	mux.HandleFunc("/views/trade-impact", handler.TradeImpact)
	if admin != nil {
		mux.HandleFunc("/admin/reload", admin.Reload)
	}
	return mux
}
