package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nba-insights-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-insights-service/internal/testutil"
)

func TestRouterRoutesKnownPaths(t *testing.T) {
	svc, _ := testutil.NewFixtureService(t)
	router := NewRouter(handlers.NewHandler(svc, nil, nil), nil)

	cases := map[string]int{
		"/health":                        http.StatusOK,
		"/ready":                         http.StatusOK,
		"/debug":                         http.StatusOK,
		"/views/mvp":                     http.StatusOK,
		"/views/mvp/Nikola%20Jokic":      http.StatusOK,
		"/views/mvp/Nobody":              http.StatusNotFound,
		"/views/bench":                   http.StatusOK,
		"/views/bench/DEN":               http.StatusOK,
		"/views/scoring":                 http.StatusOK,
		"/views/championship?conference": http.StatusOK,
		"/views/trade-impact":            http.StatusOK,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	svc, _ := testutil.NewServiceWithSnapshot(nil)
	router := NewRouter(handlers.NewHandler(svc, nil, nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}

func TestRouterAdminMountedOnlyWithHandler(t *testing.T) {
	svc, _ := testutil.NewServiceWithSnapshot(nil)
	h := handlers.NewHandler(svc, nil, nil)

	rr := testutil.Serve(NewRouter(h, nil), http.MethodPost, "/admin/reload", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	poller := &testutil.StubPoller{}
	admin := handlers.NewAdminHandler(poller, "secret", nil)
	req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = testutil.ServeRequest(NewRouter(h, admin), req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if poller.ReloadCalls != 1 {
		t.Fatalf("expected reload through router")
	}
}
