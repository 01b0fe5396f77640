package server

import (
	"testing"

	"github.com/preston-bernstein/nba-insights-service/internal/config"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/testutil"
)

func TestProviderFactoryBuildsWrappedProvider(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{DataSource: config.SourceFixture})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	unwrapper, ok := prov.(interface {
		Unwrap() providers.SnapshotProvider
	})
	if !ok || unwrapper.Unwrap() == nil {
		t.Fatalf("expected retrying wrapper around base provider")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("FS", nil); got != "fs" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", testutil.GoodProvider{}); got != "testutil.goodprovider" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
}
