package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-insights-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used as the source label on load metrics and logs.
func normalizeProviderName(raw string, provider providers.SnapshotProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
