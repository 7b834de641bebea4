package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests     atomic.Int64
	ConnectorRequests  atomic.Int64
	ConnectorErrors    atomic.Int64
	ConnectorTimeouts  atomic.Int64
	EnrichRequests     atomic.Int64
	EnrichErrors       atomic.Int64
	ArticleFetches     atomic.Int64
	ArticleFetchErrors atomic.Int64
	ReachabilityProbes atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests":      metrics.SearchRequests.Load(),
		"connector_requests":   metrics.ConnectorRequests.Load(),
		"connector_errors":     metrics.ConnectorErrors.Load(),
		"connector_timeouts":   metrics.ConnectorTimeouts.Load(),
		"enrich_requests":      metrics.EnrichRequests.Load(),
		"enrich_errors":        metrics.EnrichErrors.Load(),
		"article_fetches":      metrics.ArticleFetches.Load(),
		"article_fetch_errors": metrics.ArticleFetchErrors.Load(),
		"reachability_probes":  metrics.ReachabilityProbes.Load(),
		"cache_hits":           hits,
		"cache_misses":         misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"search_requests",
		"connector_requests", "connector_errors", "connector_timeouts",
		"enrich_requests", "enrich_errors",
		"article_fetches", "article_fetch_errors",
		"reachability_probes",
		"cache_hits", "cache_misses",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
