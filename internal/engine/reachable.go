package engine

import (
	"context"
	"log/slog"
	"net/http"
)

// IsReachable probes a URL with HEAD, falling back to GET for servers that
// reject HEAD. Any 200–399 status counts as reachable.
func IsReachable(ctx context.Context, rawURL string) bool {
	metrics.ReachabilityProbes.Add(1)

	if ok, decided := probe(ctx, http.MethodHead, rawURL); decided {
		return ok
	}
	ok, _ := probe(ctx, http.MethodGet, rawURL)
	return ok
}

// probe issues one request. decided=false means the HEAD attempt failed in a
// way worth retrying with GET (transport error or an unhelpful status).
func probe(ctx context.Context, method, rawURL string) (ok, decided bool) {
	pctx, cancel := context.WithTimeout(ctx, cfg.ReachabilityTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(pctx, method, rawURL, nil)
	if err != nil {
		return false, true // malformed URL: GET will not fare better
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		slog.Debug("reachability probe failed", slog.String("method", method), slog.String("url", rawURL), slog.Any("error", err))
		return false, method == http.MethodGet
	}
	resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 399 {
		return true, true
	}
	// HEAD can legitimately return 403/405 where GET succeeds.
	return false, method == http.MethodGet
}

// FirstReachable walks a primary candidate and its backups in order and
// returns the index of the first reachable URL, or -1 when none respond.
func FirstReachable(ctx context.Context, candidates []ArticleCandidate) int {
	for i, c := range candidates {
		if IsReachable(ctx, c.URL) {
			return i
		}
	}
	return -1
}
