package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
)

// Search runs the full recommendation pipeline for one request:
// cache check → query expansion → concurrent (connector × variant) fan-out
// with a per-branch timeout → dedup → word-count enrichment → filter →
// rank → top-3 + backups. A blank topic is rejected before any I/O; every
// other failure degrades to fewer candidates, never to an error.
func Search(ctx context.Context, req RecommendationRequest) (RecommendationResult, error) {
	metrics.SearchRequests.Add(1)

	if req.MockMode {
		return MockResult(req), nil
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return RecommendationResult{}, ErrEmptyTopic
	}

	key := req.CacheKey()
	if cached, ok := CacheGet(ctx, key); ok {
		slog.Info("search: cache hit", slog.String("topic", topic))
		return cached, nil
	}

	language := NormLang(req.Language)
	variants := ExpandQueries(topic)

	merged := fanOut(ctx, variants, language)
	deduped := Deduplicate(merged)
	enriched := EnrichCandidates(ctx, deduped, language)
	filtered := FilterCandidates(enriched, req)
	ranked := Rank(filtered, req)

	out := sliceResult(ranked)
	CacheSet(ctx, key, out)

	slog.Info("search: complete",
		slog.String("topic", topic),
		slog.Int("merged", len(merged)),
		slog.Int("deduped", len(deduped)),
		slog.Int("returned", len(out.TopThree)+len(out.Backups)),
	)
	return out, nil
}

// fanOut launches one goroutine per (connector, query variant) pair. Each
// branch is bounded by cfg.ConnectorTimeout; a slow or failing connector
// contributes zero candidates without slowing the others. Merge order is
// completion order, so live results are not bit-reproducible.
func fanOut(ctx context.Context, variants []string, language string) []ArticleCandidate {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		merged []ArticleCandidate
	)

	for _, connector := range cfg.Connectors {
		for _, query := range variants {
			wg.Add(1)
			go func(c Connector, q string) {
				defer wg.Done()
				metrics.ConnectorRequests.Add(1)

				bctx, cancel := context.WithTimeout(ctx, cfg.ConnectorTimeout)
				defer cancel()

				results, err := c.FetchCandidates(bctx, q, language)
				if err != nil {
					if errors.Is(err, context.DeadlineExceeded) {
						metrics.ConnectorTimeouts.Add(1)
					} else {
						metrics.ConnectorErrors.Add(1)
					}
					slog.Warn("connector failed",
						slog.String("source", string(c.Source())),
						slog.String("query", q),
						slog.Any("error", err),
					)
					return
				}
				slog.Debug("connector results",
					slog.String("source", string(c.Source())),
					slog.String("query", q),
					slog.Int("count", len(results)),
				)
				mu.Lock()
				merged = append(merged, results...)
				mu.Unlock()
			}(connector, query)
		}
	}

	wg.Wait()
	return merged
}

// Deduplicate walks candidates in order and keeps the first occurrence of
// each lower-cased URL and each normalized title.
func Deduplicate(candidates []ArticleCandidate) []ArticleCandidate {
	seenURLs := make(map[string]bool, len(candidates))
	seenTitles := make(map[string]bool, len(candidates))

	var out []ArticleCandidate
	for _, c := range candidates {
		u := strings.ToLower(c.URL)
		t := NormalizeTitle(c.Title)
		if seenURLs[u] || seenTitles[t] {
			continue
		}
		seenURLs[u] = true
		seenTitles[t] = true
		out = append(out, c)
	}
	return out
}

// sliceResult splits a ranked list into the top three plus up to ten backups.
func sliceResult(ranked []ArticleCandidate) RecommendationResult {
	top := ranked[:min(3, len(ranked))]
	rest := ranked[len(top):]
	backups := rest[:min(10, len(rest))]
	return RecommendationResult{
		TopThree: append([]ArticleCandidate(nil), top...),
		Backups:  append([]ArticleCandidate(nil), backups...),
	}
}
