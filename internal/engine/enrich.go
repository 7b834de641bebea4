package engine

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// enrichLimiter throttles enrichment fetches so a large merged set does not
// hammer the candidate hosts.
var enrichLimiter *rate.Limiter

func initEnrichLimiter() {
	if cfg.EnrichPerSecond > 0 {
		enrichLimiter = rate.NewLimiter(rate.Limit(cfg.EnrichPerSecond), cfg.EnrichBurst)
	} else {
		enrichLimiter = rate.NewLimiter(rate.Inf, 1)
	}
}

// EnrichCandidates fills in missing word counts by fetching each candidate URL
// and running the extractor, concurrently. Candidates that already carry a
// word count pass through untouched. Never fails the search: any fetch or
// extraction problem just marks that candidate's ExtractionFailed.
func EnrichCandidates(ctx context.Context, candidates []ArticleCandidate, language string) []ArticleCandidate {
	out := make([]ArticleCandidate, len(candidates))
	copy(out, candidates)

	var wg sync.WaitGroup
	for i := range out {
		if out[i].WordCount != nil {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = enrichCandidate(ctx, out[i], language)
		}(i)
	}
	wg.Wait()
	return out
}

func enrichCandidate(ctx context.Context, c ArticleCandidate, language string) ArticleCandidate {
	metrics.EnrichRequests.Add(1)

	if _, err := url.ParseRequestURI(c.URL); err != nil {
		metrics.EnrichErrors.Add(1)
		c.ExtractionFailed = true
		return c
	}

	if err := enrichLimiter.Wait(ctx); err != nil {
		metrics.EnrichErrors.Add(1)
		c.ExtractionFailed = true
		return c
	}

	fctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	body, err := Get(fctx, c.URL)
	if err != nil {
		slog.Debug("enrich: fetch failed", slog.String("url", c.URL), slog.Any("error", err))
		metrics.EnrichErrors.Add(1)
		c.ExtractionFailed = true
		return c
	}

	text := ExtractMainText(string(body))
	words := CountWords(text)
	if words == 0 {
		slog.Debug("enrich: no words extracted", slog.String("url", c.URL))
		metrics.EnrichErrors.Add(1)
		c.ExtractionFailed = true
		return c
	}

	c.WordCount = &words
	c.ExtractionFailed = false
	c.Language = language
	if c.Snippet == "" {
		c.Snippet = TruncateRunes(text, cfg.SnippetChars)
	}
	return c
}
