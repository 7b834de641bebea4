package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/dailyreader/go_reads/internal/engine"
)

const (
	chroniclingSearchURL = "https://chroniclingamerica.loc.gov/search/pages/results/"
	chroniclingHost      = "https://chroniclingamerica.loc.gov"
)

// ChroniclingAmerica searches the Library of Congress full-text newspaper
// archive. Everything it hosts is public domain.
type ChroniclingAmerica struct{}

func (ChroniclingAmerica) Source() engine.Source { return engine.SourceChroniclingAmerica }

type chroniclingResponse struct {
	Items []chroniclingItem `json:"items"`
}

type chroniclingItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	OCREng string `json:"ocr_eng"`
}

func (ChroniclingAmerica) FetchCandidates(ctx context.Context, query, language string) ([]engine.ArticleCandidate, error) {
	u, err := url.Parse(chroniclingSearchURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", engine.ErrBadURL, chroniclingSearchURL)
	}
	q := u.Query()
	q.Set("andtext", query)
	q.Set("format", "json")
	q.Set("rows", "10")
	u.RawQuery = q.Encode()

	body, err := engine.Get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var decoded chroniclingResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode chronicling response: %w", err)
	}

	candidates := parseChroniclingItems(decoded.Items, engine.NormLang(language))
	slog.Debug("chronicling: search complete", slog.String("query", query), slog.Int("results", len(candidates)))
	return candidates, nil
}

func parseChroniclingItems(items []chroniclingItem, language string) []engine.ArticleCandidate {
	var candidates []engine.ArticleCandidate
	for _, item := range items {
		if item.ID == "" {
			continue
		}

		title := item.Title
		if title == "" {
			title = item.ID
		}

		snippet := item.OCREng
		if snippet == "" {
			snippet = "Historic newspaper page from the Library of Congress."
		}

		candidates = append(candidates, engine.ArticleCandidate{
			ID:       "loc-" + item.ID,
			Title:    title,
			URL:      chroniclingPageURL(item.ID),
			Source:   engine.SourceChroniclingAmerica,
			Date:     parseChroniclingDate(item.Date),
			Snippet:  engine.TruncateRunes(snippet, 220),
			License:  engine.LicensePublicDomain,
			Language: language,
			RawLengthFields: map[string]string{
				"license_note": "Public Domain / LOC",
			},
		})
	}
	return candidates
}

// chroniclingPageURL resolves the item id, which the API returns as a
// host-relative path ("/lccn/sn.../seq-1/"), into an absolute URL.
func chroniclingPageURL(id string) string {
	if strings.HasPrefix(id, "/") {
		return chroniclingHost + id
	}
	return id
}

// parseChroniclingDate accepts the two shapes the API emits: bare YYYYMMDD
// issue dates and RFC 3339 timestamps. Anything else is treated as undated.
func parseChroniclingDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"20060102", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
