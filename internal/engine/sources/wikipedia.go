package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/dailyreader/go_reads/internal/engine"
)

// Wikipedia searches the encyclopedic MediaWiki API of the language's
// wikipedia.org subdomain.
type Wikipedia struct{}

func (Wikipedia) Source() engine.Source { return engine.SourceWikipedia }

func (Wikipedia) FetchCandidates(ctx context.Context, query, language string) ([]engine.ArticleCandidate, error) {
	lang := engine.NormLang(language)
	endpoint := fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)

	data, err := mediaWikiSearch(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	candidates := mapMediaWikiItems(data.Query.Search, func(item engine.MediaWikiSearchItem) engine.ArticleCandidate {
		return engine.ArticleCandidate{
			ID:              fmt.Sprintf("wikipedia-%d", item.PageID),
			Title:           item.Title,
			URL:             fmt.Sprintf("https://%s.wikipedia.org/wiki?curid=%d", lang, item.PageID),
			Source:          engine.SourceWikipedia,
			Snippet:         engine.CleanHTML(item.Snippet),
			License:         engine.LicenseCreativeCommons,
			Language:        lang,
			RawLengthFields: map[string]string{},
		}
	})

	slog.Debug("wikipedia: search complete", slog.String("query", query), slog.Int("results", len(candidates)))
	return candidates, nil
}

// mediaWikiSearch issues one list=search query against a MediaWiki API
// endpoint and decodes the response.
func mediaWikiSearch(ctx context.Context, endpoint, query string) (engine.MediaWikiSearchResponse, error) {
	var decoded engine.MediaWikiSearchResponse

	u, err := url.Parse(endpoint)
	if err != nil {
		return decoded, fmt.Errorf("%w: %s", engine.ErrBadURL, endpoint)
	}
	q := u.Query()
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("srsearch", query)
	q.Set("srlimit", "10")
	q.Set("format", "json")
	q.Set("utf8", "1")
	u.RawQuery = q.Encode()

	body, err := engine.Get(ctx, u.String())
	if err != nil {
		return decoded, err
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return decoded, fmt.Errorf("decode mediawiki response: %w", err)
	}
	return decoded, nil
}

func mapMediaWikiItems(items []engine.MediaWikiSearchItem, build func(engine.MediaWikiSearchItem) engine.ArticleCandidate) []engine.ArticleCandidate {
	candidates := make([]engine.ArticleCandidate, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, build(item))
	}
	return candidates
}
