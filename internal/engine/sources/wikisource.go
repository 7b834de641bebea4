package sources

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dailyreader/go_reads/internal/engine"
)

// Wikisource searches the source-text MediaWiki API of the language's
// wikisource.org subdomain. Hosted texts are predominantly public domain.
type Wikisource struct{}

func (Wikisource) Source() engine.Source { return engine.SourceWikisource }

func (Wikisource) FetchCandidates(ctx context.Context, query, language string) ([]engine.ArticleCandidate, error) {
	lang := engine.NormLang(language)
	endpoint := fmt.Sprintf("https://%s.wikisource.org/w/api.php", lang)

	data, err := mediaWikiSearch(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	candidates := mapMediaWikiItems(data.Query.Search, func(item engine.MediaWikiSearchItem) engine.ArticleCandidate {
		return engine.ArticleCandidate{
			ID:       fmt.Sprintf("wikisource-%d", item.PageID),
			Title:    item.Title,
			URL:      fmt.Sprintf("https://%s.wikisource.org/wiki?curid=%d", lang, item.PageID),
			Source:   engine.SourceWikisource,
			Snippet:  engine.CleanHTML(item.Snippet),
			License:  engine.LicensePublicDomain,
			Language: lang,
			RawLengthFields: map[string]string{
				"license_note": "Public Domain / varies",
			},
		}
	})

	slog.Debug("wikisource: search complete", slog.String("query", query), slog.Int("results", len(candidates)))
	return candidates, nil
}
