package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/dailyreader/go_reads/internal/engine"
)

const archiveSearchURL = "https://archive.org/advancedsearch.php"

// InternetArchive searches the archive.org advanced search API. Licensing on
// archived items varies per upload, so candidates carry LicenseVaries.
type InternetArchive struct{}

func (InternetArchive) Source() engine.Source { return engine.SourceInternetArchive }

type archiveResponse struct {
	Response struct {
		Docs []archiveDoc `json:"docs"`
	} `json:"response"`
}

type archiveDoc struct {
	Identifier  string     `json:"identifier"`
	Title       flexString `json:"title"`
	Description flexString `json:"description"`
}

// flexString tolerates archive.org fields that arrive either as a string or
// as an array of strings; arrays keep their first element.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		if len(arr) > 0 {
			*f = flexString(arr[0])
		}
		return nil
	}
	// Unexpected shape (number, object): drop it rather than fail the doc.
	*f = ""
	return nil
}

func (InternetArchive) FetchCandidates(ctx context.Context, query, language string) ([]engine.ArticleCandidate, error) {
	u, err := url.Parse(archiveSearchURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", engine.ErrBadURL, archiveSearchURL)
	}
	q := u.Query()
	q.Set("q", query)
	q.Add("fl[]", "identifier")
	q.Add("fl[]", "title")
	q.Add("fl[]", "description")
	q.Set("rows", "10")
	q.Set("page", "1")
	q.Set("output", "json")
	u.RawQuery = q.Encode()

	body, err := engine.Get(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var decoded archiveResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode archive response: %w", err)
	}

	candidates := parseArchiveDocs(decoded.Response.Docs, engine.NormLang(language))
	slog.Debug("archive: search complete", slog.String("query", query), slog.Int("results", len(candidates)))
	return candidates, nil
}

func parseArchiveDocs(docs []archiveDoc, language string) []engine.ArticleCandidate {
	var candidates []engine.ArticleCandidate
	for _, doc := range docs {
		if doc.Identifier == "" || doc.Title == "" {
			continue
		}
		candidates = append(candidates, engine.ArticleCandidate{
			ID:              "archive-" + doc.Identifier,
			Title:           string(doc.Title),
			URL:             "https://archive.org/details/" + doc.Identifier,
			Source:          engine.SourceInternetArchive,
			Snippet:         string(doc.Description),
			License:         engine.LicenseVaries,
			Language:        language,
			RawLengthFields: map[string]string{},
		})
	}
	return candidates
}
