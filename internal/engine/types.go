package engine

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"
)

// --- Core recommendation types ---

// Source identifies one external search source.
type Source string

const (
	SourceWikisource         Source = "wikisource"
	SourceWikipedia          Source = "wikipedia"
	SourceInternetArchive    Source = "internet_archive"
	SourceChroniclingAmerica Source = "chronicling_america"
)

// LicenseType classifies how freely an article may be read.
type LicenseType string

const (
	LicensePublicDomain    LicenseType = "public_domain"
	LicenseCreativeCommons LicenseType = "creative_commons"
	LicenseFreeToRead      LicenseType = "free_to_read"
	LicenseVaries          LicenseType = "varies"
	LicenseUnknown         LicenseType = "unknown"
)

// LicenseFilter restricts results to a license class. FilterAny allows everything;
// every other filter requires an exact license match.
type LicenseFilter string

const (
	FilterAny             LicenseFilter = "any"
	FilterPublicDomain    LicenseFilter = "public_domain"
	FilterCreativeCommons LicenseFilter = "creative_commons"
	FilterFreeToRead      LicenseFilter = "free_to_read"
)

// Allows reports whether a candidate with the given license passes the filter.
func (f LicenseFilter) Allows(l LicenseType) bool {
	switch f {
	case FilterAny, "":
		return true
	case FilterPublicDomain:
		return l == LicensePublicDomain
	case FilterCreativeCommons:
		return l == LicenseCreativeCommons
	case FilterFreeToRead:
		return l == LicenseFreeToRead
	}
	return false
}

// ArticleCandidate is a prospective recommendation found by a connector.
// IDs are source-prefixed ("wikipedia-12345"), which keeps them unique across
// one aggregation run. WordCount stays nil until enrichment learns it.
type ArticleCandidate struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	URL              string            `json:"url"`
	Source           Source            `json:"source"`
	Date             *time.Time        `json:"date,omitempty"`
	Snippet          string            `json:"snippet,omitempty"`
	License          LicenseType       `json:"license"`
	Language         string            `json:"language"`
	WordCount        *int              `json:"word_count,omitempty"`
	RawLengthFields  map[string]string `json:"raw_length_fields,omitempty"`
	ExtractionFailed bool              `json:"extraction_failed"`
}

// RecommendationRequest describes one search. Immutable once built.
type RecommendationRequest struct {
	Topic             string
	Minutes           int
	License           LicenseFilter
	Language          string
	WPM               int
	AllowSlightlyOver bool
	PreferRecent      bool
	MockMode          bool
	ExcludedURLs      []string
}

// CacheKey derives the canonical cache key: case and excluded-URL ordering
// must not produce distinct keys.
func (r RecommendationRequest) CacheKey() string {
	excluded := make([]string, len(r.ExcludedURLs))
	for i, u := range r.ExcludedURLs {
		excluded[i] = strings.ToLower(u)
	}
	sort.Strings(excluded)

	return CacheKey(
		strings.ToLower(strings.TrimSpace(r.Topic)),
		strconv.Itoa(r.Minutes),
		string(r.License),
		strings.ToLower(strings.TrimSpace(r.Language)),
		strconv.Itoa(r.WPM),
		strconv.FormatBool(r.AllowSlightlyOver),
		strconv.FormatBool(r.PreferRecent),
		strconv.FormatBool(r.MockMode),
		strings.Join(excluded, ","),
	)
}

// RecommendationResult is the ranked output: up to 3 top picks plus up to 10
// backups. Backups never repeat a top pick.
type RecommendationResult struct {
	TopThree []ArticleCandidate `json:"top_three"`
	Backups  []ArticleCandidate `json:"backups"`
}

// Connector adapts one external search endpoint to a uniform contract.
// Implementations return an empty slice (not an error) for zero hits and must
// bound their own HTTP call by the passed context.
type Connector interface {
	Source() Source
	FetchCandidates(ctx context.Context, query, language string) ([]ArticleCandidate, error)
}
