package engine

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// MockResult synthesizes six deterministic candidates and runs them through
// the same filter and ranking steps as a live search. No network, no cache:
// fully offline and reproducible.
func MockResult(req RecommendationRequest) RecommendationResult {
	words := MaxWords(req.Minutes, req.WPM)
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		topic = "reading"
	}

	all := make([]ArticleCandidate, 0, 6)
	for i := 1; i <= 6; i++ {
		source, license := SourceWikisource, LicensePublicDomain
		if i%2 == 0 {
			source, license = SourceWikipedia, LicenseCreativeCommons
		}
		date := time.Now().Add(-time.Duration(i) * 24 * time.Hour)
		wc := max(120, words-i*80)
		all = append(all, ArticleCandidate{
			ID:              fmt.Sprintf("mock-%d", i),
			Title:           fmt.Sprintf("%s primer %d", titleCase(topic), i),
			URL:             fmt.Sprintf("https://example.com/mock/%d", i),
			Source:          source,
			Date:            &date,
			Snippet:         fmt.Sprintf("Deterministic mock result #%d for offline testing.", i),
			License:         license,
			Language:        NormLang(req.Language),
			WordCount:       &wc,
			RawLengthFields: map[string]string{},
		})
	}

	filtered := FilterCandidates(all, req)
	ranked := Rank(filtered, req)
	return sliceResult(ranked)
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
