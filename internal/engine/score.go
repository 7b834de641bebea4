package engine

import (
	"math"
	"sort"
	"time"
)

// sourceBoost orders sources by curation quality. Hand-tuned; only the
// relative ordering matters.
var sourceBoost = map[Source]float64{
	SourceWikisource:         0.08,
	SourceWikipedia:          0.06,
	SourceInternetArchive:    0.05,
	SourceChroniclingAmerica: 0.04,
}

// Score rates a candidate against a request. Components:
// topical token overlap (0.45), reading-time fit (0.35, flat 0.15 when the
// word count is unknown), metadata quality bonuses, the per-source boost, and
// an optional recency boost decaying over ten years.
func Score(c ArticleCandidate, topicTokens map[string]struct{}, req RecommendationRequest) float64 {
	topicScore := 0.0
	if len(topicTokens) > 0 {
		textTokens := TokenSet(c.Title + " " + c.Snippet)
		overlap := 0
		for t := range topicTokens {
			if _, ok := textTokens[t]; ok {
				overlap++
			}
		}
		topicScore = float64(overlap) / float64(len(topicTokens))
	}

	fitScore := 0.15
	if c.WordCount != nil {
		minutes := EstimatedMinutes(*c.WordCount, req.WPM)
		delta := math.Abs(float64(req.Minutes - minutes))
		fitScore = math.Max(0, 1.0-delta/float64(max(req.Minutes, 1)))
	}

	quality := 0.0
	if c.Snippet != "" {
		quality += 0.2
	}
	if c.Date != nil {
		quality += 0.1
	}
	if c.License != LicenseUnknown {
		quality += 0.1
	}
	if !c.ExtractionFailed {
		quality += 0.1
	}

	recencyBoost := 0.0
	if req.PreferRecent && c.Date != nil {
		ageDays := time.Since(*c.Date).Hours() / 24
		recencyBoost = math.Max(0, 0.1-math.Min(ageDays/3650, 0.1))
	}

	return 0.45*topicScore + 0.35*fitScore + quality + sourceBoost[c.Source] + recencyBoost
}

// Rank sorts candidates by descending score. Scores are computed once up
// front; equal scores keep their incoming order.
func Rank(candidates []ArticleCandidate, req RecommendationRequest) []ArticleCandidate {
	topicTokens := TokenSet(req.Topic)

	type scored struct {
		candidate ArticleCandidate
		score     float64
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{c, Score(c, topicTokens, req)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]ArticleCandidate, len(ranked))
	for i, s := range ranked {
		out[i] = s.candidate
	}
	return out
}
