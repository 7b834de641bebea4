package engine

import "strings"

// FilterCandidates drops candidates excluded by URL, disallowed by the license
// filter, or over the time budget when their word count is known.
// Unknown word counts pass the time check (they pay for it in scoring).
func FilterCandidates(candidates []ArticleCandidate, req RecommendationRequest) []ArticleCandidate {
	allowance := 0
	if req.AllowSlightlyOver {
		allowance = 1
	}
	excluded := make(map[string]bool, len(req.ExcludedURLs))
	for _, u := range req.ExcludedURLs {
		excluded[strings.ToLower(u)] = true
	}

	var out []ArticleCandidate
	for _, c := range candidates {
		if excluded[strings.ToLower(c.URL)] {
			continue
		}
		if !req.License.Allows(c.License) {
			continue
		}
		if c.WordCount != nil && EstimatedMinutes(*c.WordCount, req.WPM) > req.Minutes+allowance {
			continue
		}
		out = append(out, c)
	}
	return out
}
