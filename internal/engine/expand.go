package engine

import "strings"

// synonymTable maps a handful of known topics to a broader phrase. Hand-tuned;
// lookup is case-insensitive on the whole topic.
var synonymTable = map[string]string{
	"stoicism": "stoic philosophy",
	"ai":       "artificial intelligence",
	"history":  "historical",
	"fitness":  "exercise",
	"space":    "astronomy",
}

// ExpandQueries derives the lexical query variants for a topic: the topic
// itself, a naive singular/plural toggle, and a synonym-table hit when one
// exists. A blank topic maps to a single empty variant (mock mode only;
// Search rejects blank topics before reaching here).
func ExpandQueries(topic string) []string {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return []string{""}
	}

	variants := []string{trimmed}
	seen := map[string]bool{trimmed: true}
	add := func(q string) {
		if q != "" && !seen[q] {
			seen[q] = true
			variants = append(variants, q)
		}
	}

	if strings.HasSuffix(trimmed, "s") {
		add(strings.TrimSuffix(trimmed, "s"))
	} else {
		add(trimmed + "s")
	}

	if synonym, ok := synonymTable[strings.ToLower(trimmed)]; ok {
		add(synonym)
	}

	return variants
}
