package engine

import (
	"regexp"
	"strings"
)

// UserAgent identifies go_reads on every outbound request.
const UserAgent = "go_reads/1.0 (+https://github.com/dailyreader/go_reads)"

// NormLang normalises a language field: empty string → "en".
func NormLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "en"
	}
	return lang
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)
var spaceRe = regexp.MustCompile(`\s+`)

// CleanHTML strips HTML tags, collapses whitespace and trims.
func CleanHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// NormalizeTitle returns the cross-source dedup key for a title: lowercased
// with every non-alphanumeric character stripped.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TokenSet tokenizes text for topical overlap scoring: lowercase, treat
// anything outside [a-z0-9] as a separator, drop tokens of length <= 1.
// Frequencies are ignored.
func TokenSet(input string) map[string]struct{} {
	tokens := make(map[string]struct{})
	var word strings.Builder
	flush := func() {
		if word.Len() > 1 {
			tokens[word.String()] = struct{}{}
		}
		word.Reset()
	}
	for _, r := range strings.ToLower(input) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// CountWords counts whitespace-delimited tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// TruncateRunes caps s at limit runes. Safe for UTF-8.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
