package engine

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractMainText pulls plain body text out of arbitrary HTML, best effort.
// Scope: first <article> tag, else first <main> tag, else the whole document;
// script/style blocks are dropped; paragraph text wins, with a crude
// tag-stripping fallback when the page has no paragraphs or does not parse.
// Returns "" on total failure; the caller reads that as extraction failed.
func ExtractMainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return stripTagsCrude(html)
	}

	doc.Find("script, style, noscript").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	scope := doc.Find("article").First()
	if scope.Length() == 0 {
		scope = doc.Find("main").First()
	}
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	var parts []string
	scope.Find("p").Each(func(i int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	var text string
	if len(parts) > 0 {
		text = strings.Join(parts, "\n\n")
	} else {
		text = scope.Text()
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
)

// stripTagsCrude is the last-resort path when HTML does not parse: drop
// script/style blocks, strip every tag, decode the common entities, collapse
// whitespace.
func stripTagsCrude(html string) string {
	html = scriptRe.ReplaceAllString(html, " ")
	html = styleRe.ReplaceAllString(html, " ")
	html = htmlTagRe.ReplaceAllString(html, " ")
	html = decodeEntities(html)
	return strings.TrimSpace(spaceRe.ReplaceAllString(html, " "))
}

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&quot;", `"`,
	"&#39;", "'",
	"&lt;", "<",
	"&gt;", ">",
)

func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
