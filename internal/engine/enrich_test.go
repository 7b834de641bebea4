package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func articlePage(words int) string {
	var b strings.Builder
	b.WriteString("<html><body><article>")
	for i := 0; i < words; i += 10 {
		b.WriteString("<p>")
		for j := 0; j < 10; j++ {
			fmt.Fprintf(&b, "word%d ", i+j)
		}
		b.WriteString("</p>")
	}
	b.WriteString("</article></body></html>")
	return b.String()
}

func TestEnrichCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/article":
			fmt.Fprint(w, articlePage(500))
		case "/empty":
			fmt.Fprint(w, "<html><body></body></html>")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	initTestEngine(t)

	t.Run("fills word count and backfills snippet", func(t *testing.T) {
		in := []ArticleCandidate{{ID: "a", URL: srv.URL + "/article"}}
		out := EnrichCandidates(context.Background(), in, "en")
		c := out[0]
		if c.WordCount == nil {
			t.Fatal("word count not filled")
		}
		if *c.WordCount != 500 {
			t.Errorf("word count = %d, want 500", *c.WordCount)
		}
		if c.ExtractionFailed {
			t.Error("extraction should have succeeded")
		}
		if c.Snippet == "" {
			t.Error("empty snippet should be backfilled from the extracted text")
		}
		if got := len([]rune(c.Snippet)); got > 220 {
			t.Errorf("snippet length %d exceeds cap", got)
		}
		if c.Language != "en" {
			t.Errorf("language = %q", c.Language)
		}
	})

	t.Run("existing snippet untouched", func(t *testing.T) {
		in := []ArticleCandidate{{ID: "a", URL: srv.URL + "/article", Snippet: "curated"}}
		out := EnrichCandidates(context.Background(), in, "en")
		if out[0].Snippet != "curated" {
			t.Errorf("snippet overwritten: %q", out[0].Snippet)
		}
	})

	t.Run("known word count passes through", func(t *testing.T) {
		in := []ArticleCandidate{{ID: "a", URL: srv.URL + "/article", WordCount: intPtr(42)}}
		out := EnrichCandidates(context.Background(), in, "en")
		if *out[0].WordCount != 42 {
			t.Errorf("word count changed to %d", *out[0].WordCount)
		}
	})

	t.Run("http error marks extraction failed", func(t *testing.T) {
		in := []ArticleCandidate{{ID: "a", URL: srv.URL + "/missing"}}
		out := EnrichCandidates(context.Background(), in, "en")
		if !out[0].ExtractionFailed {
			t.Error("want ExtractionFailed")
		}
		if out[0].WordCount != nil {
			t.Error("failed enrichment must not set a word count")
		}
	})

	t.Run("empty body marks extraction failed", func(t *testing.T) {
		in := []ArticleCandidate{{ID: "a", URL: srv.URL + "/empty"}}
		out := EnrichCandidates(context.Background(), in, "en")
		if !out[0].ExtractionFailed {
			t.Error("want ExtractionFailed for a page with no text")
		}
	})

	t.Run("invalid url marks extraction failed", func(t *testing.T) {
		in := []ArticleCandidate{{ID: "a", URL: "::not-a-url"}}
		out := EnrichCandidates(context.Background(), in, "en")
		if !out[0].ExtractionFailed {
			t.Error("want ExtractionFailed for an unparsable URL")
		}
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		in := []ArticleCandidate{{ID: "a", URL: srv.URL + "/article"}}
		_ = EnrichCandidates(context.Background(), in, "en")
		if in[0].WordCount != nil {
			t.Error("enrichment must work on a copy")
		}
	})
}
