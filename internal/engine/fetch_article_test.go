package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchArticleContent(t *testing.T) {
	page := `<html><head><title>The Time Machine</title></head><body><article>
		<h1>The Time Machine</h1>
		<p>The Time Traveller, for so it will be convenient to speak of him, was
		expounding a recondite matter to us. His grey eyes shone and twinkled, and
		his usually pale face was flushed and animated.</p>
		<p>The fire burned brightly, and the soft radiance of the incandescent
		lights in the lilies of silver caught the bubbles that flashed and passed
		in our glasses.</p>
	</article></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/article":
			fmt.Fprint(w, page)
		case "/huge":
			fmt.Fprintf(w, "<html><body><article><p>%s</p></article></body></html>",
				strings.Repeat("lorem ipsum dolor ", 500))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("extracts body text", func(t *testing.T) {
		initTestEngine(t)
		got, err := FetchArticleContent(context.Background(), srv.URL+"/article")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got.Text, "Time Traveller") {
			t.Errorf("body text missing: %q", got.Text)
		}
		if got.WordCount == 0 {
			t.Error("want a non-zero word count")
		}
	})

	t.Run("caps oversized bodies", func(t *testing.T) {
		initTestEngine(t)
		Cfg.MaxContentChars = 100
		got, err := FetchArticleContent(context.Background(), srv.URL+"/huge")
		if err != nil {
			t.Fatal(err)
		}
		if n := len([]rune(got.Text)); n > 103 { // cap plus ellipsis
			t.Errorf("text length %d over cap", n)
		}
		if !strings.HasSuffix(got.Text, "...") {
			t.Error("capped text should end with an ellipsis")
		}
	})

	t.Run("http error surfaces", func(t *testing.T) {
		initTestEngine(t)
		_, err := FetchArticleContent(context.Background(), srv.URL+"/missing")
		if err == nil {
			t.Fatal("want error for 404")
		}
		if code, ok := IsStatusError(err); !ok || code != http.StatusNotFound {
			t.Errorf("want status 404 error, got %v", err)
		}
	})

	t.Run("bad url", func(t *testing.T) {
		initTestEngine(t)
		_, err := FetchArticleContent(context.Background(), "http://bad url with spaces")
		if err == nil {
			t.Fatal("want error for malformed URL")
		}
	})
}

func TestCapContent(t *testing.T) {
	initTestEngine(t)
	Cfg.MaxContentChars = 5
	if got := capContent("héllo world"); got != "héllo..." {
		t.Errorf("got %q", got)
	}
	if got := capContent("hey"); got != "hey" {
		t.Errorf("short text changed: %q", got)
	}
}
