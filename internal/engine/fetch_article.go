package engine

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	readability "github.com/go-shiori/go-readability"
)

// ArticleContent is a fetched article body prepared for a reading surface.
type ArticleContent struct {
	Title     string `json:"title"`
	Text      string `json:"text"` // markdown when readability succeeds, plain text otherwise
	WordCount int    `json:"word_count"`
}

// FetchArticleContent fetches a candidate URL and extracts its full body text
// using go-readability, falling back to the core extractor when readability
// cannot make sense of the page.
func FetchArticleContent(ctx context.Context, rawURL string) (out ArticleContent, err error) {
	metrics.ArticleFetches.Add(1)
	defer func() {
		if err != nil {
			metrics.ArticleFetchErrors.Add(1)
		}
	}()

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return ArticleContent{}, ErrBadURL
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	body, err := Get(ctx, rawURL)
	if err != nil {
		return ArticleContent{}, err
	}

	article, err := readability.FromReader(strings.NewReader(string(body)), parsedURL)
	if err != nil {
		slog.Debug("article: readability failed, using extractor", slog.String("url", rawURL), slog.Any("error", err))
		return extractorContent(body)
	}

	text, err := htmltomarkdown.ConvertString(article.Content)
	if err != nil {
		text = article.TextContent
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return extractorContent(body)
	}
	text = capContent(text)

	return ArticleContent{
		Title:     article.Title,
		Text:      text,
		WordCount: CountWords(text),
	}, nil
}

func extractorContent(body []byte) (ArticleContent, error) {
	text := capContent(ExtractMainText(string(body)))
	return ArticleContent{Text: text, WordCount: CountWords(text)}, nil
}

// capContent bounds the body at cfg.MaxContentChars runes with an ellipsis.
func capContent(text string) string {
	if capped := TruncateRunes(text, cfg.MaxContentChars); capped != text {
		return capped + "..."
	}
	return text
}
