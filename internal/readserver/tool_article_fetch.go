package readserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dailyreader/go_reads/internal/engine"
)

func registerArticleFetch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "article_fetch",
		Description: "Fetch an article URL and extract its readable body text (markdown when possible) with a word count and an estimated reading time at the default reading speed. Use it to prepare a recommended article for reading.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ArticleFetchInput) (*mcp.CallToolResult, engine.ArticleFetchOutput, error) {
		if input.URL == "" {
			return nil, engine.ArticleFetchOutput{}, fmt.Errorf("url is required")
		}

		content, err := engine.FetchArticleContent(ctx, input.URL)
		if err != nil {
			return nil, engine.ArticleFetchOutput{}, fmt.Errorf("fetch article: %w", err)
		}

		return nil, engine.ArticleFetchOutput{
			URL:              input.URL,
			Title:            content.Title,
			Text:             content.Text,
			WordCount:        content.WordCount,
			EstimatedMinutes: engine.EstimatedMinutes(content.WordCount, engine.DefaultWPM),
		}, nil
	})
}
