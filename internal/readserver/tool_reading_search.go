package readserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dailyreader/go_reads/internal/engine"
)

func registerReadingSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "reading_search",
		Description: "Find free-to-read articles on a topic that fit a reading time budget. Searches Wikisource, Wikipedia, the Internet Archive, and the Chronicling America newspaper archive concurrently, estimates reading time from extracted word counts, and returns the top 3 picks plus up to 10 backups. Pass the previous top picks in excluded_urls to get a fresh shortlist.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ReadingSearchInput) (*mcp.CallToolResult, engine.ReadingSearchOutput, error) {
		if strings.TrimSpace(input.Topic) == "" && !input.Mock {
			return nil, engine.ReadingSearchOutput{}, fmt.Errorf("topic is required")
		}

		request := buildRequest(input)
		result, err := engine.Search(ctx, request)
		if err != nil {
			return nil, engine.ReadingSearchOutput{}, err
		}

		return nil, engine.ReadingSearchOutput{
			Topic:    strings.TrimSpace(input.Topic),
			TopThree: toPicks(result.TopThree, request.WPM),
			Backups:  toPicks(result.Backups, request.WPM),
		}, nil
	})
}

func buildRequest(input engine.ReadingSearchInput) engine.RecommendationRequest {
	minutes := input.Minutes
	if minutes <= 0 {
		minutes = 10
	}
	wpm := input.WPM
	if wpm <= 0 {
		wpm = engine.DefaultWPM
	}
	license := engine.LicenseFilter(strings.ToLower(strings.TrimSpace(input.License)))
	if license == "" {
		license = engine.FilterAny
	}

	return engine.RecommendationRequest{
		Topic:             input.Topic,
		Minutes:           minutes,
		License:           license,
		Language:          engine.NormLang(input.Language),
		WPM:               wpm,
		AllowSlightlyOver: input.AllowSlightlyOver,
		PreferRecent:      input.PreferRecent,
		MockMode:          input.Mock,
		ExcludedURLs:      input.ExcludedURLs,
	}
}

func toPicks(candidates []engine.ArticleCandidate, wpm int) []engine.ReadingPick {
	picks := make([]engine.ReadingPick, 0, len(candidates))
	for _, c := range candidates {
		pick := engine.ReadingPick{
			ID:        c.ID,
			Title:     c.Title,
			URL:       c.URL,
			Source:    string(c.Source),
			License:   string(c.License),
			Snippet:   c.Snippet,
			WordCount: c.WordCount,
		}
		if c.Date != nil {
			pick.Date = c.Date.UTC().Format("2006-01-02")
		}
		if c.WordCount != nil {
			est := engine.EstimatedMinutes(*c.WordCount, wpm)
			pick.EstimatedMinutes = &est
		}
		picks = append(picks, pick)
	}
	return picks
}
