package readserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dailyreader/go_reads/internal/engine"
)

func registerLinkCheck(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "link_check",
		Description: "Check whether an article URL is currently reachable before opening it. Probes with HEAD and falls back to GET; any 200-399 status counts as reachable. Use it to decide between a top pick and its backups.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.LinkCheckInput) (*mcp.CallToolResult, engine.LinkCheckOutput, error) {
		if input.URL == "" {
			return nil, engine.LinkCheckOutput{}, fmt.Errorf("url is required")
		}

		return nil, engine.LinkCheckOutput{
			URL:       input.URL,
			Reachable: engine.IsReachable(ctx, input.URL),
		}, nil
	})
}
