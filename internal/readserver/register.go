// Package readserver registers the go_reads MCP tools over the engine:
// reading_search, article_fetch, link_check.
package readserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all reading-related tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerReadingSearch(server)
	registerArticleFetch(server)
	registerLinkCheck(server)
}
