// go_reads — free-reading recommendation MCP server.
//
// Exposes three MCP tools: reading_search, article_fetch, link_check.
// reading_search aggregates free-to-read article candidates from Wikisource,
// Wikipedia, the Internet Archive, and Chronicling America, filters them by a
// reading time budget and license, and returns a ranked shortlist plus
// backups. Runs over stdio by default, or as a streamable HTTP server (with a
// plain-text /metrics endpoint) when READS_HTTP_ADDR is set.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dailyreader/go_reads/internal/engine"
	"github.com/dailyreader/go_reads/internal/engine/sources"
	"github.com/dailyreader/go_reads/internal/readserver"
)

var version = "dev"

func main() {
	k := loadConfig()
	initEngine(k)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_reads",
		Version: version,
	}, nil)
	readserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 3))

	httpAddr := k.String("http.addr")
	if httpAddr == "" {
		slog.Info("starting go_reads on stdio", slog.String("version", version))
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			slog.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	slog.Info("starting go_reads", slog.String("addr", httpAddr), slog.String("version", version))
	if err := runHTTP(ctx, server, httpAddr); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// runHTTP serves the MCP streamable HTTP transport plus the /metrics text
// endpoint, shutting down gracefully when ctx is cancelled.
func runHTTP(ctx context.Context, server *mcp.Server, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(engine.FormatMetrics()))
	})

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// loadConfig reads READS_* environment variables into a koanf tree:
// READS_HTTP_ADDR → http.addr, READS_CACHE_TTL → cache.ttl, and so on.
func loadConfig() *koanf.Koanf {
	k := koanf.New(".")
	err := k.Load(env.Provider("READS_", ".", func(key string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, "READS_")), "_", ".")
	}), nil)
	if err != nil {
		slog.Warn("config: env load failed", slog.Any("error", err))
	}
	return k
}

func initEngine(k *koanf.Koanf) {
	engine.Init(engine.Config{
		Connectors:          sources.Default(),
		UserAgent:           strOr(k, "user.agent", engine.UserAgent),
		ConnectorTimeout:    durOr(k, "connector.timeout", 8*time.Second),
		FetchTimeout:        durOr(k, "fetch.timeout", 8*time.Second),
		ReachabilityTimeout: durOr(k, "reachability.timeout", 6*time.Second),
		MaxContentChars:     intOr(k, "max.content.chars", 60000),
		EnrichPerSecond:     floatOr(k, "enrich.per.second", 4),
		EnrichBurst:         intOr(k, "enrich.burst", 4),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	})

	engine.InitCache(
		k.String("redis.url"),
		durOr(k, "cache.ttl", 30*time.Minute),
		intOr(k, "cache.max.entries", 500),
	)
}

func strOr(k *koanf.Koanf, key, def string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return def
}

func intOr(k *koanf.Koanf, key string, def int) int {
	if v := k.Int(key); v != 0 {
		return v
	}
	return def
}

func floatOr(k *koanf.Koanf, key string, def float64) float64 {
	if v := k.Float64(key); v != 0 {
		return v
	}
	return def
}

func durOr(k *koanf.Koanf, key string, def time.Duration) time.Duration {
	if v := k.Duration(key); v != 0 {
		return v
	}
	return def
}
