package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	Connectors          []Connector   // search sources, fanned out per query variant
	HTTPClient          *http.Client  // shared client for connector + enrichment calls
	UserAgent           string        // sent on every outbound request
	ConnectorTimeout    time.Duration // per (connector, query) branch ceiling
	FetchTimeout        time.Duration // per enrichment / article fetch
	ReachabilityTimeout time.Duration // per HEAD/GET probe attempt
	MaxContentChars     int           // article body cap for article_fetch
	SnippetChars        int           // snippet backfill length during enrichment
	EnrichPerSecond     float64       // enrichment fetch rate limit (0 = unlimited)
	EnrichBurst         int
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration, filling defaults
// for zero fields.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = newFetchClient()
	}
	if c.UserAgent == "" {
		c.UserAgent = UserAgent
	}
	if c.ConnectorTimeout == 0 {
		c.ConnectorTimeout = 8 * time.Second
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 8 * time.Second
	}
	if c.ReachabilityTimeout == 0 {
		c.ReachabilityTimeout = 6 * time.Second
	}
	if c.MaxContentChars == 0 {
		c.MaxContentChars = 60000
	}
	if c.SnippetChars == 0 {
		c.SnippetChars = 220
	}
	if c.EnrichBurst == 0 {
		c.EnrichBurst = 4
	}
	cfg = c
	Cfg = &cfg
	initEnrichLimiter()
}
