package engine

// --- Tool input/output types (JSON over MCP) ---

type ReadingSearchInput struct {
	Topic             string   `json:"topic" jsonschema:"Subject to find free-to-read articles about (e.g. stoicism, space)"`
	Minutes           int      `json:"minutes,omitempty" jsonschema:"Reading time budget in minutes (default: 10)"`
	License           string   `json:"license,omitempty" jsonschema:"License filter: any (default), public_domain, creative_commons, free_to_read"`
	Language          string   `json:"language,omitempty" jsonschema:"Language code for wiki-family sources (default: en)"`
	WPM               int      `json:"wpm,omitempty" jsonschema:"Reading speed in words per minute (default: 220)"`
	AllowSlightlyOver bool     `json:"allow_slightly_over,omitempty" jsonschema:"Accept articles up to one minute over budget"`
	PreferRecent      bool     `json:"prefer_recent,omitempty" jsonschema:"Boost recently dated articles"`
	Mock              bool     `json:"mock,omitempty" jsonschema:"Deterministic offline mode: synthetic candidates, no network"`
	ExcludedURLs      []string `json:"excluded_urls,omitempty" jsonschema:"URLs to skip, e.g. the previous top picks when trying again"`
}

// ReadingPick is one recommended article in tool output.
type ReadingPick struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	URL              string `json:"url"`
	Source           string `json:"source"`
	License          string `json:"license"`
	Snippet          string `json:"snippet,omitempty"`
	Date             string `json:"date,omitempty"`
	WordCount        *int   `json:"word_count,omitempty"`
	EstimatedMinutes *int   `json:"estimated_minutes,omitempty"`
}

type ReadingSearchOutput struct {
	Topic    string        `json:"topic"`
	TopThree []ReadingPick `json:"top_three"`
	Backups  []ReadingPick `json:"backups"`
}

type ArticleFetchInput struct {
	URL string `json:"url" jsonschema:"Article URL to fetch and extract for reading"`
}

type ArticleFetchOutput struct {
	URL              string `json:"url"`
	Title            string `json:"title,omitempty"`
	Text             string `json:"text"`
	WordCount        int    `json:"word_count"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

type LinkCheckInput struct {
	URL string `json:"url" jsonschema:"URL to probe (HEAD with GET fallback; 200-399 is reachable)"`
}

type LinkCheckOutput struct {
	URL       string `json:"url"`
	Reachable bool   `json:"reachable"`
}
