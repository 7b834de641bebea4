package engine

// MediaWiki search API shared types.
// Used by both sources/wikipedia.go and sources/wikisource.go.

// MediaWikiSearchResponse is the action=query&list=search response shape.
type MediaWikiSearchResponse struct {
	Query struct {
		Search []MediaWikiSearchItem `json:"search"`
	} `json:"query"`
}

// MediaWikiSearchItem is one search hit. Snippet arrives as HTML.
type MediaWikiSearchItem struct {
	PageID  int    `json:"pageid"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}
