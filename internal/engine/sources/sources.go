// Package sources holds the concrete connectors over the external search
// endpoints: the MediaWiki family (Wikipedia, Wikisource), the Internet
// Archive advanced search, and the Library of Congress Chronicling America
// newspaper archive. Each connector issues one bounded GET per query and maps
// the endpoint's native JSON into engine.ArticleCandidate values; zero hits is
// an empty slice, never an error.
package sources

import "github.com/dailyreader/go_reads/internal/engine"

// Default returns all production connectors in boost order.
func Default() []engine.Connector {
	return []engine.Connector{
		Wikisource{},
		Wikipedia{},
		InternetArchive{},
		ChroniclingAmerica{},
	}
}
