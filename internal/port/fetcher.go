package port

import "context"

// PageFetcher abstracts retrieval of a recipe page's HTML. The pipeline never
// fetches; it receives already-fetched markup via this collaborator.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (html string, finalURL string, err error)
}
