package download

import "context"

// Fetcher defines the interface for the fetch stage.
type Fetcher interface {
	// Fetch downloads the best stream for url into outDir and returns the
	// local file path.
	Fetch(ctx context.Context, url, outDir string) (string, error)
}
