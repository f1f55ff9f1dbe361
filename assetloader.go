package assetloader

import "context"

// Fetcher retrieves the raw bytes behind a resolved asset URL.
//
// Implementations must treat any non-success status as an error; the cache
// does not inspect payloads for embedded error markers. Fetch must be safe
// for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}
