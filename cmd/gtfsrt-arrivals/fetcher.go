package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/gtfsrt-arrivals/arrivals"
	"github.com/theoremus-urban-solutions/gtfsrt-arrivals/gtfsrt"
)

// fetcher builds feed sources from URLs or local files. Local files let the
// board command replay captured protobuf dumps; this is CLI-specific logic
// and not part of the core library.
type fetcher struct {
	client *gtfsrt.Client
}

func newFetcher(headers map[string]string, timeout time.Duration) *fetcher {
	return &fetcher{client: gtfsrt.NewClient(headers, timeout)}
}

// source returns a feed source for a URL or file path, or nil for an empty
// string (allows optional feeds).
func (f *fetcher) source(urlOrPath string) arrivals.FeedSource {
	if urlOrPath == "" {
		return nil
	}
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return func(ctx context.Context) ([]byte, error) {
			return os.ReadFile(urlOrPath)
		}
	}
	return func(ctx context.Context) ([]byte, error) {
		return f.client.Fetch(ctx, urlOrPath)
	}
}
