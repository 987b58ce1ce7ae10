// Package fetch retrieves recipe page HTML for URL imports. It is the only
// part of the import path that touches the network; the pipeline itself
// operates on the returned markup.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"forkful/internal/config"
	"forkful/internal/normalize"
	"forkful/internal/port"
)

type httpFetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
}

// NewHTTPFetcher creates an HTTP-backed PageFetcher.
func NewHTTPFetcher(cfg *config.FetchConfig) port.PageFetcher {
	return &httpFetcher{
		client:       &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// Fetch normalizes the URL (https upgrade, scheme prepended when missing) and
// returns the page body. The normalized URL is returned so callers record
// what was actually fetched.
func (f *httpFetcher) Fetch(ctx context.Context, rawURL string) (string, string, error) {
	url := normalize.SourceURL(rawURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", "", fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", "", fmt.Errorf("reading body of %s: %w", url, err)
	}
	return string(body), url, nil
}
