package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed/rss"
	"go.uber.org/zap"
)

// Fetcher retrieves a feed through the relay. It makes exactly one attempt.
type Fetcher struct {
	Client   *http.Client
	RelayURL string // empty fetches the feed URL directly
	Timeout  time.Duration
	Logger   *zap.Logger
}

func NewFetcher(relayURL string, timeout time.Duration, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		Client:   &http.Client{},
		RelayURL: relayURL,
		Timeout:  timeout,
		Logger:   logger,
	}
}

func (f *Fetcher) requestURL(feedURL string) string {
	if f.RelayURL == "" {
		return feedURL
	}
	return f.RelayURL + "?url=" + url.QueryEscape(feedURL)
}

// Fetch downloads and parses the RSS document at feedURL.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]*rss.Item, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	target := f.requestURL(feedURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch feed: status %d: %s", resp.StatusCode, string(body))
	}

	parser := &rss.Parser{}
	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	log := f.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("feed fetched",
		zap.String("url", feedURL),
		zap.Int("items", len(feed.Items)),
		zap.Duration("took", time.Since(start)),
	)
	return feed.Items, nil
}
