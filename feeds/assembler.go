package feeds

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/rss"
	"go.uber.org/zap"

	"market-pulse/models"
)

// Entry pairs an article with its classification.
type Entry[V any] struct {
	ID       int            `json:"id"`
	Article  models.Article `json:"article"`
	Analysis V              `json:"analysis"`
}

// Stats counts entries per sentiment value.
type Stats struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// Assemble turns raw items into entries in feed order. The source limit is
// applied before anything is classified.
func Assemble[V any](items []*rss.Item, src Source, classify func(string) V, now time.Time) []Entry[V] {
	if src.Limit > 0 && len(items) > src.Limit {
		items = items[:src.Limit]
	}
	entries := make([]Entry[V], 0, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		article := models.Article{
			Title:   item.Title,
			Link:    strings.TrimSpace(item.Link),
			PubDate: item.PubDate,
			Source:  src.DefaultPublisher,
		}
		if item.Source != nil && strings.TrimSpace(item.Source.Title) != "" {
			article.Source = item.Source.Title
		}
		if item.PubDateParsed != nil {
			article.TimeAgo = src.Ago.Since(*item.PubDateParsed, now)
		} else {
			article.TimeAgo = src.Ago.SinceString(item.PubDate, now)
		}
		entries = append(entries, Entry[V]{
			ID:       i,
			Article:  article,
			Analysis: classify(item.Title),
		})
	}
	return entries
}

// Service fetches and classifies feeds on demand. Nothing is cached.
type Service struct {
	Fetcher *Fetcher
	Logger  *zap.Logger
	Now     func() time.Time
}

func NewService(fetcher *Fetcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Fetcher: fetcher, Logger: logger, Now: time.Now}
}

// Load runs one fetch-and-classify pass. A failed fetch is logged and yields
// an empty list together with the error.
func Load[V any](ctx context.Context, s *Service, src Source, classify func(string) V) ([]Entry[V], error) {
	items, err := s.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		log := s.Logger
		if log == nil {
			log = zap.NewNop()
		}
		log.Warn("feed unavailable", zap.String("feed", src.Name), zap.Error(err))
		return []Entry[V]{}, err
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return Assemble(items, src, classify, now), nil
}

// Paginate returns the page-th batch (1-based) and whether more remain.
func Paginate[T any](items []T, page, perPage int) ([]T, bool) {
	if perPage <= 0 {
		return items, false
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}, false
	}
	end := start + perPage
	if end >= len(items) {
		return items[start:], false
	}
	return items[start:end], true
}

// Tally counts entries by key. Every value in keys appears in Counts even
// when no entry carries it.
func Tally[V any](entries []Entry[V], key func(V) string, keys ...string) Stats {
	stats := Stats{Total: len(entries), Counts: make(map[string]int, len(keys))}
	for _, k := range keys {
		stats.Counts[k] = 0
	}
	for _, e := range entries {
		stats.Counts[key(e.Analysis)]++
	}
	return stats
}
