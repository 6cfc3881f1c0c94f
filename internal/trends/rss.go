package trends

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSS pulls trend articles from the configured news feeds.
type RSS struct {
	parser *gofeed.Parser
	feeds  []Feed
	topics []string
}

func NewRSS(feeds []Feed) *RSS {
	seen := map[string]bool{}
	var topics []string
	for _, f := range feeds {
		if f.Topic != "" && !seen[f.Topic] {
			seen[f.Topic] = true
			topics = append(topics, f.Topic)
		}
	}
	return &RSS{parser: gofeed.NewParser(), feeds: feeds, topics: topics}
}

// Trending fetches all feeds concurrently and builds a snapshot. Individual
// feed failures are tolerated; it errors only when every feed fails.
func (r *RSS) Trending(ctx context.Context) (Snapshot, error) {
	var (
		mu       sync.Mutex
		articles []Article
		errs     []error
		wg       sync.WaitGroup
	)

	for _, f := range r.feeds {
		wg.Add(1)
		go func(f Feed) {
			defer wg.Done()
			items, err := r.fetch(ctx, f)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			articles = append(articles, items...)
		}(f)
	}
	wg.Wait()

	if len(articles) == 0 && len(errs) > 0 {
		return Snapshot{}, fmt.Errorf("fetching trend feeds: %w", errs[0])
	}
	return Build(articles, r.topics, time.Now()), nil
}

func (r *RSS) fetch(ctx context.Context, f Feed) ([]Article, error) {
	feed, err := r.parser.ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.Name, err)
	}

	now := time.Now()
	maxAge := now.Add(-7 * 24 * time.Hour)
	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		pub := now
		if item.PublishedParsed != nil {
			pub = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pub = *item.UpdatedParsed
		}

		// Old items carry no trend signal
		if pub.Before(maxAge) {
			continue
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		desc = truncate(stripHTML(desc), 300)

		articles = append(articles, Article{
			Title:       item.Title,
			Description: desc,
			Source:      f.Name,
			Published:   pub,
		})
	}
	return articles, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
