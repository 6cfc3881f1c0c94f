package trends

import (
	"context"
	"time"

	"github.com/charo360/tagrank/internal/store"
)

// Service is the production trend source: it reads articles through the
// sqlite store and refetches the feeds only when the stored snapshot is
// stale. A failed refetch falls back to whatever the store still holds.
type Service struct {
	store   *store.Store
	rss     *RSS
	refresh time.Duration
	now     func() time.Time
}

func NewService(st *store.Store, rss *RSS, refresh time.Duration) *Service {
	return &Service{store: st, rss: rss, refresh: refresh, now: time.Now}
}

func (s *Service) Trending(ctx context.Context) (Snapshot, error) {
	var refreshErr error
	if s.store.NeedsRefresh(s.refresh) {
		snap, err := s.rss.Trending(ctx)
		if err != nil {
			refreshErr = err
		} else {
			rows := make([]store.Article, len(snap.Articles))
			now := s.now()
			for i, a := range snap.Articles {
				rows[i] = store.Article{
					Source:      a.Source,
					Title:       a.Title,
					Description: a.Description,
					Published:   a.Published,
					FetchedAt:   now,
				}
			}
			if err := s.store.UpsertArticles(rows); err == nil {
				s.store.SetLastRefresh()
			}
		}
	}

	rows, err := s.store.ArticlesSince(s.now().Add(-7 * 24 * time.Hour))
	if err != nil {
		return Snapshot{}, err
	}
	if len(rows) == 0 && refreshErr != nil {
		return Snapshot{}, refreshErr
	}

	articles := make([]Article, len(rows))
	for i, r := range rows {
		articles[i] = Article{
			Title:       r.Title,
			Description: r.Description,
			Source:      r.Source,
			Published:   r.Published,
		}
	}
	return Build(articles, s.rss.topics, s.now()), nil
}
