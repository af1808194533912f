package news

import (
	"context"
	"fmt"
	"time"
)

// ArticleStore reads articles that an ingest job already saved.
type ArticleStore interface {
	GetRecentArticles(ctx context.Context, since time.Time) ([]Article, error)
}

// StoreClient exposes an ArticleStore as a news source covering the last
// window of time.
type StoreClient struct {
	store  ArticleStore
	window time.Duration
	now    func() time.Time
}

func NewStoreClient(store ArticleStore, window time.Duration) *StoreClient {
	return &StoreClient{store: store, window: window, now: time.Now}
}

func (c *StoreClient) Name() string {
	return "Postgres"
}

func (c *StoreClient) Fetch(ctx context.Context) ([]Article, error) {
	articles, err := c.store.GetRecentArticles(ctx, c.now().Add(-c.window))
	if err != nil {
		return nil, fmt.Errorf("store fetch: %w", err)
	}
	for i := range articles {
		articles[i].Source = c.Name()
	}
	return articles, nil
}
