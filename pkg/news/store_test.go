package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeStore struct {
	articles []Article
	since    time.Time
	err      error
}

func (f *fakeStore) GetRecentArticles(ctx context.Context, since time.Time) ([]Article, error) {
	f.since = since
	return f.articles, f.err
}

func TestStoreClientFetch(t *testing.T) {
	now := time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)
	store := &fakeStore{articles: []Article{
		{Headline: "Saved headline", URL: "https://example.com/saved", Source: "FinnHub"},
	}}
	client := NewStoreClient(store, 26*time.Hour)
	client.now = func() time.Time { return now }

	articles, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Postgres", articles[0].Source)
	assert.Equal(t, now.Add(-26*time.Hour), store.since)
}

func TestStoreClientFetchError(t *testing.T) {
	client := NewStoreClient(&fakeStore{err: errors.New("DB down")}, time.Hour)

	articles, err := client.Fetch(context.Background())

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}
