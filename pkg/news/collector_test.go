package news

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"marketbrief/internal/model"

	"github.com/go-playground/assert/v2"
)

type fakeClient struct {
	name     string
	articles []Article
	err      error
}

func (f *fakeClient) Fetch(ctx context.Context) ([]Article, error) {
	return f.articles, f.err
}

func (f *fakeClient) Name() string {
	return f.name
}

// testNow is a Monday morning in New York.
func testNow(t *testing.T) time.Time {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return time.Date(2026, 10, 19, 10, 0, 0, 0, loc)
}

func newTestCollector(now time.Time, opts CollectorOptions, clients ...NewsClient) *Collector {
	opts.Location = now.Location()
	c := NewCollector(clients, opts)
	c.now = func() time.Time { return now }
	return c
}

func TestCollectWindowAndOrder(t *testing.T) {
	now := testNow(t)
	client := &fakeClient{name: "wsj", articles: []Article{
		{Headline: "Older", URL: "https://example.com/older", PublishedAt: now.Add(-5 * time.Hour)},
		{Headline: "Newest", URL: "https://example.com/newest", PublishedAt: now.Add(-1 * time.Hour)},
		{Headline: "Too old", URL: "https://example.com/stale", PublishedAt: now.Add(-27 * time.Hour)},
	}}
	c := newTestCollector(now, CollectorOptions{HoursBack: 26, IncludeWeekends: true}, client)

	items, err := c.Collect(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))
	assert.Equal(t, "Newest", items[0].Title)
	assert.Equal(t, "Older", items[1].Title)
	assert.Equal(t, "America/New_York", items[0].PublishedAt.Location().String())
}

func TestCollectSkipsWeekends(t *testing.T) {
	now := testNow(t)
	sunday := now.Add(-20 * time.Hour)
	client := &fakeClient{name: "wsj", articles: []Article{
		{Headline: "Sunday story", URL: "https://example.com/sun", PublishedAt: sunday},
		{Headline: "Monday story", URL: "https://example.com/mon", PublishedAt: now.Add(-time.Hour)},
	}}

	c := newTestCollector(now, CollectorOptions{HoursBack: 26}, client)
	items, err := c.Collect(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Monday story", items[0].Title)

	c = newTestCollector(now, CollectorOptions{HoursBack: 26, IncludeWeekends: true}, client)
	items, err = c.Collect(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))
}

func TestCollectCleansAndFilters(t *testing.T) {
	now := testNow(t)
	client := &fakeClient{name: "wsj", articles: []Article{
		{Headline: "<b>Chips</b> &amp; Cloud", URL: " https://example.com/chips ", Summary: "<p>Chip stocks rose.</p>", Description: "Chip stocks rose.", PublishedAt: now.Add(-time.Hour)},
		{Headline: "", URL: "https://example.com/untitled", PublishedAt: now},
		{Headline: "No link", URL: "", PublishedAt: now},
		{Headline: "Undated", URL: "https://example.com/undated"},
	}}
	c := newTestCollector(now, CollectorOptions{HoursBack: 26}, client)

	items, err := c.Collect(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))
	assert.Equal(t, "Undated", items[0].Title)
	assert.Equal(t, true, items[0].PublishedAt.Equal(now))
	assert.Equal(t, "Chips & Cloud", items[1].Title)
	assert.Equal(t, "https://example.com/chips", items[1].Link)
	assert.Equal(t, "Chip stocks rose.", items[1].Abstract)
	assert.Equal(t, "wsj", items[1].Source)
}

func TestCollectSkipsFailingClient(t *testing.T) {
	now := testNow(t)
	good := &fakeClient{name: "good", articles: []Article{
		{Headline: "Works", URL: "https://example.com/works", PublishedAt: now},
	}}
	bad := &fakeClient{name: "bad", err: errors.New("feed down")}
	c := newTestCollector(now, CollectorOptions{HoursBack: 26}, bad, good)

	items, err := c.Collect(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Works", items[0].Title)
}

// slowClient returns its articles after delay unless ctx ends first.
type slowClient struct {
	fakeClient
	delay time.Duration
}

func (s *slowClient) Fetch(ctx context.Context) ([]Article, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
		return s.articles, nil
	}
}

func TestCollectFailureDoesNotCancelOtherClients(t *testing.T) {
	now := testNow(t)
	slow := &slowClient{
		fakeClient: fakeClient{name: "slow", articles: []Article{
			{Headline: "Late but fine", URL: "https://example.com/late", PublishedAt: now},
		}},
		delay: 50 * time.Millisecond,
	}
	bad := &fakeClient{name: "bad", err: errors.New("feed down")}
	c := newTestCollector(now, CollectorOptions{HoursBack: 26}, bad, slow)

	items, err := c.Collect(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Late but fine", items[0].Title)
}

func TestCollectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := newTestCollector(testNow(t), CollectorOptions{HoursBack: 26}, &fakeClient{name: "wsj"})

	items, err := c.Collect(ctx)

	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 0, len(items))
}

func TestCollectDedupAcrossClientsLastSeenWins(t *testing.T) {
	now := testNow(t)
	first := &fakeClient{name: "markets", articles: []Article{
		{Headline: "Fed Decision", URL: "https://example.com/fed", Summary: "first abstract", PublishedAt: now.Add(-2 * time.Hour)},
	}}
	second := &fakeClient{name: "business", articles: []Article{
		{Headline: "Fed Decision", URL: "https://example.com/fed", Summary: "second abstract", PublishedAt: now.Add(-2 * time.Hour)},
	}}
	c := newTestCollector(now, CollectorOptions{HoursBack: 26}, first, second)

	items, err := c.Collect(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "second abstract", items[0].Abstract)
	assert.Equal(t, "business", items[0].Source)
}

func TestDedup(t *testing.T) {
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	items := []model.EvidenceItem{
		{Title: "A", Link: "https://example.com/a", Abstract: "a1", PublishedAt: base},
		{Title: "B", Link: "https://example.com/b", PublishedAt: base},
		{Title: "C", Link: "https://example.com/c", PublishedAt: base.Add(time.Hour)},
		{Title: "A", Link: "https://example.com/a", Abstract: "a2", PublishedAt: base},
	}

	got := Dedup(items)

	assert.Equal(t, 3, len(got))
	assert.Equal(t, "C", got[0].Title)
	assert.Equal(t, "A", got[1].Title)
	assert.Equal(t, "a2", got[1].Abstract)
	assert.Equal(t, "B", got[2].Title)
}

func TestDedupEmpty(t *testing.T) {
	assert.Equal(t, 0, len(Dedup(nil)))
}
