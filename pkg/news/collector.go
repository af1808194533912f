package news

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"marketbrief/internal/model"

	"golang.org/x/sync/errgroup"
)

type CollectorOptions struct {
	Location        *time.Location
	HoursBack       int
	IncludeWeekends bool
}

// Collector gathers articles from every client and admits the ones that
// belong in a brief.
type Collector struct {
	clients []NewsClient
	opts    CollectorOptions
	now     func() time.Time
}

func NewCollector(clients []NewsClient, opts CollectorOptions) *Collector {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Collector{clients: clients, opts: opts, now: time.Now}
}

// Collect fetches all clients concurrently. A client that fails is logged
// and skipped. The result holds unique links, newest first.
func (c *Collector) Collect(ctx context.Context) ([]model.EvidenceItem, error) {
	results := make([][]Article, len(c.clients))

	var g errgroup.Group
	for i, client := range c.clients {
		g.Go(func() error {
			slog.Info("fetching news", "source", client.Name())
			articles, err := client.Fetch(ctx)
			if err != nil {
				slog.Error("error fetching news", "source", client.Name(), "error", err)
				return nil
			}
			results[i] = articles
			return nil
		})
	}
	// failures are logged and skipped above, so the group never errors
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := c.now().In(c.opts.Location)

	var admitted []model.EvidenceItem
	for i, articles := range results {
		var kept int
		for _, a := range articles {
			item, ok := c.admit(a, now)
			if !ok {
				continue
			}
			admitted = append(admitted, item)
			kept++
		}
		slog.Info("fetch complete", "source", c.clients[i].Name(), "fetched", len(articles), "admitted", kept)
	}

	return Dedup(admitted), nil
}

// admit cleans an article and checks it against the title, link, weekday
// and time window rules.
func (c *Collector) admit(a Article, now time.Time) (model.EvidenceItem, bool) {
	title := CleanText(a.Headline)
	link := strings.TrimSpace(a.URL)
	if title == "" || link == "" {
		return model.EvidenceItem{}, false
	}

	pub := a.PublishedAt
	if pub.IsZero() {
		pub = now
	}
	pub = pub.In(c.opts.Location)

	if !c.opts.IncludeWeekends && isWeekend(pub) {
		return model.EvidenceItem{}, false
	}

	cutoff := now.Add(-time.Duration(c.opts.HoursBack) * time.Hour)
	if pub.Before(cutoff) {
		return model.EvidenceItem{}, false
	}

	return model.EvidenceItem{
		Title:       title,
		Link:        link,
		Abstract:    CombineAbstract(CleanText(a.Summary), CleanText(a.Description)),
		Source:      a.Source,
		PublishedAt: pub,
	}, true
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Dedup keeps one item per link, the last one seen, and orders the result
// newest first. Items published at the same instant keep the order in
// which their link first appeared.
func Dedup(items []model.EvidenceItem) []model.EvidenceItem {
	index := make(map[string]int, len(items))
	uniq := make([]model.EvidenceItem, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.Link]; ok {
			uniq[i] = item
			continue
		}
		index[item.Link] = len(uniq)
		uniq = append(uniq, item)
	}

	sort.SliceStable(uniq, func(i, j int) bool {
		return uniq[i].PublishedAt.After(uniq[j].PublishedAt)
	})
	return uniq
}
