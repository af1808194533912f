package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

const userAgent = "marketbrief/1.0 (+rss)"

// RSSClient reads one RSS or Atom feed.
type RSSClient struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewRSSClient(feedURL string) *RSSClient {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: 30 * time.Second}
	return &RSSClient{feedURL: feedURL, parser: parser}
}

func (c *RSSClient) Name() string {
	return c.feedURL
}

func (c *RSSClient) Fetch(ctx context.Context) ([]Article, error) {
	feed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss fetch %s: %w", c.feedURL, err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			Summary:     item.Description,
			Description: item.Content,
			URL:         item.Link,
			Source:      c.Name(),
			PublishedAt: itemTime(item),
		})
	}

	return articles, nil
}

// itemTime prefers the published date and falls back to the updated one.
// The zero time means the feed gave neither.
func itemTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Time{}
}
