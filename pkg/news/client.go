package news

import (
	"context"
	"time"
)

// Article is a raw item as returned by a news source, before cleanup and
// admission into a brief. Summary and Description are kept apart so the
// collector can merge them without repeating text.
type Article struct {
	Headline    string
	Summary     string
	Description string
	URL         string
	Source      string
	PublishedAt time.Time
}

type NewsClient interface {
	Fetch(ctx context.Context) ([]Article, error)
	Name() string
}
