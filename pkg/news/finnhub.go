package news

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client   *finnhub.DefaultApiService
	category string
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client, category: "general"}
}

func (c *FinnHubClient) Fetch(ctx context.Context) ([]Article, error) {
	res, _, err := c.client.MarketNews(ctx).Category(c.category).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub market news: %w", err)
	}

	articles := make([]Article, 0, len(res))
	for _, news := range res {
		articles = append(articles, finnhubArticle(news, c.Name()))
	}

	return articles, nil
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

// finnhubArticle copies the optional fields of a market news entry. A
// missing datetime leaves PublishedAt zero.
func finnhubArticle(news finnhub.MarketNews, source string) Article {
	a := Article{Source: source}

	if news.Headline != nil {
		a.Headline = *news.Headline
	}

	if news.Summary != nil {
		a.Summary = *news.Summary
	}

	if news.Url != nil {
		a.URL = *news.Url
	}

	if news.Datetime != nil && *news.Datetime > 0 {
		a.PublishedAt = time.Unix(*news.Datetime, 0).UTC()
	}

	return a
}
