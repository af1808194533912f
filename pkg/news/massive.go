package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const massiveURL = "https://api.massive.com/v2/reference/news"

type MassiveClient struct {
	apiKey     string
	baseURL    string
	limit      int
	httpClient *http.Client
}

func NewMassiveClient(apiKey string, limit int) *MassiveClient {
	return &MassiveClient{
		apiKey:     apiKey,
		baseURL:    massiveURL,
		limit:      limit,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *MassiveClient) Name() string {
	return "Massive"
}

func (c *MassiveClient) Fetch(ctx context.Context) ([]Article, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.limit))
	q.Set("order", "desc")
	q.Set("sort", "published_utc")
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("massive request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("massive fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("massive fetch: unexpected status %d", resp.StatusCode)
	}

	var raw massiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("massive decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Results))
	for _, item := range raw.Results {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedUTC)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			Summary:     item.Description,
			URL:         item.ArticleURL,
			PublishedAt: publishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

type massiveResponse struct {
	Results []massiveResult `json:"results"`
}

type massiveResult struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ArticleURL   string `json:"article_url"`
	PublishedUTC string `json:"published_utc"`
}
