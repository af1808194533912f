package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestAlphaVantageFetch(t *testing.T) {
	payload := map[string]interface{}{
		"feed": []map[string]interface{}{
			{
				"title":          "Fed Holds Rates Steady",
				"summary":        "The Federal Reserve kept interest rates unchanged.",
				"url":            "https://example.com/fed-rates",
				"source":         "Reuters",
				"time_published": "20260226T120000",
				"ticker_sentiment": []map[string]interface{}{
					{"ticker": "SPY"},
					{"ticker": "TLT"},
				},
			},
		},
	}

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewAlphaVantageClient("test-key", 1)
	client.baseURL = srv.URL

	articles, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.MatchRegex(t, gotQuery, "apikey=test-key")
	assert.MatchRegex(t, gotQuery, "limit=1")

	a := articles[0]
	assert.Equal(t, "Fed Holds Rates Steady", a.Headline)
	assert.Equal(t, "The Federal Reserve kept interest rates unchanged.", a.Summary)
	assert.Equal(t, "https://example.com/fed-rates", a.URL)
	assert.Equal(t, "AlphaVantage", a.Source)
	assert.Equal(t, time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC), a.PublishedAt)
}

func TestAlphaVantageFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewAlphaVantageClient("test-key", 1)
	client.baseURL = srv.URL

	articles, err := client.Fetch(context.Background())

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}
