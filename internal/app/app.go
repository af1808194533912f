// Package app assembles the brief pipeline from configuration.
package app

import (
	"log/slog"
	"time"

	"marketbrief/internal/brief"
	"marketbrief/internal/config"
	"marketbrief/pkg/llm"
	"marketbrief/pkg/news"
)

const apiSourceLimit = 50

// NewsClients returns one client per configured feed and API key. store is
// optional and adds previously ingested articles as a source.
func NewsClients(cfg *config.Config, store news.ArticleStore) []news.NewsClient {
	var clients []news.NewsClient
	for _, feed := range cfg.Feeds {
		clients = append(clients, news.NewRSSClient(feed))
	}
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}
	if cfg.AlphaVantageAPIKey != "" {
		clients = append(clients, news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey, apiSourceLimit))
	}
	if cfg.MassiveAPIKey != "" {
		clients = append(clients, news.NewMassiveClient(cfg.MassiveAPIKey, apiSourceLimit))
	}
	if store != nil {
		window := time.Duration(cfg.HoursBack) * time.Hour
		clients = append(clients, news.NewStoreClient(store, window))
	}
	return clients
}

// Generator returns nil when the configured provider has no API key.
func Generator(cfg *config.Config) llm.Generator {
	key := cfg.LLMAPIKey()
	if key == "" {
		return nil
	}
	switch cfg.LLMProvider {
	case "anthropic":
		return llm.NewAnthropicClient(key, cfg.LLMModel)
	case "openai":
		return llm.NewOpenAIClient(key, cfg.LLMModel)
	}
	slog.Warn("unknown LLM provider, using openai", "provider", cfg.LLMProvider)
	return llm.NewOpenAIClient(key, cfg.LLMModel)
}

func NewComposer(cfg *config.Config) *brief.Composer {
	return brief.NewComposer(llm.NewSummarizer(Generator(cfg), cfg.UseLLM))
}

func NewService(cfg *config.Config, store news.ArticleStore) *brief.Service {
	collector := news.NewCollector(NewsClients(cfg, store), news.CollectorOptions{
		Location:        cfg.Location,
		HoursBack:       cfg.HoursBack,
		IncludeWeekends: cfg.IncludeWeekends,
	})
	return brief.NewService(collector, NewComposer(cfg), cfg.Location)
}
