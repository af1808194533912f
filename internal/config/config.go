// Package config reads the brief job's settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var DefaultFeeds = []string{
	"https://feeds.content.dowjones.io/public/rss/mw_topstories",
	"https://feeds.content.dowjones.io/public/rss/RSSMarketsMain",
	"https://feeds.content.dowjones.io/public/rss/WSJcomUSBusiness",
	"https://seekingalpha.com/api/sitemap_news/TSLA.xml",
}

type Config struct {
	Location        *time.Location
	HoursBack       int
	IncludeWeekends bool
	Feeds           []string

	FinnhubAPIKey      string
	AlphaVantageAPIKey string
	MassiveAPIKey      string
	DatabaseURL        string
	RedisURL           string

	LLMProvider     string
	UseLLM          bool
	OpenAIAPIKey    string
	AnthropicAPIKey string
	LLMModel        string

	GmailUser        string
	GmailAppPassword string
	ToEmail          string
	FromName         string
	SMTPHost         string
	SMTPPort         int

	FrontendURL string
	LogLevel    slog.Level
}

// Load reads every setting. Only a bad TIMEZONE is an error; other invalid
// values fall back to their defaults with a warning.
func Load() (*Config, error) {
	tzName := getEnv("TIMEZONE", "America/New_York")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tzName, err)
	}

	cfg := &Config{
		Location:        loc,
		HoursBack:       getEnvInt("HOURS_BACK", 26),
		IncludeWeekends: getEnvBool("INCLUDE_WEEKENDS", false),
		Feeds:           getEnvList("FEEDS", DefaultFeeds),

		FinnhubAPIKey:      os.Getenv("FINNHUB_API_KEY"),
		AlphaVantageAPIKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
		MassiveAPIKey:      os.Getenv("MASSIVE_API_KEY"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),

		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		UseLLM:          getEnvBool("USE_LLM", true),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		LLMModel:        getEnv("LLM_MODEL", os.Getenv("OPENAI_MODEL")),

		GmailUser:        os.Getenv("GMAIL_USER"),
		GmailAppPassword: os.Getenv("GMAIL_APP_PASSWORD"),
		FromName:         getEnv("FROM_NAME", "WSJ Markets Brief"),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),

		FrontendURL: os.Getenv("FRONTEND_URL"),
		LogLevel:    parseLevel(os.Getenv("LOG_LEVEL")),
	}
	cfg.ToEmail = getEnv("TO_EMAIL", cfg.GmailUser)

	if cfg.HoursBack <= 0 {
		slog.Warn("HOURS_BACK must be positive, using default", "value", cfg.HoursBack)
		cfg.HoursBack = 26
	}

	return cfg, nil
}

// LLMAPIKey returns the key for the configured provider.
func (c *Config) LLMAPIKey() string {
	if c.LLMProvider == "anthropic" {
		return c.AnthropicAPIKey
	}
	return c.OpenAIAPIKey
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	slog.Warn("invalid boolean in environment, using default", "key", key, "value", v, "default", fallback)
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
