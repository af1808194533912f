package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"marketbrief/internal/evidence"
	"marketbrief/internal/model"
)

const (
	ReasonNoItems  = "NO_ITEMS"
	ReasonNoAPIKey = "NO_API_KEY"
	ReasonDisabled = "USE_LLM_FALSE"
	ReasonError    = "LLM_ERROR"
)

// Summary is the outcome of a summarize call. Generated is false when Text
// is a fallback, in which case Reason says why.
type Summary struct {
	Text      string
	Generated bool
	Reason    string
	ModelUsed string
}

func Generated(text, modelUsed string) Summary {
	return Summary{Text: text, Generated: true, ModelUsed: modelUsed}
}

func Fallback(text, reason string) Summary {
	return Summary{Text: text, Reason: reason}
}

// Origin is the label shown above the summary text.
func (s Summary) Origin() string {
	if s.Generated {
		return model.GeneratedOrigin
	}
	return fmt.Sprintf(model.FallbackOriginFmt, s.Reason)
}

type Summarizer struct {
	generator Generator
	enabled   bool
}

// NewSummarizer takes a nil generator when no API key is configured.
func NewSummarizer(generator Generator, enabled bool) *Summarizer {
	return &Summarizer{generator: generator, enabled: enabled}
}

// Summarize asks the generator for a cited summary of items. It never
// fails; every problem becomes a fallback summary.
func (s *Summarizer) Summarize(ctx context.Context, items []model.EvidenceItem) Summary {
	n := len(items)
	if n == 0 {
		return Fallback(model.NoItemsMessage, ReasonNoItems)
	}

	if !s.enabled {
		return Fallback(fallbackText(items), ReasonDisabled)
	}

	if s.generator == nil {
		return Fallback(fallbackText(items), ReasonNoAPIKey)
	}

	prompt := BriefPrompt(evidence.Block(items), n)

	text, err := s.generator.Generate(ctx, briefSystemPrompt, prompt)
	if err != nil {
		reason := fmt.Sprintf("%s: %v", ReasonError, err)
		slog.Warn("LLM failed, using fallback summary", "reason", reason)
		return Fallback(fallbackText(items), reason)
	}

	if strings.TrimSpace(text) == "" {
		reason := ReasonError + ": empty response"
		slog.Warn("LLM returned no text, using fallback summary", "model", s.generator.ModelName())
		return Fallback(fallbackText(items), reason)
	}

	return Generated(text, s.generator.ModelName())
}

// fallbackText lists the first two titles as numbered paragraphs.
func fallbackText(items []model.EvidenceItem) string {
	var parts []string
	for i, item := range items {
		if i == 2 {
			break
		}
		parts = append(parts, fmt.Sprintf("%d) %s", i+1, item.Title))
	}
	return strings.Join(parts, "\n\n")
}
