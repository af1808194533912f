// Package brief turns admitted evidence into a finished brief: summary text
// with dense citations and the matching reference list.
package brief

import (
	"context"
	"log/slog"
	"time"

	"marketbrief/internal/citation"
	"marketbrief/internal/model"
	"marketbrief/pkg/llm"

	"github.com/google/uuid"
)

type Summarizer interface {
	Summarize(ctx context.Context, items []model.EvidenceItem) llm.Summary
}

type Collector interface {
	Collect(ctx context.Context) ([]model.EvidenceItem, error)
}

type Composer struct {
	summarizer Summarizer
}

func NewComposer(summarizer Summarizer) *Composer {
	return &Composer{summarizer: summarizer}
}

// Compose builds the brief for items, which must be unique by link and
// newest first. With no items the summarizer and normalizer are skipped.
func (c *Composer) Compose(ctx context.Context, now time.Time, items []model.EvidenceItem) model.Brief {
	b := model.Brief{
		RunID:      uuid.NewString(),
		Date:       now,
		ItemCount:  len(items),
		References: []model.Reference{},
	}

	if len(items) == 0 {
		summary := llm.Fallback(model.NoItemsMessage, llm.ReasonNoItems)
		b.Text = summary.Text
		b.Origin = summary.Origin()
		b.FallbackReason = summary.Reason
		return b
	}

	summary := c.summarizer.Summarize(ctx, items)
	res := citation.Normalize(summary.Text, items)

	b.Text = res.Text
	b.References = res.References
	b.Origin = summary.Origin()
	b.Generated = summary.Generated
	b.FallbackReason = summary.Reason
	b.ModelUsed = summary.ModelUsed

	slog.Info("brief composed",
		"run_id", b.RunID,
		"items", b.ItemCount,
		"references", len(b.References),
		"generated", b.Generated,
		"fallback_reason", b.FallbackReason,
	)

	return b
}

// Service collects evidence and composes a brief in one call.
type Service struct {
	collector Collector
	composer  *Composer
	location  *time.Location
	now       func() time.Time
}

func NewService(collector Collector, composer *Composer, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{collector: collector, composer: composer, location: location, now: time.Now}
}

func (s *Service) Build(ctx context.Context) (model.Brief, error) {
	items, err := s.collector.Collect(ctx)
	if err != nil {
		return model.Brief{}, err
	}
	slog.Info("evidence collected", "count", len(items))

	return s.composer.Compose(ctx, s.now().In(s.location), items), nil
}
