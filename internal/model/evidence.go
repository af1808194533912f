package model

import "time"

const (
	NoItemsMessage    = "No fresh market-moving headlines in the last 24 hours."
	NoReferences      = "No references available."
	GeneratedOrigin   = "GPT summarize:"
	FallbackOriginFmt = "Fallback summary (reason: %s):"
)

// EvidenceItem is one news item admitted into a brief. Link is the dedup key.
type EvidenceItem struct {
	Title       string
	Link        string
	Abstract    string
	Source      string
	PublishedAt time.Time
}

// Reference is one entry of a brief's reference list. Index is the dense
// number used in the cleaned text, Old the evidence index the model cited.
type Reference struct {
	Index int
	Old   int
	Title string
	Link  string
}

type Brief struct {
	RunID          string
	Date           time.Time
	Origin         string
	Text           string
	References     []Reference
	ItemCount      int
	Generated      bool
	FallbackReason string
	ModelUsed      string
}
