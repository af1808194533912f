// Package evidence numbers admitted news items and renders them as the
// evidence block handed to the summarizing model.
package evidence

import (
	"fmt"
	"strings"

	"marketbrief/internal/model"
)

// Numbered pairs an item with its 1-based evidence index.
type Numbered struct {
	Index int
	Item  model.EvidenceItem
}

// Build assigns indices 1..N in input order. Items are expected newest first
// already; Build does not re-sort.
func Build(items []model.EvidenceItem) []Numbered {
	numbered := make([]Numbered, len(items))
	for i, item := range items {
		numbered[i] = Numbered{Index: i + 1, Item: item}
	}
	return numbered
}

// Block renders one "[i] title (link): abstract" line per item. It returns
// an empty string when there are no items.
func Block(items []model.EvidenceItem) string {
	var sb strings.Builder
	for _, n := range Build(items) {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("[%d] %s (%s): %s", n.Index, n.Item.Title, n.Item.Link, n.Item.Abstract))
	}
	return sb.String()
}

// Lookup returns the item at 1-based index i.
func Lookup(items []model.EvidenceItem, i int) (model.EvidenceItem, bool) {
	if i < 1 || i > len(items) {
		return model.EvidenceItem{}, false
	}
	return items[i-1], true
}
