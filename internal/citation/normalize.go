// Package citation cleans up the inline citations a model writes against a
// numbered evidence list. Markers are normalized to [n], markers outside the
// evidence range are dropped, and the rest are renumbered densely in order
// of first appearance.
package citation

import (
	"sort"
	"strconv"

	"marketbrief/internal/evidence"
	"marketbrief/internal/model"
)

// Mapping maps a cited evidence index to its dense index.
type Mapping map[int]int

type Result struct {
	Text       string
	References []model.Reference
	Mapping    Mapping
}

// NormalizeBrackets rewrites {n} and (n) as [n]. A parenthesised number that
// is not a citation, such as "(2024)", is rewritten too.
func NormalizeBrackets(text string) string {
	return rewrite(text, "{(", func(m marker) string {
		return "[" + m.digits + "]"
	})
}

// StripInvalid deletes every [n] marker with n outside 1..limit, including
// markers that only form once a neighbour is deleted ("[[11]12]"). It runs
// in one pass: a marker is checked when its closing bracket lands in the
// output, and a deleted marker leaves the output ending where it started.
func StripInvalid(text string, limit int) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		out = append(out, text[i])
		if text[i] != ']' {
			continue
		}

		// digits scanned here end up deleted or behind a ']' for good
		j := len(out) - 2
		for j >= 0 && isDigit(out[j]) {
			j--
		}
		if j < 0 || out[j] != '[' || j == len(out)-2 {
			continue
		}

		m := marker{open: '[', digits: string(out[j+1 : len(out)-1])}
		if n, ok := m.value(); ok && n >= 1 && n <= limit {
			continue
		}
		out = out[:j]
	}
	return string(out)
}

// FirstAppearance returns the distinct indices in 1..limit cited by text, in
// the order of their first occurrence.
func FirstAppearance(text string, limit int) []int {
	order := []int{}
	seen := make(map[int]bool)
	each(text, func(m marker) {
		n, ok := m.value()
		if !ok || n < 1 || n > limit || seen[n] {
			return
		}
		seen[n] = true
		order = append(order, n)
	})
	return order
}

// Renumber maps order[i] to i+1 and rewrites every [n] marker accordingly.
// Markers not in the mapping are removed.
func Renumber(text string, order []int) (string, Mapping) {
	mapping := make(Mapping, len(order))
	for i, old := range order {
		if _, ok := mapping[old]; !ok {
			mapping[old] = i + 1
		}
	}

	out := rewrite(text, "[", func(m marker) string {
		old, ok := m.value()
		if !ok {
			return ""
		}
		next, ok := mapping[old]
		if !ok {
			return ""
		}
		return "[" + strconv.Itoa(next) + "]"
	})
	return out, mapping
}

// References lists the mapped evidence items ordered by dense index. It
// never returns nil.
func References(mapping Mapping, items []model.EvidenceItem) []model.Reference {
	refs := make([]model.Reference, 0, len(mapping))
	for old, next := range mapping {
		item, ok := evidence.Lookup(items, old)
		if !ok {
			continue
		}
		refs = append(refs, model.Reference{
			Index: next,
			Old:   old,
			Title: item.Title,
			Link:  item.Link,
		})
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Index < refs[j].Index
	})
	return refs
}

// Normalize runs the full cleanup of raw against the evidence items. It is a
// pure function and accepts any input.
func Normalize(raw string, items []model.EvidenceItem) Result {
	n := len(items)

	text := NormalizeBrackets(raw)
	text = StripInvalid(text, n)

	order := FirstAppearance(text, n)
	text, mapping := Renumber(text, order)

	return Result{
		Text:       text,
		References: References(mapping, items),
		Mapping:    mapping,
	}
}
