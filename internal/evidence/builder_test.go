package evidence

import (
	"testing"
	"time"

	"marketbrief/internal/model"

	"github.com/go-playground/assert/v2"
)

func testItems() []model.EvidenceItem {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return []model.EvidenceItem{
		{Title: "Fed Holds Rates", Link: "https://example.com/fed", Abstract: "Rates unchanged.", PublishedAt: now},
		{Title: "Nvidia Beats Estimates", Link: "https://example.com/nvda", Abstract: "", PublishedAt: now.Add(-time.Hour)},
	}
}

func TestBuild(t *testing.T) {
	items := testItems()

	numbered := Build(items)

	assert.Equal(t, 2, len(numbered))
	assert.Equal(t, 1, numbered[0].Index)
	assert.Equal(t, "Fed Holds Rates", numbered[0].Item.Title)
	assert.Equal(t, 2, numbered[1].Index)
	assert.Equal(t, "Nvidia Beats Estimates", numbered[1].Item.Title)
}

func TestBuildKeepsInputOrder(t *testing.T) {
	items := testItems()
	items[0], items[1] = items[1], items[0]

	numbered := Build(items)

	assert.Equal(t, "Nvidia Beats Estimates", numbered[0].Item.Title)
	assert.Equal(t, "Fed Holds Rates", numbered[1].Item.Title)
}

func TestBlock(t *testing.T) {
	want := "[1] Fed Holds Rates (https://example.com/fed): Rates unchanged.\n" +
		"[2] Nvidia Beats Estimates (https://example.com/nvda): "

	assert.Equal(t, want, Block(testItems()))
}

func TestBlockEmpty(t *testing.T) {
	assert.Equal(t, "", Block(nil))
	assert.Equal(t, 0, len(Build(nil)))
}

func TestLookup(t *testing.T) {
	items := testItems()

	tests := []struct {
		name  string
		index int
		ok    bool
		title string
	}{
		{name: "first", index: 1, ok: true, title: "Fed Holds Rates"},
		{name: "last", index: 2, ok: true, title: "Nvidia Beats Estimates"},
		{name: "zero", index: 0, ok: false},
		{name: "past end", index: 3, ok: false},
		{name: "negative", index: -1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := Lookup(items, tt.index)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.title, item.Title)
		})
	}
}
