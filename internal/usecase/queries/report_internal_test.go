//go:build unit

package queries

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewatch/internal/domain/discount"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestDedupeEvents_MostRecentDropDateWins(t *testing.T) {
	events := []discount.Event{
		{ItemID: "itm-1", EditionName: "Standard", DropDate: day(3), PreviousPrice: decimal.NewFromInt(60), CurrentPrice: decimal.NewFromInt(40)},
		{ItemID: "itm-1", EditionName: "Standard", DropDate: day(7), PreviousPrice: decimal.NewFromInt(40), CurrentPrice: decimal.NewFromInt(30)},
		{ItemID: "itm-1", EditionName: "Deluxe", DropDate: day(2), PreviousPrice: decimal.NewFromInt(90), CurrentPrice: decimal.NewFromInt(80)},
	}

	out := dedupeEvents(events)
	require.Len(t, out, 2)

	byKey := make(map[string]discount.Event, len(out))
	for _, ev := range out {
		byKey[ev.Key()] = ev
	}
	standard, ok := byKey["itm-1\x00Standard"]
	require.True(t, ok)
	assert.True(t, standard.DropDate.Equal(day(7)))
	assert.True(t, standard.CurrentPrice.Equal(decimal.NewFromInt(30)))
}

func TestDedupeEvents_SameDropDateKeepsFirst(t *testing.T) {
	first := discount.Event{ItemID: "itm-1", EditionName: "Standard", DropDate: day(5), CurrentPrice: decimal.NewFromInt(10)}
	second := discount.Event{ItemID: "itm-1", EditionName: "Standard", DropDate: day(5), CurrentPrice: decimal.NewFromInt(20)}

	out := dedupeEvents([]discount.Event{first, second})
	require.Len(t, out, 1)
	assert.True(t, out[0].CurrentPrice.Equal(first.CurrentPrice))
}

func TestSortRows_Ordering(t *testing.T) {
	rows := []*DiscountRow{
		{ItemID: "b", EditionName: "Standard", PriceDrop: decimal.NewFromInt(20), DiscountStart: day(4)},
		{ItemID: "a", EditionName: "Standard", PriceDrop: decimal.NewFromInt(20), DiscountStart: day(4)},
		{ItemID: "c", EditionName: "Standard", PriceDrop: decimal.NewFromInt(20), DiscountStart: day(6)},
		{ItemID: "d", EditionName: "Standard", PriceDrop: decimal.NewFromInt(50), DiscountStart: day(1)},
		{ItemID: "a", EditionName: "Deluxe", PriceDrop: decimal.NewFromInt(20), DiscountStart: day(4)},
	}

	sortRows(rows)

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.ItemID + "/" + r.EditionName
	}
	// biggest drop first, then newer onset, then item id, then edition name
	assert.Equal(t, []string{
		"d/Standard",
		"c/Standard",
		"a/Deluxe",
		"a/Standard",
		"b/Standard",
	}, got)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, daysBetween(day(5), day(5)))
	assert.Equal(t, 3, daysBetween(day(2), day(5)))
	// partial days truncate
	assert.Equal(t, 2, daysBetween(day(2), day(4).Add(12*time.Hour)))
	// clock skew never goes negative
	assert.Equal(t, 0, daysBetween(day(5), day(2)))
}
