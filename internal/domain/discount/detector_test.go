//go:build unit

package discount_test

import (
	"testing"
	"time"

	"pricewatch/internal/domain/catalog"
	"pricewatch/internal/domain/discount"
	"pricewatch/internal/domain/pricing"
	"pricewatch/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const week = 7 * 24 * time.Hour

func newDetector() *discount.Detector {
	return discount.NewDetector(pricing.NewParser(nil))
}

func TestDetector_SingleDrop(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "59,99")).
		At("2024-01-05", builder.Ed("Standard", "39,99")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-06"), week)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "item-1", ev.ItemID)
	assert.Equal(t, "Standard", ev.EditionName)
	assert.True(t, ev.PreviousPrice.Equal(decimal.RequireFromString("59.99")))
	assert.True(t, ev.CurrentPrice.Equal(decimal.RequireFromString("39.99")))
	assert.True(t, ev.Magnitude().Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, builder.MustTime("2024-01-05"), ev.DropDate)
}

func TestDetector_RunClosedByIncrease(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "49,99")).
		At("2024-01-05", builder.Ed("Standard", "39,99")).
		At("2024-01-07", builder.Ed("Standard", "49,99")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-08"), week)

	assert.Empty(t, events)
}

// The onset of a still-active discount is reportable even when the most
// recent pair shows no further movement.
func TestDetector_OnsetSurvivesFlatTail(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "59,99")).
		At("2024-01-03", builder.Ed("Standard", "39,99")).
		At("2024-01-05", builder.Ed("Standard", "39,99")).
		At("2024-01-07", builder.Ed("Standard", "39,99")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-08"), week)

	require.Len(t, events, 1)
	assert.Equal(t, builder.MustTime("2024-01-03"), events[0].DropDate)
	assert.True(t, events[0].PreviousPrice.Equal(decimal.RequireFromString("59.99")))
}

// An unchanged pair in the middle of a run must not close it; only a
// strict increase does.
func TestDetector_PlateauKeepsRunOpen(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "60,00")).
		At("2024-01-02", builder.Ed("Standard", "50,00")).
		At("2024-01-04", builder.Ed("Standard", "50,00")).
		At("2024-01-06", builder.Ed("Standard", "40,00")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-07"), week)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, builder.MustTime("2024-01-02"), ev.DropDate)
	assert.True(t, ev.PreviousPrice.Equal(decimal.RequireFromString("60.00")))
	assert.True(t, ev.CurrentPrice.Equal(decimal.RequireFromString("40.00")))
}

func TestDetector_ConsecutiveDropsKeepRunOnset(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "60,00")).
		At("2024-01-03", builder.Ed("Standard", "50,00")).
		At("2024-01-05", builder.Ed("Standard", "40,00")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-06"), week)

	require.Len(t, events, 1)
	ev := events[0]
	// the run started when 50 first appeared; previous is the price before that
	assert.Equal(t, builder.MustTime("2024-01-03"), ev.DropDate)
	assert.True(t, ev.PreviousPrice.Equal(decimal.RequireFromString("60.00")))
	assert.True(t, ev.CurrentPrice.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, ev.Magnitude().Equal(decimal.RequireFromString("20.00")))
}

func TestDetector_FreshRunAfterReset(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "50,00")).
		At("2024-01-02", builder.Ed("Standard", "40,00")).
		At("2024-01-03", builder.Ed("Standard", "50,00")).
		At("2024-01-05", builder.Ed("Standard", "45,00")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-06"), week)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, builder.MustTime("2024-01-05"), ev.DropDate)
	assert.True(t, ev.PreviousPrice.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, ev.CurrentPrice.Equal(decimal.RequireFromString("45.00")))
}

func TestDetector_OnsetOutsideWindow(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "59,99")).
		At("2024-01-02", builder.Ed("Standard", "39,99")).
		Build()

	// onset on 01-02 is more than a week before now
	events := newDetector().Detect(history, builder.MustTime("2024-01-20"), week)

	assert.Empty(t, events)
}

func TestDetector_UnparsablePairSkippedWithoutReset(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "59,99")).
		At("2024-01-03", builder.Ed("Standard", "39,99")).
		At("2024-01-05", builder.Ed("Standard", "coming soon")).
		At("2024-01-07", builder.Ed("Standard", "39,99")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-08"), week)

	require.Len(t, events, 1)
	assert.Equal(t, builder.MustTime("2024-01-03"), events[0].DropDate)
	assert.True(t, events[0].CurrentPrice.Equal(decimal.RequireFromString("39.99")))
}

func TestDetector_ZeroCostCurrentPrice(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "59,99")).
		At("2024-01-05", builder.Ed("Standard", "Ücretsiz")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-06"), week)

	require.Len(t, events, 1)
	assert.True(t, events[0].CurrentPrice.IsZero())
	assert.True(t, events[0].Magnitude().Equal(decimal.RequireFromString("59.99")))
}

func TestDetector_EditionMissingFromLatestSnapshot(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Deluxe", "99,99")).
		At("2024-01-03", builder.Ed("Deluxe", "79,99")).
		At("2024-01-05", builder.Ed("Standard", "59,99")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-06"), week)

	// Deluxe is gone from the latest snapshot; Standard has no comparable pair
	assert.Empty(t, events)
}

func TestDetector_MalformedSnapshotDoesNotAbortScan(t *testing.T) {
	history := []catalog.Snapshot{
		{ItemID: "item-1", CapturedAt: builder.MustTime("2024-01-01"), Editions: []catalog.Edition{builder.Ed("Standard", "59,99")}},
		{ItemID: "item-1", CapturedAt: builder.MustTime("2024-01-03")}, // editions missing
		{ItemID: "item-1", CapturedAt: builder.MustTime("2024-01-05"), Editions: []catalog.Edition{builder.Ed("Standard", "39,99")}},
	}

	events := newDetector().Detect(history, builder.MustTime("2024-01-06"), week)

	// pairs touching the corrupt snapshot are skipped; the remaining
	// history yields no adjacent comparable pair, hence no event
	assert.Empty(t, events)
}

func TestDetector_MultipleEditions(t *testing.T) {
	history := builder.NewHistoryBuilder("item-1").
		At("2024-01-01", builder.Ed("Standard", "59,99"), builder.Ed("Deluxe", "99,99")).
		At("2024-01-05", builder.Ed("Standard", "39,99"), builder.Ed("Deluxe", "99,99")).
		Build()

	events := newDetector().Detect(history, builder.MustTime("2024-01-06"), week)

	require.Len(t, events, 1)
	assert.Equal(t, "Standard", events[0].EditionName)
}

func TestDetector_InsufficientHistory(t *testing.T) {
	detector := newDetector()
	now := builder.MustTime("2024-01-06")

	assert.Empty(t, detector.Detect(nil, now, week))

	single := builder.NewHistoryBuilder("item-1").
		At("2024-01-05", builder.Ed("Standard", "39,99")).
		Build()
	assert.Empty(t, detector.Detect(single, now, week))
}
