//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"pricewatch/internal/domain/catalog"
)

// HistoryBuilder assembles ordered snapshot histories for tests.
type HistoryBuilder struct {
	itemID string
	snaps  []catalog.Snapshot
}

func NewHistoryBuilder(itemID string) *HistoryBuilder {
	return &HistoryBuilder{itemID: itemID}
}

// At appends a snapshot captured at the given date ("2006-01-02" or
// RFC3339). Snapshots must be appended oldest first.
func (b *HistoryBuilder) At(date string, editions ...catalog.Edition) *HistoryBuilder {
	b.snaps = append(b.snaps, catalog.Snapshot{
		ItemID:     b.itemID,
		CapturedAt: MustTime(date),
		Editions:   editions,
	})
	return b
}

func (b *HistoryBuilder) Build() []catalog.Snapshot {
	return b.snaps
}

// Ed is shorthand for an edition with a raw price token.
func Ed(name, price string) catalog.Edition {
	return catalog.Edition{Name: name, RawPrice: price}
}

func MustTime(value string) time.Time {
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	panic(fmt.Sprintf("builder: cannot parse time %q", value))
}
