package discount

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is one still-active discount for an item edition. It is derived
// at report time and never persisted.
type Event struct {
	ItemID        string
	EditionName   string
	PreviousPrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	DropDate      time.Time
}

// Magnitude is the size of the drop (previous minus current).
func (e Event) Magnitude() decimal.Decimal {
	return e.PreviousPrice.Sub(e.CurrentPrice)
}

// Key identifies the dedup unit: at most one event per item edition
// survives into a report.
func (e Event) Key() string {
	return e.ItemID + "\x00" + e.EditionName
}
