package discount

import (
	"time"

	"github.com/shopspring/decimal"

	"pricewatch/internal/domain/catalog"
	"pricewatch/internal/domain/pricing"
)

// Detector scans one item's ordered snapshot history and reports at most
// one active discount per edition.
//
// Comparing only the two most recent snapshots would miss discounts whose
// onset lies earlier in the window but whose latest comparison shows no
// further movement. The detector therefore walks every adjacent pair and
// keeps the onset of the current non-increasing run.
type Detector struct {
	parser *pricing.Parser
}

func NewDetector(parser *pricing.Parser) *Detector {
	return &Detector{parser: parser}
}

// Detect walks history (oldest first) and returns the active discounts
// whose onset falls inside [now-window, now]. Editions are taken from the
// most recent snapshot; an edition absent there yields no event.
func (d *Detector) Detect(history []catalog.Snapshot, now time.Time, window time.Duration) []Event {
	if len(history) < 2 {
		return nil
	}

	latest := history[len(history)-1]
	windowStart := now.Add(-window)

	var events []Event
	for _, ed := range latest.Editions {
		if ev, ok := d.detectEdition(history, ed.Name, windowStart, now); ok {
			events = append(events, ev)
		}
	}
	return events
}

// detectEdition runs the pair state machine for a single edition name.
//
// State transitions per adjacent pair (older, newer):
//   - either side unparsable or missing: skip, state unchanged
//   - newer < older: a run starts (onset = newer.CapturedAt) unless one is
//     already open
//   - newer == older: no movement, the run stays open
//   - newer > older: the run closes; a later drop starts a fresh run
func (d *Detector) detectEdition(history []catalog.Snapshot, name string, windowStart, now time.Time) (Event, bool) {
	var (
		inDiscount bool
		startDate  time.Time
		prevPrice  decimal.Decimal // price right before the run began
		lastKnown  pricing.Price   // newest comparable price seen so far
		haveKnown  bool
	)

	if ed, ok := history[0].Edition(name); ok {
		if p := d.parser.Parse(ed.RawPrice); p.Comparable() {
			lastKnown, haveKnown = p, true
		}
	}

	for i := 1; i < len(history); i++ {
		newerEd, ok := history[i].Edition(name)
		if !ok {
			continue
		}
		newer := d.parser.Parse(newerEd.RawPrice)
		if newer.Comparable() {
			lastKnown, haveKnown = newer, true
		}

		olderEd, ok := history[i-1].Edition(name)
		if !ok {
			continue
		}
		older := d.parser.Parse(olderEd.RawPrice)
		if !older.Comparable() || !newer.Comparable() {
			// unparsable data is not evidence of a price change
			continue
		}

		if newer.Amount().LessThan(older.Amount()) {
			if !inDiscount {
				inDiscount = true
				startDate = history[i].CapturedAt
				prevPrice = older.Amount()
			}
		} else if newer.Amount().GreaterThan(older.Amount()) {
			inDiscount = false
			startDate = time.Time{}
		}
	}

	if !inDiscount || startDate.IsZero() || !haveKnown {
		return Event{}, false
	}
	if startDate.Before(windowStart) || startDate.After(now) {
		return Event{}, false
	}
	current := lastKnown.Amount()
	if !current.LessThan(prevPrice) {
		return Event{}, false
	}

	return Event{
		ItemID:        history[len(history)-1].ItemID,
		EditionName:   name,
		PreviousPrice: prevPrice,
		CurrentPrice:  current,
		DropDate:      startDate,
	}, true
}
