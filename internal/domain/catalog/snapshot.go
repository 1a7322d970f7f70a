package catalog

import "time"

// Edition is one named variant of an item inside a snapshot. RawPrice is
// kept as captured; normalization happens in the pricing package.
type Edition struct {
	Name     string
	RawPrice string
}

// Snapshot is one immutable capture of an item's edition prices.
// Histories are ordered oldest first; ties on CapturedAt keep arrival order.
type Snapshot struct {
	ItemID     string
	CapturedAt time.Time
	Editions   []Edition
}

// Edition returns the named edition if the snapshot carries it.
func (s Snapshot) Edition(name string) (Edition, bool) {
	for _, e := range s.Editions {
		if e.Name == name {
			return e, true
		}
	}
	return Edition{}, false
}
