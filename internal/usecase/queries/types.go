package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemView represents read-optimized item data
type ItemView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CoverURL  string    `json:"cover_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemListItem is the row shape of the paginated catalog listing
type ItemListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CoverURL string `json:"cover_url"`
}

// ItemMeta is the display metadata joined into discount reports
type ItemMeta struct {
	Name     string
	CoverURL string
}

// EditionView is one edition inside a snapshot view, price as captured
type EditionView struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// SnapshotView represents one capture of an item's edition prices
type SnapshotView struct {
	ItemID     string        `json:"item_id"`
	CapturedAt time.Time     `json:"captured_at"`
	Editions   []EditionView `json:"editions"`
}

// DiscountRow is one row of the ranked discount report
type DiscountRow struct {
	ItemID         string          `json:"item_id"`
	EditionName    string          `json:"edition_name"`
	Name           string          `json:"name"`
	CoverURL       string          `json:"cover_url"`
	PreviousPrice  decimal.Decimal `json:"previous_price"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	PriceDrop      decimal.Decimal `json:"price_drop"`
	DiscountStart  time.Time       `json:"discount_start"`
	DaysOnDiscount int             `json:"days_on_discount"`
}
