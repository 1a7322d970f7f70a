package response

import (
	"pricewatch/internal/usecase/queries"
)

const (
	ReportStatusOK = "ok"
	// fewer than two distinct capture times exist; nothing can be compared
	ReportStatusNoComparisonData = "no_comparison_data"
)

type DiscountRowResponse struct {
	ItemID         string  `json:"item_id"`
	EditionName    string  `json:"edition_name"`
	Name           string  `json:"name"`
	CoverURL       string  `json:"cover_url"`
	PreviousPrice  float64 `json:"previous_price"`
	CurrentPrice   float64 `json:"current_price"`
	PriceDrop      float64 `json:"price_drop"`
	DiscountStart  int64   `json:"discount_start"`
	DaysOnDiscount int     `json:"days_on_discount"`
}

type DiscountReportResponse struct {
	Status string                 `json:"status"`
	Data   []*DiscountRowResponse `json:"data"`
}

func FromDiscountRows(rows []*queries.DiscountRow, status string) *DiscountReportResponse {
	data := make([]*DiscountRowResponse, len(rows))
	for i, r := range rows {
		data[i] = &DiscountRowResponse{
			ItemID:         r.ItemID,
			EditionName:    r.EditionName,
			Name:           r.Name,
			CoverURL:       r.CoverURL,
			PreviousPrice:  r.PreviousPrice.InexactFloat64(),
			CurrentPrice:   r.CurrentPrice.InexactFloat64(),
			PriceDrop:      r.PriceDrop.InexactFloat64(),
			DiscountStart:  r.DiscountStart.Unix(),
			DaysOnDiscount: r.DaysOnDiscount,
		}
	}
	return &DiscountReportResponse{Status: status, Data: data}
}
