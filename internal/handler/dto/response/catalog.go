package response

import (
	"log/slog"

	"pricewatch/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CoverURL  string `json:"cover_url"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:        v.ID,
		Name:      v.Name,
		CoverURL:  v.CoverURL,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

type ItemListItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CoverURL string `json:"cover_url"`
}

type ItemListResponse struct {
	Total int64                   `json:"total"`
	Data  []*ItemListItemResponse `json:"data"`
	Next  string                  `json:"next,omitempty"`
}

func FromItemList(items []*queries.ItemListItem, next *queries.Cursor, total int64) *ItemListResponse {
	data := make([]*ItemListItemResponse, 0, len(items))
	if err := copier.Copy(&data, items); err != nil {
		slog.Warn("item list mapping failed", "error", err)
	}
	resp := &ItemListResponse{Total: total, Data: data}
	if next != nil {
		resp.Next = next.After
	}
	return resp
}

type EditionResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type SnapshotResponse struct {
	ItemID     string            `json:"item_id"`
	CapturedAt int64             `json:"captured_at"`
	Editions   []EditionResponse `json:"editions"`
}

type PriceHistoryResponse struct {
	Data []*SnapshotResponse `json:"data"`
}

func FromSnapshotList(snapshots []*queries.SnapshotView) *PriceHistoryResponse {
	data := make([]*SnapshotResponse, len(snapshots))
	for i, s := range snapshots {
		editions := make([]EditionResponse, len(s.Editions))
		for j, e := range s.Editions {
			editions[j] = EditionResponse{Name: e.Name, Price: e.Price}
		}
		data[i] = &SnapshotResponse{
			ItemID:     s.ItemID,
			CapturedAt: s.CapturedAt.Unix(),
			Editions:   editions,
		}
	}
	return &PriceHistoryResponse{Data: data}
}
