package queries

import (
	"context"
	"time"

	"pricewatch/internal/domain/catalog"
	"pricewatch/internal/infra"
	"pricewatch/internal/pkg/errs"
)

var (
	ErrInvalidCursor = errs.New("invalid cursor")
)

// SnapshotReadStore is the ordered-snapshot-history provider consumed by
// the discount engine. Histories come back oldest first; the engine never
// mutates what it receives.
type SnapshotReadStore interface {
	HistoryByItem(ctx context.Context, itemID string) ([]catalog.Snapshot, error)
	HistoriesSince(ctx context.Context, since time.Time) (map[string][]catalog.Snapshot, error)
	DistinctCaptureTimes(ctx context.Context, since time.Time) ([]time.Time, error)
}

// ItemReadStore provides catalog listings and the display metadata joined
// into discount reports.
type ItemReadStore interface {
	FindByID(ctx context.Context, id string) (*ItemView, error)
	FindFirstPage(ctx context.Context, limit int32) ([]*ItemListItem, error)
	FindKeyset(ctx context.Context, lastName, lastID string, limit int32) ([]*ItemListItem, error)
	CountItems(ctx context.Context) (int64, error)
	LookupMeta(ctx context.Context, ids []string) (map[string]ItemMeta, error)
}

type CatalogQueries interface {
	GetItem(ctx context.Context, id string) (*ItemView, error)
	ListItems(ctx context.Context, cursor *Cursor, limit int) ([]*ItemListItem, *Cursor, int64, error)
	GetPriceHistory(ctx context.Context, itemID string) ([]*SnapshotView, error)
}

type catalogQueriesImpl struct {
	items     ItemReadStore
	snapshots SnapshotReadStore
}

func NewCatalogQueries(items ItemReadStore, snapshots SnapshotReadStore) CatalogQueries {
	return &catalogQueriesImpl{items: items, snapshots: snapshots}
}

func (q *catalogQueriesImpl) GetItem(ctx context.Context, id string) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// keep the repository cause but let callers match the sentinel
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListItems(ctx context.Context, cursor *Cursor, limit int) ([]*ItemListItem, *Cursor, int64, error) {
	limit = ValidateLimit(limit)

	var rows []*ItemListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.items.FindFirstPage(ctx, int32(limit+1))
	} else {
		lastName, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, 0, ErrInvalidCursor
		}
		rows, err = q.items.FindKeyset(ctx, lastName, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, 0, err
	}

	total, err := q.items.CountItems(ctx)
	if err != nil {
		return nil, nil, 0, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.Name, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, total, nil
}

// GetPriceHistory returns the raw snapshot documents, newest first. An
// unknown item simply has no history.
func (q *catalogQueriesImpl) GetPriceHistory(ctx context.Context, itemID string) ([]*SnapshotView, error) {
	history, err := q.snapshots.HistoryByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	views := make([]*SnapshotView, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		snap := history[i]
		editions := make([]EditionView, len(snap.Editions))
		for j, ed := range snap.Editions {
			editions[j] = EditionView{Name: ed.Name, Price: ed.RawPrice}
		}
		views = append(views, &SnapshotView{
			ItemID:     snap.ItemID,
			CapturedAt: snap.CapturedAt,
			Editions:   editions,
		})
	}
	return views, nil
}
