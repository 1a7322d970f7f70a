package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pricewatch/internal/domain/catalog"
	"pricewatch/internal/infra"
	"pricewatch/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// SnapshotReadStore serves ordered snapshot histories from the
// price_snapshots table. Editions are stored as a jsonb array of
// {name, price} documents; fields the scraper adds beyond those two are
// ignored here.
type SnapshotReadStore struct {
	db DBTX
}

func NewSnapshotReadStore(db DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: db}
}

// editionDoc mirrors the persisted document shape. Unknown fields are
// dropped by json.Unmarshal.
type editionDoc struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

const snapshotColumns = `item_id, captured_at, editions`

func (r *SnapshotReadStore) HistoryByItem(ctx context.Context, itemID string) ([]catalog.Snapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+snapshotColumns+`
		   FROM price_snapshots
		  WHERE item_id = $1
		  ORDER BY captured_at ASC, id ASC`,
		itemID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query snapshot history", err)
	}
	defer rows.Close()

	var history []catalog.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan snapshot row", err)
		}
		history = append(history, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read snapshot rows", err)
	}
	return history, nil
}

func (r *SnapshotReadStore) HistoriesSince(ctx context.Context, since time.Time) (map[string][]catalog.Snapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+snapshotColumns+`
		   FROM price_snapshots
		  WHERE captured_at >= $1
		  ORDER BY item_id ASC, captured_at ASC, id ASC`,
		pgconv.TimeToPgtype(since),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query snapshot histories", err)
	}
	defer rows.Close()

	histories := make(map[string][]catalog.Snapshot)
	for rows.Next() {
		snap, err := scanSnapshot(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan snapshot row", err)
		}
		histories[snap.ItemID] = append(histories[snap.ItemID], snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read snapshot rows", err)
	}
	return histories, nil
}

func (r *SnapshotReadStore) DistinctCaptureTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT captured_at
		   FROM price_snapshots
		  WHERE captured_at >= $1
		  ORDER BY captured_at ASC`,
		pgconv.TimeToPgtype(since),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query capture times", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var ts pgtype.Timestamptz
		if err := rows.Scan(&ts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan capture time", err)
		}
		times = append(times, pgconv.TimeFromPgtype(ts))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read capture times", err)
	}
	return times, nil
}

func scanSnapshot(scan func(dest ...any) error) (catalog.Snapshot, error) {
	var (
		itemID     string
		capturedAt pgtype.Timestamptz
		rawDoc     []byte
	)
	if err := scan(&itemID, &capturedAt, &rawDoc); err != nil {
		return catalog.Snapshot{}, err
	}

	snap := catalog.Snapshot{
		ItemID:     itemID,
		CapturedAt: pgconv.TimeFromPgtype(capturedAt),
	}

	// A corrupt editions document degrades to an edition-less snapshot:
	// the detector skips its pairs and the rest of the history still scans.
	var docs []editionDoc
	if err := json.Unmarshal(rawDoc, &docs); err != nil {
		slog.Warn("malformed editions document", "item_id", itemID, "captured_at", snap.CapturedAt, "error", err)
		return snap, nil
	}
	snap.Editions = make([]catalog.Edition, len(docs))
	for i, d := range docs {
		snap.Editions[i] = catalog.Edition{Name: d.Name, RawPrice: d.Price}
	}
	return snap, nil
}
