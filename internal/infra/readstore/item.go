package readstore

import (
	"context"

	"pricewatch/internal/infra"
	"pricewatch/internal/pkg/pgconv"
	"pricewatch/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db DBTX
}

func NewItemReadStore(db DBTX) *ItemReadStore {
	return &ItemReadStore{db: db}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id string) (*queries.ItemView, error) {
	var (
		view      queries.ItemView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, cover_url, created_at, updated_at
		   FROM items
		  WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.Name, &view.CoverURL, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item by id", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (r *ItemReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.ItemListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, cover_url
		   FROM items
		  ORDER BY name ASC, id ASC
		  LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get items first page", err)
	}
	defer rows.Close()
	return scanItemList(rows.Next, rows.Scan, rows.Err)
}

func (r *ItemReadStore) FindKeyset(ctx context.Context, lastName, lastID string, limit int32) ([]*queries.ItemListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, cover_url
		   FROM items
		  WHERE (name, id) > ($1, $2)
		  ORDER BY name ASC, id ASC
		  LIMIT $3`,
		lastName, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get items keyset page", err)
	}
	defer rows.Close()
	return scanItemList(rows.Next, rows.Scan, rows.Err)
}

func (r *ItemReadStore) CountItems(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count items", err)
	}
	return total, nil
}

func (r *ItemReadStore) LookupMeta(ctx context.Context, ids []string) (map[string]queries.ItemMeta, error) {
	if len(ids) == 0 {
		return map[string]queries.ItemMeta{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, cover_url
		   FROM items
		  WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to look up item metadata", err)
	}
	defer rows.Close()

	meta := make(map[string]queries.ItemMeta, len(ids))
	for rows.Next() {
		var (
			id       string
			name     string
			coverURL string
		)
		if err := rows.Scan(&id, &name, &coverURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item metadata", err)
		}
		meta[id] = queries.ItemMeta{Name: name, CoverURL: coverURL}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item metadata", err)
	}
	return meta, nil
}

func scanItemList(next func() bool, scan func(dest ...any) error, rowsErr func() error) ([]*queries.ItemListItem, error) {
	var items []*queries.ItemListItem
	for next() {
		var it queries.ItemListItem
		if err := scan(&it.ID, &it.Name, &it.CoverURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		items = append(items, &it)
	}
	if err := rowsErr(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return items, nil
}
