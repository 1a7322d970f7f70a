package queries

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"pricewatch/internal/domain/catalog"
	"pricewatch/internal/domain/discount"
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/errs"
)

const (
	// histories are fetched one extra day back so the pair straddling the
	// window edge still has its "before" snapshot
	fetchSlack = 24 * time.Hour

	maxWorkers = 32

	// placeholder for events whose item metadata is missing; the event is
	// kept, never dropped
	unknownItemName = "Unknown item"
)

// ReportOptions bound one report computation. Window must be positive;
// Limit 0 means uncapped.
type ReportOptions struct {
	Window time.Duration
	Limit  int
}

type DiscountQueries interface {
	// Report evaluates every item in one pass and returns the ranked,
	// deduplicated report. Returns errs.ErrNoComparisonData when fewer
	// than two distinct capture times exist in the requested range.
	Report(ctx context.Context, opts ReportOptions) ([]*DiscountRow, error)
	// ItemDiscounts evaluates a single item. Insufficient history is not
	// an error; it yields an empty report.
	ItemDiscounts(ctx context.Context, itemID string, opts ReportOptions) ([]*DiscountRow, error)
}

type discountQueriesImpl struct {
	snapshots SnapshotReadStore
	items     ItemReadStore
	detector  *discount.Detector
	clock     clock.Clock
	workers   int
	logger    *slog.Logger
}

func NewDiscountQueries(
	snapshots SnapshotReadStore,
	items ItemReadStore,
	detector *discount.Detector,
	clk clock.Clock,
	workers int,
	logger *slog.Logger,
) DiscountQueries {
	if workers < 1 {
		workers = 1
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &discountQueriesImpl{
		snapshots: snapshots,
		items:     items,
		detector:  detector,
		clock:     clk,
		workers:   workers,
		logger:    logger,
	}
}

func (q *discountQueriesImpl) Report(ctx context.Context, opts ReportOptions) ([]*DiscountRow, error) {
	if opts.Window <= 0 {
		return nil, errs.ErrInvalidLookback
	}
	now := q.clock.Now()
	since := now.Add(-(opts.Window + fetchSlack))

	captureTimes, err := q.snapshots.DistinctCaptureTimes(ctx, since)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load capture times")
	}
	if len(captureTimes) < 2 {
		return nil, errs.ErrNoComparisonData
	}

	histories, err := q.snapshots.HistoriesSince(ctx, since)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load snapshot histories")
	}

	events := q.scan(histories, now, opts.Window)
	return q.buildRows(ctx, events, now, opts.Limit)
}

func (q *discountQueriesImpl) ItemDiscounts(ctx context.Context, itemID string, opts ReportOptions) ([]*DiscountRow, error) {
	if opts.Window <= 0 {
		return nil, errs.ErrInvalidLookback
	}
	now := q.clock.Now()

	history, err := q.snapshots.HistoryByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load snapshot history")
	}

	events := q.detectItem(itemID, history, now, opts.Window)
	return q.buildRows(ctx, events, now, opts.Limit)
}

// scan runs the detector over every item on a bounded worker pool. Items
// are independent, so order of completion does not matter; determinism
// comes from the final sort.
func (q *discountQueriesImpl) scan(histories map[string][]catalog.Snapshot, now time.Time, window time.Duration) []discount.Event {
	type job struct {
		itemID  string
		history []catalog.Snapshot
	}

	jobs := make(chan job)
	var (
		mu     sync.Mutex
		events []discount.Event
		wg     sync.WaitGroup
	)

	for range q.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				evs := q.detectItem(j.itemID, j.history, now, window)
				if len(evs) == 0 {
					continue
				}
				mu.Lock()
				events = append(events, evs...)
				mu.Unlock()
			}
		}()
	}

	for itemID, history := range histories {
		jobs <- job{itemID: itemID, history: history}
	}
	close(jobs)
	wg.Wait()

	return events
}

// detectItem isolates one item's scan: a failure there is logged and
// yields nothing, without touching events already collected elsewhere.
func (q *discountQueriesImpl) detectItem(itemID string, history []catalog.Snapshot, now time.Time, window time.Duration) (evs []discount.Event) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Warn("discount scan failed", "item_id", itemID, "cause", r)
			evs = nil
		}
	}()
	return q.detector.Detect(history, now, window)
}

func (q *discountQueriesImpl) buildRows(ctx context.Context, events []discount.Event, now time.Time, limit int) ([]*DiscountRow, error) {
	events = dedupeEvents(events)
	if len(events) == 0 {
		return []*DiscountRow{}, nil
	}

	ids := make([]string, 0, len(events))
	seen := make(map[string]struct{}, len(events))
	for _, ev := range events {
		if _, ok := seen[ev.ItemID]; ok {
			continue
		}
		seen[ev.ItemID] = struct{}{}
		ids = append(ids, ev.ItemID)
	}

	meta, err := q.items.LookupMeta(ctx, ids)
	if err != nil {
		return nil, errs.Wrap(err, "failed to look up item metadata")
	}

	rows := make([]*DiscountRow, 0, len(events))
	for _, ev := range events {
		m, ok := meta[ev.ItemID]
		if !ok {
			m = ItemMeta{Name: unknownItemName}
		}
		rows = append(rows, &DiscountRow{
			ItemID:         ev.ItemID,
			EditionName:    ev.EditionName,
			Name:           m.Name,
			CoverURL:       m.CoverURL,
			PreviousPrice:  ev.PreviousPrice,
			CurrentPrice:   ev.CurrentPrice,
			PriceDrop:      ev.Magnitude(),
			DiscountStart:  ev.DropDate,
			DaysOnDiscount: daysBetween(ev.DropDate, now),
		})
	}

	sortRows(rows)

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// dedupeEvents keeps one event per (itemId, editionName); the most recent
// DropDate wins.
func dedupeEvents(events []discount.Event) []discount.Event {
	byKey := make(map[string]discount.Event, len(events))
	for _, ev := range events {
		key := ev.Key()
		if kept, ok := byKey[key]; ok && !ev.DropDate.After(kept.DropDate) {
			continue
		}
		byKey[key] = ev
	}

	out := make([]discount.Event, 0, len(byKey))
	for _, ev := range byKey {
		out = append(out, ev)
	}
	return out
}

// sortRows orders by drop magnitude descending, DropDate descending, then
// item id ascending so equal drops stay deterministic.
func sortRows(rows []*DiscountRow) {
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].PriceDrop.Cmp(rows[j].PriceDrop); c != 0 {
			return c > 0
		}
		if !rows[i].DiscountStart.Equal(rows[j].DiscountStart) {
			return rows[i].DiscountStart.After(rows[j].DiscountStart)
		}
		if rows[i].ItemID != rows[j].ItemID {
			return rows[i].ItemID < rows[j].ItemID
		}
		return rows[i].EditionName < rows[j].EditionName
	})
}

func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
