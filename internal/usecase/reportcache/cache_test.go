//go:build unit

package reportcache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewatch/internal/usecase/queries"
	"pricewatch/internal/usecase/reportcache"
)

func TestCache_MissesUntilFilled(t *testing.T) {
	c := reportcache.New(15 * time.Minute)

	_, ok := c.Get(time.Now())
	assert.False(t, ok)
	assert.True(t, c.RefreshedAt().IsZero())
}

func TestCache_ServesFreshRows(t *testing.T) {
	now := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	c := reportcache.New(15 * time.Minute)
	rows := []*queries.DiscountRow{{ItemID: "itm-1", EditionName: "Standard"}}

	c.Put(rows, now)

	got, ok := c.Get(now.Add(14 * time.Minute))
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "itm-1", got[0].ItemID)
	assert.True(t, c.RefreshedAt().Equal(now))
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	now := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	c := reportcache.New(15 * time.Minute)
	c.Put([]*queries.DiscountRow{{ItemID: "itm-1"}}, now)

	_, ok := c.Get(now.Add(16 * time.Minute))
	assert.False(t, ok)
}

func TestCache_PutReplacesStaleRows(t *testing.T) {
	now := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	c := reportcache.New(15 * time.Minute)
	c.Put([]*queries.DiscountRow{{ItemID: "itm-old"}}, now)
	c.Put([]*queries.DiscountRow{{ItemID: "itm-new"}}, now.Add(20*time.Minute))

	got, ok := c.Get(now.Add(21 * time.Minute))
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "itm-new", got[0].ItemID)
}
