package cache

import (
	"fmt"
	"time"

	"kursbot/internal/domain"

	"github.com/dgraph-io/ristretto"
)

const rateTableKey = "cbr_rates"

// RistrettoRateTableCache holds a single time-bounded rate-table snapshot.
// The slot is replaced wholesale on refresh and expires after ttl.
type RistrettoRateTableCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewRateTableCache(maxItems int64, ttl time.Duration) (*RistrettoRateTableCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create rate table cache failed: %w", err)
	}
	return &RistrettoRateTableCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoRateTableCache) Get() (*domain.RateTable, bool) {
	if v, ok := c.cache.Get(rateTableKey); ok {
		table, ok := v.(*domain.RateTable)
		return table, ok
	}
	return nil, false
}

func (c *RistrettoRateTableCache) Set(table *domain.RateTable) {
	c.cache.SetWithTTL(rateTableKey, table, 1, c.ttl)
	// Wait so the slot is visible to the next caller.
	c.cache.Wait()
}

func (c *RistrettoRateTableCache) Close() { c.cache.Close() }
