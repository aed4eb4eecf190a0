package cache

import (
	"fmt"

	"inrwatch/internal/domain"

	"github.com/dgraph-io/ristretto"
)

const latestKey = "latest"

type RistrettoLatestCache struct {
	cache *ristretto.Cache
}

func NewLatestCache(maxItems int64) (*RistrettoLatestCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create latest observation cache failed: %w", err)
	}
	return &RistrettoLatestCache{cache: c}, nil
}

func (c *RistrettoLatestCache) Get() (*domain.RateObservation, bool) {
	if v, ok := c.cache.Get(latestKey); ok {
		obs, ok := v.(*domain.RateObservation)
		return obs, ok
	}
	return nil, false
}

// Set blocks until the value is applied. Writes happen once per ingestion,
// so a buffered best-effort Set would let a dropped apply serve the prior
// observation for a whole day.
func (c *RistrettoLatestCache) Set(obs *domain.RateObservation) {
	c.cache.Set(latestKey, obs, 1)
	c.cache.Wait()
}

func (c *RistrettoLatestCache) Close() { c.cache.Close() }
