package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/domain"
	"github.com/light-bringer/teetime-pricing/internal/pkg/clock"
)

// cacheEntry memoizes one computed quote until expiresAt.
type cacheEntry struct {
	quote     domain.Quote
	expiresAt time.Time
}

// priceCache memoizes calculator output. Entries are created lazily on first
// calculation for a key and expire passively at read time; nothing sweeps
// the map. Invalidation is coarse on purpose: any mutation purges the whole
// course, trading possible over-invalidation for never serving stale data.
type priceCache struct {
	clock   clock.Clock
	entries map[string]cacheEntry
}

func newPriceCache(clk clock.Clock) *priceCache {
	return &priceCache{
		clock:   clk,
		entries: make(map[string]cacheEntry),
	}
}

// get returns a copy of the cached quote when the entry is still live.
// Expired entries are deleted on the spot.
func (c *priceCache) get(key string) (*domain.Quote, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.clock.Now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	q := entry.quote.Clone()
	return &q, true
}

// put stores a quote under key for ttl.
func (c *priceCache) put(key string, q domain.Quote, ttl time.Duration) {
	c.entries[key] = cacheEntry{
		quote:     q.Clone(),
		expiresAt: c.clock.Now().Add(ttl),
	}
}

// purgeCourse drops every entry whose key belongs to courseID.
func (c *priceCache) purgeCourse(courseID string) {
	prefix := courseID + "|"
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// len reports the number of entries, live or expired.
func (c *priceCache) len() int {
	return len(c.entries)
}

// cacheKey identifies a request by everything the calculation depends on:
// course, date, time, players, and lead time (to two decimal hours).
func cacheKey(req domain.QuoteRequest, leadTimeHours float64) string {
	return strings.Join([]string{
		req.CourseID,
		req.Date,
		req.Time,
		strconv.FormatInt(req.Players, 10),
		strconv.FormatFloat(leadTimeHours, 'f', 2, 64),
	}, "|")
}
