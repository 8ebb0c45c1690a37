package lrutime

import (
	"cmp"
	"time"
)

// SetClock replaces the cache's time source. Test use only.
func SetClock[Key cmp.Ordered, Value any](c *Cache[Key, Value], now func() time.Time) {
	c.now = now
	c.lastNow = time.Time{}
}

// Consistent reports whether the structural invariants hold:
// the queue and store contain the same key set with no duplicates,
// and expired keys form a contiguous prefix at the queue front.
// Test use only.
func Consistent[Key cmp.Ordered, Value any](c *Cache[Key, Value]) bool {
	if c.queue.Len() != c.store.Len() {
		return false
	}
	var (
		seen     = make(map[Key]struct{}, c.queue.Len())
		now      = c.now()
		liveSeen bool
	)
	for i := 0; i < c.queue.Len(); i++ {
		key := c.queue.At(i)
		if _, duplicate := seen[key]; duplicate {
			return false
		}
		seen[key] = struct{}{}
		rec, ok := c.store.Get(record[Key, Value]{key: key})
		if !ok {
			return false
		}
		if rec.expired(now, c.ttl) {
			if liveSeen {
				return false
			}
		} else {
			liveSeen = true
		}
	}
	return true
}
