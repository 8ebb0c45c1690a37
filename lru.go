package lrutime

import (
	"cmp"
	"math"
	"time"

	"github.com/djdv/go-lrutime/internal/deque"
	"github.com/tidwall/btree"
)

type (
	// record binds a stored value to the time it was last touched.
	record[Key cmp.Ordered, Value any] struct {
		key     Key
		value   Value
		touched time.Time
	}
	// Entry is an owned key-value pair, as reported by operations
	// that surface evicted or expired entries.
	Entry[Key cmp.Ordered, Value any] struct {
		Key   Key
		Value Value
	}
	// Cache is an associative container bounded by entry count
	// and/or entry age, evicting least-recently-used entries first.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New], [NewExpiring],
	// or [NewExpiringWithCapacity].
	Cache[Key cmp.Ordered, Value any] struct {
		store    *btree.BTreeG[record[Key, Value]]
		queue    *deque.Deque[Key]
		now      func() time.Time
		lastNow  time.Time
		ttl      time.Duration
		capacity int
	}
)

// Unbounded is the capacity used by [NewExpiring];
// such caches are limited by entry age alone.
const Unbounded = math.MaxInt

// New creates a [Cache] holding at most capacity entries,
// with no age limit. Capacity must not be negative;
// a capacity of zero is legal but retains only the most
// recently inserted entry until the insert that follows it.
func New[Key cmp.Ordered, Value any](capacity int) (*Cache[Key, Value], error) {
	if capacity < 0 {
		return nil, negativeCapacityError(capacity)
	}
	return newCache[Key, Value](capacity, 0), nil
}

// NewExpiring creates a [Cache] without a capacity bound whose
// entries expire once timeToLive has elapsed since they were
// last touched. timeToLive must be positive.
func NewExpiring[Key cmp.Ordered, Value any](timeToLive time.Duration) (*Cache[Key, Value], error) {
	if timeToLive <= 0 {
		return nil, nonPositiveTTLError(timeToLive)
	}
	return newCache[Key, Value](Unbounded, timeToLive), nil
}

// NewExpiringWithCapacity creates a [Cache] bounded by both
// entry count and entry age. Entries expire first; eviction
// for space considers only what remains.
func NewExpiringWithCapacity[Key cmp.Ordered, Value any](
	timeToLive time.Duration, capacity int,
) (*Cache[Key, Value], error) {
	if capacity < 0 {
		return nil, negativeCapacityError(capacity)
	}
	if timeToLive <= 0 {
		return nil, nonPositiveTTLError(timeToLive)
	}
	return newCache[Key, Value](capacity, timeToLive), nil
}

func newCache[Key cmp.Ordered, Value any](capacity int, ttl time.Duration) *Cache[Key, Value] {
	return &Cache[Key, Value]{
		store:    newStore[Key, Value](),
		queue:    deque.New[Key](0),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

func newStore[Key cmp.Ordered, Value any]() *btree.BTreeG[record[Key, Value]] {
	return btree.NewBTreeGOptions(
		func(a, b record[Key, Value]) bool { return a.key < b.key },
		btree.Options{NoLocks: true},
	)
}

// Set inserts or updates key with value, touching it.
// If key was already present its previous value is returned.
// Inserting a new key may expire and evict other entries.
func (c *Cache[Key, Value]) Set(key Key, value Value) (Value, bool) {
	previous, replaced, _ := c.insert(key, value, false)
	return previous, replaced
}

// SetNotify is [Cache.Set], additionally reporting every entry the
// operation dropped, oldest first: entries removed by the expiry
// sweep followed by entries evicted to make room.
func (c *Cache[Key, Value]) SetNotify(key Key, value Value) (previous Value, replaced bool, removed []Entry[Key, Value]) {
	return c.insert(key, value, true)
}

func (c *Cache[Key, Value]) insert(key Key, value Value, collect bool) (Value, bool, []Entry[Key, Value]) {
	var (
		now     = c.tick()
		removed = c.sweepExpired(now, collect)
		probe   = record[Key, Value]{key: key}
	)
	if previous, hit := c.store.Get(probe); hit {
		c.moveToBack(key)
		c.store.Set(record[Key, Value]{key: key, value: value, touched: now})
		return previous.value, true, removed
	}
	removed = append(removed, c.sweepCapacity(collect)...)
	c.queue.PushBack(key)
	c.store.Set(record[Key, Value]{key: key, value: value, touched: now})
	if debugging {
		assert(c.queue.Len() == c.store.Len(),
			"recency queue diverged from value store")
	}
	var zero Value
	return zero, false, removed
}

// Get returns the value for key if it is present and unexpired,
// touching it; otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	value, hit, _ := c.lookup(key, false)
	return value, hit
}

// GetNotify is [Cache.Get], additionally reporting the entries
// removed by the expiry sweep, oldest first.
func (c *Cache[Key, Value]) GetNotify(key Key) (value Value, hit bool, removed []Entry[Key, Value]) {
	return c.lookup(key, true)
}

func (c *Cache[Key, Value]) lookup(key Key, collect bool) (Value, bool, []Entry[Key, Value]) {
	var (
		now     = c.tick()
		removed = c.sweepExpired(now, collect)
	)
	rec, hit := c.store.Get(record[Key, Value]{key: key})
	if !hit {
		var zero Value
		return zero, false, removed
	}
	c.moveToBack(key)
	rec.touched = now
	c.store.Set(rec)
	return rec.value, true, removed
}

// Peek returns the value for key if it is present and unexpired,
// without touching it and without sweeping other expired entries.
func (c *Cache[Key, Value]) Peek(key Key) (Value, bool) {
	rec, hit := c.store.Get(record[Key, Value]{key: key})
	if !hit || rec.expired(c.now(), c.ttl) {
		var zero Value
		return zero, false
	}
	return rec.value, true
}

// Contains reports whether key is present and unexpired,
// without touching it.
func (c *Cache[Key, Value]) Contains(key Key) bool {
	_, hit := c.Peek(key)
	return hit
}

// Remove removes key, returning its value if it was structurally
// present. Removal succeeds even for an entry that has expired
// but not yet been swept.
func (c *Cache[Key, Value]) Remove(key Key) (Value, bool) {
	rec, hit := c.store.Delete(record[Key, Value]{key: key})
	if !hit {
		var zero Value
		return zero, false
	}
	for i := c.queue.Len() - 1; i >= 0; i-- {
		if c.queue.At(i) == key {
			c.queue.RemoveAt(i)
			break
		}
	}
	return rec.value, true
}

// Len returns the number of unexpired entries.
func (c *Cache[Key, Value]) Len() int {
	length := c.store.Len()
	if c.ttl == 0 || length == 0 {
		return length
	}
	// Expired keys form a contiguous prefix at the queue front,
	// so counting stops at the first live entry.
	now := c.now()
	for i := 0; i < c.queue.Len(); i++ {
		rec, ok := c.store.Get(record[Key, Value]{key: c.queue.At(i)})
		if !ok || !rec.expired(now, c.ttl) {
			break
		}
		length--
	}
	return length
}

// IsEmpty reports whether no unexpired entries remain.
func (c *Cache[Key, Value]) IsEmpty() bool { return c.Len() == 0 }

// Clear removes all entries unconditionally.
func (c *Cache[Key, Value]) Clear() {
	c.store = newStore[Key, Value]()
	c.queue.Clear()
}

// sweepExpired removes the expired prefix of the recency queue
// from both structures. Every touch reappends its key, so expired
// keys can only accumulate at the front.
func (c *Cache[Key, Value]) sweepExpired(now time.Time, collect bool) []Entry[Key, Value] {
	if c.ttl == 0 {
		return nil
	}
	var removed []Entry[Key, Value]
	for {
		key, ok := c.queue.Front()
		if !ok {
			break
		}
		rec, ok := c.store.Get(record[Key, Value]{key: key})
		if debugging {
			assert(ok, "queued key missing from value store")
		}
		if !ok || !rec.expired(now, c.ttl) {
			break
		}
		c.queue.PopFront()
		c.store.Delete(rec)
		if collect {
			removed = append(removed, Entry[Key, Value]{Key: key, Value: rec.value})
		}
	}
	return removed
}

// sweepCapacity evicts from the queue front until an insertion
// of one new entry would stay within capacity. Runs only on
// insertion of a new key, after the expiry sweep.
func (c *Cache[Key, Value]) sweepCapacity(collect bool) []Entry[Key, Value] {
	var removed []Entry[Key, Value]
	for c.store.Len() >= c.capacity {
		key, ok := c.queue.PopFront()
		if !ok {
			break
		}
		rec, _ := c.store.Delete(record[Key, Value]{key: key})
		if collect {
			removed = append(removed, Entry[Key, Value]{Key: key, Value: rec.value})
		}
	}
	return removed
}

// moveToBack repositions key as the most recently touched.
// Touched keys tend to be recent, so the scan runs back to front.
func (c *Cache[Key, Value]) moveToBack(key Key) {
	for i := c.queue.Len() - 1; i >= 0; i-- {
		if c.queue.At(i) == key {
			c.queue.RemoveAt(i)
			break
		}
	}
	c.queue.PushBack(key)
}

// tick reads the time source once per operation.
func (c *Cache[Key, Value]) tick() time.Time {
	now := c.now()
	if debugging {
		assert(!now.Before(c.lastNow), "time source moved backwards")
	}
	c.lastNow = now
	return now
}

func (r record[Key, Value]) expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(r.touched) > ttl
}
