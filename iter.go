package lrutime

import (
	"cmp"
	"iter"
)

// A TimedEntry is produced by [Cache.NotifyIter]. Expired is false
// for entries that were still live when visited (and were touched),
// and true for entries that had expired and were removed.
type TimedEntry[Key cmp.Ordered, Value any] struct {
	Key     Key
	Value   Value
	Expired bool
}

// Iter returns an iterator over entries, most recently used first.
// Visiting an entry touches it: its timestamp is refreshed to the
// traversal's start time and it becomes the most recently used.
// Expired entries encountered mid-walk are removed without being
// yielded. The walk is single-pass over the entries present when
// it began; entries it reappends are not revisited. No other
// operation may be performed on the cache until the loop finishes,
// though stopping early leaves the cache valid, with touches
// applied so far kept.
func (c *Cache[Key, Value]) Iter() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		now := c.tick()
		for i := c.queue.Len() - 1; i >= 0; i-- {
			key := c.queue.RemoveAt(i)
			rec, ok := c.store.Get(record[Key, Value]{key: key})
			if !ok {
				continue
			}
			if rec.expired(now, c.ttl) {
				c.store.Delete(rec)
				continue
			}
			c.queue.PushBack(key)
			rec.touched = now
			c.store.Set(rec)
			if !yield(key, rec.value) {
				return
			}
		}
	}
}

// PeekIter returns an iterator over unexpired entries, most
// recently used first, without touching them. Expired entries
// are skipped, not removed.
func (c *Cache[Key, Value]) PeekIter() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		now := c.now()
		for i := c.queue.Len() - 1; i >= 0; i-- {
			rec, ok := c.store.Get(record[Key, Value]{key: c.queue.At(i)})
			if !ok || rec.expired(now, c.ttl) {
				continue
			}
			if !yield(rec.key, rec.value) {
				return
			}
		}
	}
}

// NotifyIter is [Cache.Iter] with expired entries yielded instead
// of silently dropped: every visited entry is reported either as
// live (touched and repositioned) or as expired (removed).
func (c *Cache[Key, Value]) NotifyIter() iter.Seq[TimedEntry[Key, Value]] {
	return func(yield func(TimedEntry[Key, Value]) bool) {
		now := c.tick()
		for i := c.queue.Len() - 1; i >= 0; i-- {
			key := c.queue.RemoveAt(i)
			rec, ok := c.store.Get(record[Key, Value]{key: key})
			if !ok {
				continue
			}
			entry := TimedEntry[Key, Value]{Key: key, Value: rec.value}
			if rec.expired(now, c.ttl) {
				c.store.Delete(rec)
				entry.Expired = true
			} else {
				c.queue.PushBack(key)
				rec.touched = now
				c.store.Set(rec)
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of unexpired entries,
// most recently used first, without touching them.
func (c *Cache[Key, Value]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		now := c.now()
		for i := c.queue.Len() - 1; i >= 0; i-- {
			key := c.queue.At(i)
			rec, ok := c.store.Get(record[Key, Value]{key: key})
			if !ok || rec.expired(now, c.ttl) {
				continue
			}
			if !yield(key) {
				return
			}
		}
	}
}
