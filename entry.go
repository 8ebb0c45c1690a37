package lrutime

import "cmp"

// An EntryView is a combined presence check and lookup for a single
// key, obtained from [Cache.Entry]. A view is occupied when the key
// was present and unexpired, and vacant otherwise. The view is only
// meaningful until the next operation on the cache.
type EntryView[Key cmp.Ordered, Value any] struct {
	cache    *Cache[Key, Value]
	key      Key
	value    Value
	occupied bool
}

// Entry looks up key with the same expiry and touch semantics
// as [Cache.Get], returning a view of the outcome.
func (c *Cache[Key, Value]) Entry(key Key) EntryView[Key, Value] {
	value, hit := c.Get(key)
	return EntryView[Key, Value]{
		cache:    c,
		key:      key,
		value:    value,
		occupied: hit,
	}
}

// Occupied reports whether the viewed key was present.
func (e EntryView[Key, Value]) Occupied() bool { return e.occupied }

// OrInsert returns the existing value for an occupied view;
// for a vacant view it inserts value under the viewed key
// and returns it.
func (e EntryView[Key, Value]) OrInsert(value Value) Value {
	if e.occupied {
		return e.value
	}
	e.cache.Set(e.key, value)
	return value
}

// OrInsertWith is [EntryView.OrInsert] with the value produced
// by fn, which is only called for a vacant view.
func (e EntryView[Key, Value]) OrInsertWith(fn func() Value) Value {
	if e.occupied {
		return e.value
	}
	value := fn()
	e.cache.Set(e.key, value)
	return value
}
