// Package lrutime implements a [Cache] bounded by entry count,
// entry age, or both: a combined Least-Recently-Used and
// Time-To-Live cache.
//
// The cache couples two structures that are kept in lockstep:
// an ordered key-value store holding each entry alongside the time
// it was last touched, and a recency queue of keys ordered from
// least recently touched (front) to most recently touched (back).
// There is no background goroutine; expired entries are reclaimed
// by a lazy sweep that qualifying operations run before observing
// size or content.
//
// Glossary and invariants:
//
//   - Touch
//
//     Any operation that refreshes an entry's last-touched timestamp
//     and moves its key to the back of the recency queue.
//     [Cache.Set], [Cache.Get], and the visiting steps of
//     [Cache.Iter] and [Cache.NotifyIter] touch; [Cache.Peek],
//     [Cache.PeekIter], and [Cache.Keys] never do.
//
//   - Expired
//
//     An entry whose time since last touch exceeds the configured
//     time to live. Because every touch reappends its key, expired
//     keys always form a contiguous prefix at the queue front
//     between operations. Sweeps and [Cache.Len] rely on this to
//     stop at the first live entry.
//
//   - Expiry sweep
//
//     Pops the expired front prefix from both structures.
//     Runs at the start of Set, Get, and the touching traversals.
//     Peek deliberately avoids it, checking the one entry's age
//     instead, so that a read-only probe has no side effects.
//
//   - Capacity sweep
//
//     Evicts from the queue front while the store is at or over
//     capacity. Runs only when inserting a new key, after the
//     expiry sweep: entries expire first, then eviction for space
//     considers what remains. Updating an existing key never
//     evicts.
//
// The queue and store always hold exactly the same key set, with
// no duplicates, at the boundary of every public operation.
// Building with the `lrutime_debug` tag enables assertions of this
// and of time-source monotonicity, which the cache otherwise
// assumes.
//
// Operations never panic under documented preconditions; absence
// is reported through a false second return value, and
// constructors are the only functions that return errors.
package lrutime
