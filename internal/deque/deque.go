// Package deque is a specialized growable ring buffer for use in
// recency-queue bookkeeping.
package deque

// A Deque is a double-ended queue backed by a circular buffer.
// The zero value is an empty deque ready for use.
// Indices address logical positions: 0 is the front,
// Len()-1 is the back.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

const minimumBuffer = 8

// New creates a deque with room for at least capacity
// elements before reallocating.
func New[T any](capacity int) *Deque[T] {
	queue := new(Deque[T])
	if capacity > 0 {
		queue.buf = make([]T, ceilPow2(capacity))
	}
	return queue
}

// Len returns the number of elements currently queued.
func (q *Deque[T]) Len() int { return q.count }

// PushBack appends value behind the current back element.
func (q *Deque[T]) PushBack(value T) {
	q.reserve()
	q.buf[q.index(q.count)] = value
	q.count++
}

// PopFront removes and returns the front element,
// reporting false if the deque is empty.
func (q *Deque[T]) PopFront() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	value := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = q.wrap(q.head + 1)
	q.count--
	return value, true
}

// Front returns the front element without removing it,
// reporting false if the deque is empty.
func (q *Deque[T]) Front() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Back returns the back element without removing it,
// reporting false if the deque is empty.
func (q *Deque[T]) Back() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.index(q.count-1)], true
}

// At returns the element at logical position i.
// i must be in [0, Len()).
func (q *Deque[T]) At(i int) T {
	q.boundsCheck(i)
	return q.buf[q.index(i)]
}

// RemoveAt removes and returns the element at logical position i,
// shifting whichever side of the queue is shorter.
// i must be in [0, Len()).
func (q *Deque[T]) RemoveAt(i int) T {
	q.boundsCheck(i)
	var (
		value = q.buf[q.index(i)]
		zero  T
	)
	if i < q.count-1-i {
		for j := i; j > 0; j-- {
			q.buf[q.index(j)] = q.buf[q.index(j-1)]
		}
		q.buf[q.head] = zero
		q.head = q.wrap(q.head + 1)
	} else {
		for j := i; j < q.count-1; j++ {
			q.buf[q.index(j)] = q.buf[q.index(j+1)]
		}
		q.buf[q.index(q.count-1)] = zero
	}
	q.count--
	return value
}

// Clear removes all elements, retaining the buffer.
func (q *Deque[T]) Clear() {
	var zero T
	for i := 0; i < q.count; i++ {
		q.buf[q.index(i)] = zero
	}
	q.head = 0
	q.count = 0
}

func (q *Deque[T]) index(i int) int { return q.wrap(q.head + i) }

func (q *Deque[T]) wrap(i int) int {
	// Buffer sizes are powers of two; masking replaces modulo.
	return i & (len(q.buf) - 1)
}

func (q *Deque[T]) boundsCheck(i int) {
	if i < 0 || i >= q.count {
		panic("deque: index out of range")
	}
}

func (q *Deque[T]) reserve() {
	if q.count < len(q.buf) {
		return
	}
	size := max(len(q.buf)*2, minimumBuffer)
	buf := make([]T, size)
	for i := 0; i < q.count; i++ {
		buf[i] = q.buf[q.index(i)]
	}
	q.buf = buf
	q.head = 0
}

func ceilPow2(n int) int {
	size := minimumBuffer
	for size < n {
		size *= 2
	}
	return size
}
