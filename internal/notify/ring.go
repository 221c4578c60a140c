package notify

import "sync"

// Ring is a thread-safe event buffer that doubles its capacity as it fills,
// so producers never block and nothing is dropped.
type Ring[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	head   int // read position
	tail   int // write position
	count  int
	cap    int
	closed bool
}

// NewRing creates a ring with the given initial capacity.
func NewRing[T any](initial int) *Ring[T] {
	if initial < 1 {
		initial = 1
	}
	r := &Ring[T]{
		items: make([]T, initial),
		cap:   initial,
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// Push adds an item, growing the ring when it is near capacity.
// Returns false if the ring is closed.
func (r *Ring[T]) Push(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}

	if r.count+1 >= r.cap {
		r.grow()
	}

	r.items[r.tail] = item
	r.tail = (r.tail + 1) % r.cap
	r.count++

	r.cond.Signal()
	return true
}

// Next removes and returns the oldest item, blocking until one is available.
// Returns false once the ring is closed and drained.
func (r *Ring[T]) Next() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.count == 0 && !r.closed {
		r.cond.Wait()
	}

	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.takeLocked(), true
}

// TryNext removes the oldest item without blocking.
func (r *Ring[T]) TryNext() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.takeLocked(), true
}

// Close closes the ring. Pending items remain readable.
func (r *Ring[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.cond.Broadcast()
}

// Len returns the number of buffered items.
func (r *Ring[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the current capacity.
func (r *Ring[T]) Cap() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cap
}

func (r *Ring[T]) takeLocked() T {
	item := r.items[r.head]
	var zero T
	r.items[r.head] = zero // release for GC
	r.head = (r.head + 1) % r.cap
	r.count--
	return item
}

// grow doubles the capacity. Must be called with the lock held.
func (r *Ring[T]) grow() {
	next := make([]T, r.cap*2)

	if r.count > 0 {
		if r.head < r.tail {
			copy(next, r.items[r.head:r.tail])
		} else {
			n := copy(next, r.items[r.head:])
			copy(next[n:], r.items[:r.tail])
		}
	}

	r.items = next
	r.head = 0
	r.tail = r.count
	r.cap = len(next)
}
