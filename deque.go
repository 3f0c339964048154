// Copyright 2024 The coll Authors. All rights reserved.

package coll

const minDequeSize = 8

// Deque is a double-ended queue over a power-of-two ring buffer. The ring
// doubles when full and halves when three quarters empty, never below
// minDequeSize.
type Deque[T any] struct {
	ring []T
	head int
	size int
}

// NewDeque creates an empty deque with room for capacity elements.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		panic("coll: capacity must be nonnegative")
	}
	n := nextPowOfTwo(capacity)
	if n < minDequeSize {
		n = minDequeSize
	}
	return &Deque[T]{ring: make([]T, n)}
}

func (q *Deque[T]) mask() int {
	return len(q.ring) - 1
}

// resize moves the elements into a ring of size n with head at zero.
func (q *Deque[T]) resize(n int) {
	ring := make([]T, n)
	front := copy(ring, q.ring[q.head:])
	if front < q.size {
		copy(ring[front:], q.ring[:q.size-front])
	}
	q.ring = ring
	q.head = 0
}

func (q *Deque[T]) grow() {
	if q.size == len(q.ring) {
		q.resize(len(q.ring) * 2)
	}
}

func (q *Deque[T]) shrink() {
	if len(q.ring) > minDequeSize && q.size < len(q.ring)/4 {
		q.resize(len(q.ring) / 2)
	}
}

// PushBack appends v at the tail.
func (q *Deque[T]) PushBack(v T) {
	q.grow()
	q.ring[(q.head+q.size)&q.mask()] = v
	q.size++
}

// PushFront prepends v at the head.
func (q *Deque[T]) PushFront(v T) {
	q.grow()
	q.head = (q.head - 1) & q.mask()
	q.ring[q.head] = v
	q.size++
}

// PopFront removes and returns the head element.
func (q *Deque[T]) PopFront() (v T, ok bool) {
	if q.size == 0 {
		return
	}
	var zero T
	v = q.ring[q.head]
	q.ring[q.head] = zero
	q.head = (q.head + 1) & q.mask()
	q.size--
	q.shrink()
	return v, true
}

// PopBack removes and returns the tail element.
func (q *Deque[T]) PopBack() (v T, ok bool) {
	if q.size == 0 {
		return
	}
	var zero T
	i := (q.head + q.size - 1) & q.mask()
	v = q.ring[i]
	q.ring[i] = zero
	q.size--
	q.shrink()
	return v, true
}

// Front returns the head element without removing it.
func (q *Deque[T]) Front() (v T, ok bool) {
	if q.size == 0 {
		return
	}
	return q.ring[q.head], true
}

// Back returns the tail element without removing it.
func (q *Deque[T]) Back() (v T, ok bool) {
	if q.size == 0 {
		return
	}
	return q.ring[(q.head+q.size-1)&q.mask()], true
}

// Len returns the number of elements.
func (q *Deque[T]) Len() int {
	return q.size
}

// Clear removes all elements, keeping the ring.
func (q *Deque[T]) Clear() {
	clear(q.ring)
	q.head = 0
	q.size = 0
}

// Trim shrinks the ring to the smallest size holding the current elements.
func (q *Deque[T]) Trim() {
	n := nextPowOfTwo(q.size)
	if n < minDequeSize {
		n = minDequeSize
	}
	if n < len(q.ring) {
		q.resize(n)
	}
}
