// Copyright 2024 The coll Authors. All rights reserved.

package coll

import (
	"golang.org/x/exp/constraints"
)

// Heap is a priority queue over a flat slice forming a binary heap. The
// element with the smallest order is popped first. The backing slice grows as
// needed and never shrinks automatically; use Trim.
type Heap[T any] struct {
	data []T
	cmp  func(a, b T) int
}

// NewHeap creates an empty heap ordered by cmp, which must return a negative
// number, zero, or a positive number as a sorts before, equal to, or after b.
func NewHeap[T any](cmp func(a, b T) int) *Heap[T] {
	if cmp == nil {
		panic("coll: nil comparator")
	}
	return &Heap[T]{cmp: cmp}
}

// NewOrderedHeap creates an empty heap using the natural order of T.
func NewOrderedHeap[T constraints.Ordered]() *Heap[T] {
	return NewHeap[T](orderedCompare[T])
}

func orderedCompare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// HeapFrom creates a heap from items, which is copied and heapified in
// O(len(items)), cheaper than pushing one by one.
func HeapFrom[T any](cmp func(a, b T) int, items []T) *Heap[T] {
	h := NewHeap[T](cmp)
	h.data = append(h.data, items...)
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.downHeap(i)
	}
	return h
}

// Push adds an element.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.upHeap(len(h.data) - 1)
}

// Pop removes and returns the first element.
func (h *Heap[T]) Pop() (v T, ok bool) {
	n := len(h.data)
	if n == 0 {
		return
	}
	v = h.data[0]
	h.data[0] = h.data[n-1]
	var zero T
	h.data[n-1] = zero
	h.data = h.data[:n-1]
	if n > 1 {
		h.downHeap(0)
	}
	return v, true
}

// Peek returns the first element without removing it.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return
	}
	return h.data[0], true
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Clear removes all elements, keeping the backing slice.
func (h *Heap[T]) Clear() {
	clear(h.data)
	h.data = h.data[:0]
}

// Trim reallocates the backing slice to the exact current size.
func (h *Heap[T]) Trim() {
	if len(h.data) == cap(h.data) {
		return
	}
	data := make([]T, len(h.data))
	copy(data, h.data)
	h.data = data
}

// upHeap moves the element at i toward the root until its parent sorts
// before or equal to it. The element is held aside while parents slide down.
func (h *Heap[T]) upHeap(i int) {
	e := h.data[i]
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.data[parent], e) <= 0 {
			break
		}
		h.data[i] = h.data[parent]
		i = parent
	}
	h.data[i] = e
}

// downHeap moves the element at i toward the leaves, always descending into
// the smaller child.
func (h *Heap[T]) downHeap(i int) {
	e := h.data[i]
	n := len(h.data)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if r := child + 1; r < n && h.cmp(h.data[r], h.data[child]) < 0 {
			child = r
		}
		if h.cmp(e, h.data[child]) <= 0 {
			break
		}
		h.data[i] = h.data[child]
		i = child
	}
	h.data[i] = e
}
