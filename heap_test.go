package coll

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapOrderedPopSorted(t *testing.T) {
	h := NewOrderedHeap[int]()
	rng := rand.New(rand.NewSource(3))
	values := make([]int, 1000)
	for i := range values {
		values[i] = rng.Intn(10000)
		h.Push(values[i])
	}
	require.Equal(t, 1000, h.Len())

	sort.Ints(values)
	for _, want := range values {
		got, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok := h.Pop()
	require.False(t, ok)
}

func TestHeapPeek(t *testing.T) {
	h := NewOrderedHeap[string]()
	_, ok := h.Peek()
	require.False(t, ok)

	h.Push("b")
	h.Push("a")
	h.Push("c")

	v, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, 3, h.Len())
}

func TestHeapCustomComparator(t *testing.T) {
	// max-heap via a reversed comparator
	h := NewHeap[int](func(a, b int) int { return b - a })
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		h.Push(v)
	}
	want := []int{9, 6, 5, 4, 3, 2, 1, 1}
	for _, w := range want {
		got, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, w, got)
	}
}

func TestHeapFrom(t *testing.T) {
	items := []int{5, 3, 8, 1, 9, 2}
	h := HeapFrom(orderedCompare[int], items)
	require.Equal(t, len(items), h.Len())

	// heapify must not alias the input
	items[0] = -100
	got, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, 1, got)
}

func TestHeapDuplicates(t *testing.T) {
	h := NewOrderedHeap[int]()
	for i := 0; i < 10; i++ {
		h.Push(7)
	}
	for i := 0; i < 10; i++ {
		v, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, 7, v)
	}
}

func TestHeapClearTrim(t *testing.T) {
	h := NewOrderedHeap[int]()
	for i := 0; i < 1000; i++ {
		h.Push(i)
	}
	h.Clear()
	require.Equal(t, 0, h.Len())
	h.Push(3)
	h.Push(1)
	h.Trim()
	v, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 1, h.Len())
}

func TestHeapNilComparatorPanics(t *testing.T) {
	require.Panics(t, func() {
		NewHeap[int](nil)
	})
}
