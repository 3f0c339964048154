// Copyright 2024 The coll Authors. All rights reserved.

package coll

// ArrayMap is a map backed by two parallel slices scanned linearly. All
// operations are O(n); it beats Map only for a handful of entries, where it
// is smaller and has no hashing cost.
type ArrayMap[K comparable, V any] struct {
	keys []K
	vals []V
	size int
}

// NewArrayMap creates an empty array map with room for capacity entries.
func NewArrayMap[K comparable, V any](capacity int) *ArrayMap[K, V] {
	if capacity < 0 {
		panic("coll: capacity must be nonnegative")
	}
	return &ArrayMap[K, V]{
		keys: make([]K, capacity),
		vals: make([]V, capacity),
	}
}

// ArrayMapOf creates an array map backed by the given parallel slices. The
// slices are not copied; keys must not contain duplicates. Panics if the
// slices have different lengths.
func ArrayMapOf[K comparable, V any](keys []K, vals []V) *ArrayMap[K, V] {
	if len(keys) != len(vals) {
		panic("coll: key and value slices have different lengths")
	}
	return &ArrayMap[K, V]{keys: keys, vals: vals, size: len(keys)}
}

func (m *ArrayMap[K, V]) findKey(k K) int {
	for i := m.size - 1; i >= 0; i-- {
		if m.keys[i] == k {
			return i
		}
	}
	return -1
}

// Get returns the value for key.
func (m *ArrayMap[K, V]) Get(key K) (value V, ok bool) {
	i := m.findKey(key)
	if i < 0 {
		return
	}
	return m.vals[i], true
}

// GetOrDefault returns the value for key, or def if key is absent.
func (m *ArrayMap[K, V]) GetOrDefault(key K, def V) V {
	i := m.findKey(key)
	if i < 0 {
		return def
	}
	return m.vals[i]
}

// Contains reports whether key is in the map.
func (m *ArrayMap[K, V]) Contains(key K) bool {
	return m.findKey(key) >= 0
}

// Put inserts a key value pair and returns the previous value. Capacity
// doubles on overflow.
func (m *ArrayMap[K, V]) Put(key K, value V) (prev V, replaced bool) {
	i := m.findKey(key)
	if i >= 0 {
		prev = m.vals[i]
		m.vals[i] = value
		return prev, true
	}
	if m.size == len(m.keys) {
		n := m.size * 2
		if n == 0 {
			n = 2
		}
		keys := make([]K, n)
		vals := make([]V, n)
		copy(keys, m.keys)
		copy(vals, m.vals)
		m.keys, m.vals = keys, vals
	}
	m.keys[m.size] = key
	m.vals[m.size] = value
	m.size++
	return
}

// Remove deletes key and returns the removed value. The tail is shifted
// left, preserving insertion order of the remaining entries.
func (m *ArrayMap[K, V]) Remove(key K) (prev V, removed bool) {
	i := m.findKey(key)
	if i < 0 {
		return
	}
	prev = m.vals[i]
	copy(m.keys[i:], m.keys[i+1:m.size])
	copy(m.vals[i:], m.vals[i+1:m.size])
	m.size--
	var zerok K
	var zerov V
	m.keys[m.size] = zerok
	m.vals[m.size] = zerov
	return prev, true
}

// Len returns the number of entries.
func (m *ArrayMap[K, V]) Len() int {
	return m.size
}

// Clear removes all entries, keeping the backing slices.
func (m *ArrayMap[K, V]) Clear() {
	clear(m.keys[:m.size])
	clear(m.vals[:m.size])
	m.size = 0
}

// Range calls f for each entry in insertion order until f returns false.
func (m *ArrayMap[K, V]) Range(f func(key K, value V) bool) {
	for i := 0; i < m.size; i++ {
		if !f(m.keys[i], m.vals[i]) {
			return
		}
	}
}

// AppendKeys appends all keys to keys and returns the result.
func (m *ArrayMap[K, V]) AppendKeys(keys []K) []K {
	return append(keys, m.keys[:m.size]...)
}

// Entries returns all entries as pairs, in insertion order.
func (m *ArrayMap[K, V]) Entries() []Pair[K, V] {
	entries := make([]Pair[K, V], 0, m.size)
	for i := 0; i < m.size; i++ {
		entries = append(entries, Pair[K, V]{m.keys[i], m.vals[i]})
	}
	return entries
}
