// Copyright 2024 The coll Authors. All rights reserved.

// Package coll implements generic flat collections: an open-addressing hash
// map and set, an array-backed map, a binary heap and a ring deque, with
// coarse synchronization and read-only decorators.
package coll

import (
	"math"
)

// Map is a hash map with open addressing and linear probing.
//
// The table is a pair of flat slices plus an occupancy bitmap. It is filled
// up to the load factor and then doubled; if removals empty it below one
// fourth of the load factor it is halved, but never below its
// construction-time size. Deletion shifts the following probe chain backward
// instead of leaving tombstones. Note that Clear does not change the table
// size; use Trim for that.
//
// Map is not safe for concurrent use; wrap it with Synchronized if needed.
// NaN float keys behave as in the built-in map: they can be stored but never
// found again.
type Map[K comparable, V any] struct {
	key  []K
	val  []V
	used []uint64
	mask int
	n    int // current table size, a power of two
	minN int // we never shrink below this, the construction-time n
	size int
	// threshold after which we rehash, floor(n*f) capped at n-1
	maxFill  int
	f        float64
	hash     Hasher[K]
	expected int
}

// NewMap creates an empty map. By default the table is sized for
// DefaultInitialSize elements at DefaultLoadFactor; see WithCapacity,
// WithLoadFactor and WithHasher.
func NewMap[K comparable, V any](options ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{f: DefaultLoadFactor, expected: DefaultInitialSize}
	for _, o := range options {
		o.applyToMap(m)
	}
	if m.f <= 0 || m.f >= 1 {
		panic("coll: load factor must be greater than 0 and smaller than 1")
	}
	if m.expected < 0 {
		panic("coll: expected number of elements must be nonnegative")
	}
	if m.hash == nil {
		m.hash = defaultHasher[K]()
	}
	m.alloc(arraySize(m.expected, m.f))
	m.minN = m.n
	return m
}

func (m *Map[K, V]) alloc(n int) {
	m.n = n
	m.mask = n - 1
	m.maxFill = maxFill(n, m.f)
	m.key = make([]K, n)
	m.val = make([]V, n)
	m.used = make([]uint64, (n+63)>>6)
}

func (m *Map[K, V]) isUsed(pos int) bool {
	return m.used[uint(pos)>>6]&(1<<(uint(pos)&63)) != 0
}

func (m *Map[K, V]) setUsed(pos int) {
	m.used[uint(pos)>>6] |= 1 << (uint(pos) & 63)
}

func (m *Map[K, V]) clearUsed(pos int) {
	m.used[uint(pos)>>6] &^= 1 << (uint(pos) & 63)
}

// slot is the start of the probe sequence for k.
func (m *Map[K, V]) slot(k K) int {
	return int(mix64(m.hash(k)) & uint64(m.mask))
}

// find returns the index holding k, or -(insertion point + 1) on a miss.
func (m *Map[K, V]) find(k K) int {
	pos := m.slot(k)
	for m.isUsed(pos) {
		if m.key[pos] == k {
			return pos
		}
		pos = (pos + 1) & m.mask
	}
	return -(pos + 1)
}

func (m *Map[K, V]) insert(pos int, k K, v V) {
	m.key[pos] = k
	m.val[pos] = v
	m.setUsed(pos)
	m.size++
	if m.size-1 >= m.maxFill {
		m.rehash(arraySize(m.size+1, m.f))
	}
}

// Get returns the value for key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	pos := m.find(key)
	if pos < 0 {
		return
	}
	return m.val[pos], true
}

// GetOrDefault returns the value for key, or def if key is absent.
func (m *Map[K, V]) GetOrDefault(key K, def V) V {
	pos := m.find(key)
	if pos < 0 {
		return def
	}
	return m.val[pos]
}

// Contains reports whether key is in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key) >= 0
}

// Put inserts a key value pair and returns the previous value.
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced bool) {
	pos := m.find(key)
	if pos < 0 {
		m.insert(-pos-1, key, value)
		return
	}
	prev = m.val[pos]
	m.val[pos] = value
	return prev, true
}

// PutIfAbsent inserts a key value pair if key is absent and returns the
// current value.
func (m *Map[K, V]) PutIfAbsent(key K, value V) (curr V, loaded bool) {
	pos := m.find(key)
	if pos >= 0 {
		return m.val[pos], true
	}
	m.insert(-pos-1, key, value)
	return value, false
}

// Replace sets the value for key only if key is present.
func (m *Map[K, V]) Replace(key K, value V) (prev V, replaced bool) {
	pos := m.find(key)
	if pos < 0 {
		return
	}
	prev = m.val[pos]
	m.val[pos] = value
	return prev, true
}

// Remove deletes key and returns the removed value.
func (m *Map[K, V]) Remove(key K) (prev V, removed bool) {
	pos := m.find(key)
	if pos < 0 {
		return
	}
	prev = m.val[pos]
	m.removeEntry(pos)
	return prev, true
}

func (m *Map[K, V]) removeEntry(pos int) {
	m.size--
	m.shiftKeys(pos)
	if m.n > m.minN && m.size < m.maxFill/4 && m.n > DefaultInitialSize {
		m.rehash(m.n / 2)
	}
}

// shiftKeys closes the gap left at pos by moving the entries that follow in
// its probe chain backward, so probe sequences stay unbroken without
// tombstones. The three-way cyclic test decides whether an entry's home slot
// falls inside the gap.
func (m *Map[K, V]) shiftKeys(pos int) {
	var zerok K
	var zerov V
	for {
		last := pos
		pos = (last + 1) & m.mask
		for {
			if !m.isUsed(pos) {
				m.key[last] = zerok
				m.val[last] = zerov
				m.clearUsed(last)
				return
			}
			slot := m.slot(m.key[pos])
			if last <= pos {
				if last >= slot || slot > pos {
					break
				}
			} else if last >= slot && slot > pos {
				break
			}
			pos = (pos + 1) & m.mask
		}
		m.key[last] = m.key[pos]
		m.val[last] = m.val[pos]
	}
}

// rehash reallocates the table with size newN and reinserts every entry.
func (m *Map[K, V]) rehash(newN int) {
	key, val := m.key, m.val
	used := m.used
	n := m.n
	m.alloc(newN)
	for i := n - 1; i >= 0; i-- {
		if used[uint(i)>>6]&(1<<(uint(i)&63)) == 0 {
			continue
		}
		pos := m.slot(key[i])
		for m.isUsed(pos) {
			pos = (pos + 1) & m.mask
		}
		m.key[pos] = key[i]
		m.val[pos] = val[i]
		m.setUsed(pos)
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Clear removes all entries. The table size is unchanged; use Trim to
// release memory.
func (m *Map[K, V]) Clear() {
	if m.size == 0 {
		return
	}
	m.size = 0
	clear(m.key)
	clear(m.val)
	clear(m.used)
}

// Range calls f for each entry until f returns false. The map must not be
// mutated during the walk; use Iter to remove while iterating.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	for i := m.n - 1; i >= 0; i-- {
		if m.isUsed(i) && !f(m.key[i], m.val[i]) {
			return
		}
	}
}

// AppendKeys appends all keys to keys and returns the result.
func (m *Map[K, V]) AppendKeys(keys []K) []K {
	for i := m.n - 1; i >= 0; i-- {
		if m.isUsed(i) {
			keys = append(keys, m.key[i])
		}
	}
	return keys
}

// AppendValues appends all values to values and returns the result.
func (m *Map[K, V]) AppendValues(values []V) []V {
	for i := m.n - 1; i >= 0; i-- {
		if m.isUsed(i) {
			values = append(values, m.val[i])
		}
	}
	return values
}

// Entries returns all entries as pairs.
func (m *Map[K, V]) Entries() []Pair[K, V] {
	entries := make([]Pair[K, V], 0, m.size)
	for i := m.n - 1; i >= 0; i-- {
		if m.isUsed(i) {
			entries = append(entries, Pair[K, V]{m.key[i], m.val[i]})
		}
	}
	return entries
}

// Clone returns a copy of the map sharing nothing with the original.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := *m
	c.key = append([]K(nil), m.key...)
	c.val = append([]V(nil), m.val...)
	c.used = append([]uint64(nil), m.used...)
	return &c
}

// Trim rehashes the map to the smallest table that holds the current
// entries. Useful after removing most entries, since Clear and Remove keep
// at least the construction-time table.
func (m *Map[K, V]) Trim() {
	m.TrimTo(m.size)
}

// TrimTo rehashes the map to the smallest table sized for n elements.
// It reports false, doing nothing, if the current entries do not fit such a
// table. Trimming may shrink the table below its construction-time size.
func (m *Map[K, V]) TrimTo(n int) bool {
	l := nextPowOfTwo(int(math.Ceil(float64(n) / m.f)))
	if l < 2 {
		l = 2
	}
	if m.size > maxFill(l, m.f) {
		return false
	}
	if l >= m.n {
		return true
	}
	m.rehash(l)
	return true
}
