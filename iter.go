// Copyright 2024 The coll Authors. All rights reserved.

package coll

import (
	"math"
)

// MapIter is a cursor over a Map. It scans the table from the highest index
// downward and supports removing the current entry via Remove.
//
// Removing an entry shifts its probe chain backward, which can move a
// not-yet-visited entry from below the cursor to above it (a wrap around the
// table end). Such keys are queued and replayed after the main scan, so every
// surviving entry is yielded exactly once.
type MapIter[K comparable, V any] struct {
	m *Map[K, V]
	// next table index to examine; negative values index into wrapped
	pos int
	// index of the last returned entry, -1 if none or already removed,
	// math.MinInt if the last entry came from the wrapped queue
	last int
	// how many entries must still be returned
	c       int
	idx     int // table index of the current entry
	wrapped []K
}

// Iter returns a cursor positioned before the first entry. The map must not
// be mutated during iteration except through the cursor itself.
func (m *Map[K, V]) Iter() *MapIter[K, V] {
	return &MapIter[K, V]{m: m, pos: m.n, last: -1, c: m.size}
}

// Next advances to the next entry.
func (it *MapIter[K, V]) Next() bool {
	if it.c == 0 {
		return false
	}
	it.c--
	m := it.m
	for {
		it.pos--
		if it.pos < 0 {
			// Enumerating entries that wrapped during a removal. The key is
			// located by a fresh probe; it is guaranteed to be present.
			it.last = math.MinInt
			k := it.wrapped[-it.pos-1]
			p := m.slot(k)
			for !m.isUsed(p) || m.key[p] != k {
				p = (p + 1) & m.mask
			}
			it.idx = p
			return true
		}
		if m.isUsed(it.pos) {
			it.last = it.pos
			it.idx = it.pos
			return true
		}
	}
}

// Key returns the key of the current entry.
func (it *MapIter[K, V]) Key() K {
	return it.m.key[it.idx]
}

// Value returns the value of the current entry.
func (it *MapIter[K, V]) Value() V {
	return it.m.val[it.idx]
}

// SetValue replaces the value of the current entry in place.
func (it *MapIter[K, V]) SetValue(value V) {
	it.m.val[it.idx] = value
}

// Remove deletes the current entry. It panics if Next has not been called or
// the entry was already removed. Unlike Map.Remove it never shrinks the
// table, as that would interfere with the scan.
func (it *MapIter[K, V]) Remove() {
	if it.last == -1 {
		panic("coll: Remove without a preceding Next")
	}
	m := it.m
	if it.pos < 0 {
		// Removing a replayed wrapped entry; the main scan is over, so the
		// full removal path (including a possible shrink) is safe.
		m.Remove(it.wrapped[-it.pos-1])
		it.last = -1
		return
	}
	it.shiftKeys(it.last)
	m.size--
	it.last = -1
}

// shiftKeys is Map.shiftKeys plus bookkeeping: an entry moved from below the
// removal point across the table end would land in already-visited territory,
// so its key is queued for replay.
func (it *MapIter[K, V]) shiftKeys(pos int) {
	m := it.m
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
		if pos < last {
			it.wrapped = append(it.wrapped, m.key[pos])
		}
		m.key[last] = m.key[pos]
		m.val[last] = m.val[pos]
	}
}
