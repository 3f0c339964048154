// Copyright 2024 The coll Authors. All rights reserved.

package coll

import (
	"sync"
)

// SyncMap wraps a Map with a single mutex serializing every call. There is
// no finer-grained locking; it is the opt-in coarse synchronization for maps
// shared across goroutines.
type SyncMap[K comparable, V any] struct {
	mu sync.Mutex
	m  *Map[K, V]
}

// Synchronized wraps m. The map must not be used directly afterwards.
func Synchronized[K comparable, V any](m *Map[K, V]) *SyncMap[K, V] {
	return &SyncMap[K, V]{m: m}
}

func (s *SyncMap[K, V]) Get(key K) (value V, ok bool) {
	s.mu.Lock()
	value, ok = s.m.Get(key)
	s.mu.Unlock()
	return
}

func (s *SyncMap[K, V]) GetOrDefault(key K, def V) V {
	s.mu.Lock()
	v := s.m.GetOrDefault(key, def)
	s.mu.Unlock()
	return v
}

func (s *SyncMap[K, V]) Contains(key K) bool {
	s.mu.Lock()
	ok := s.m.Contains(key)
	s.mu.Unlock()
	return ok
}

func (s *SyncMap[K, V]) Put(key K, value V) (prev V, replaced bool) {
	s.mu.Lock()
	prev, replaced = s.m.Put(key, value)
	s.mu.Unlock()
	return
}

func (s *SyncMap[K, V]) PutIfAbsent(key K, value V) (curr V, loaded bool) {
	s.mu.Lock()
	curr, loaded = s.m.PutIfAbsent(key, value)
	s.mu.Unlock()
	return
}

func (s *SyncMap[K, V]) Replace(key K, value V) (prev V, replaced bool) {
	s.mu.Lock()
	prev, replaced = s.m.Replace(key, value)
	s.mu.Unlock()
	return
}

func (s *SyncMap[K, V]) Remove(key K) (prev V, removed bool) {
	s.mu.Lock()
	prev, removed = s.m.Remove(key)
	s.mu.Unlock()
	return
}

func (s *SyncMap[K, V]) Len() int {
	s.mu.Lock()
	n := s.m.Len()
	s.mu.Unlock()
	return n
}

func (s *SyncMap[K, V]) Clear() {
	s.mu.Lock()
	s.m.Clear()
	s.mu.Unlock()
}

// Range holds the lock for the whole walk; f must not call back into the
// wrapper.
func (s *SyncMap[K, V]) Range(f func(key K, value V) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Range(f)
}

func (s *SyncMap[K, V]) AppendKeys(keys []K) []K {
	s.mu.Lock()
	keys = s.m.AppendKeys(keys)
	s.mu.Unlock()
	return keys
}

func (s *SyncMap[K, V]) AppendValues(values []V) []V {
	s.mu.Lock()
	values = s.m.AppendValues(values)
	s.mu.Unlock()
	return values
}

func (s *SyncMap[K, V]) Entries() []Pair[K, V] {
	s.mu.Lock()
	entries := s.m.Entries()
	s.mu.Unlock()
	return entries
}

func (s *SyncMap[K, V]) Trim() {
	s.mu.Lock()
	s.m.Trim()
	s.mu.Unlock()
}

func (s *SyncMap[K, V]) TrimTo(n int) bool {
	s.mu.Lock()
	ok := s.m.TrimTo(n)
	s.mu.Unlock()
	return ok
}

// ReadOnlyMap is a read-only view of a Map. Mutators are simply not in its
// method set, so immutability is checked at compile time. The view reflects
// later changes to the underlying map.
type ReadOnlyMap[K comparable, V any] struct {
	m *Map[K, V]
}

// Unmodifiable returns a read-only view of m.
func Unmodifiable[K comparable, V any](m *Map[K, V]) ReadOnlyMap[K, V] {
	return ReadOnlyMap[K, V]{m: m}
}

// EmptyMap returns a read-only view with no entries.
func EmptyMap[K comparable, V any]() ReadOnlyMap[K, V] {
	return ReadOnlyMap[K, V]{m: NewMap[K, V](WithCapacity[K, V](0))}
}

// SingletonMap returns a read-only view holding exactly one entry.
func SingletonMap[K comparable, V any](key K, value V) ReadOnlyMap[K, V] {
	m := NewMap[K, V](WithCapacity[K, V](1))
	m.Put(key, value)
	return ReadOnlyMap[K, V]{m: m}
}

func (r ReadOnlyMap[K, V]) Get(key K) (value V, ok bool) {
	return r.m.Get(key)
}

func (r ReadOnlyMap[K, V]) GetOrDefault(key K, def V) V {
	return r.m.GetOrDefault(key, def)
}

func (r ReadOnlyMap[K, V]) Contains(key K) bool {
	return r.m.Contains(key)
}

func (r ReadOnlyMap[K, V]) Len() int {
	return r.m.Len()
}

func (r ReadOnlyMap[K, V]) Range(f func(key K, value V) bool) {
	r.m.Range(f)
}

func (r ReadOnlyMap[K, V]) AppendKeys(keys []K) []K {
	return r.m.AppendKeys(keys)
}

func (r ReadOnlyMap[K, V]) AppendValues(values []V) []V {
	return r.m.AppendValues(values)
}

func (r ReadOnlyMap[K, V]) Entries() []Pair[K, V] {
	return r.m.Entries()
}
