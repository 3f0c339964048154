// Copyright 2024 The coll Authors. All rights reserved.

package coll

// Set is a hash set backed by the same open-addressing table as Map.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty set.
func NewSet[K comparable](options ...Option[K, struct{}]) *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}](options...)}
}

// Add inserts key and reports whether the set changed.
func (s *Set[K]) Add(key K) bool {
	_, loaded := s.m.PutIfAbsent(key, struct{}{})
	return !loaded
}

// Remove deletes key and reports whether the set changed.
func (s *Set[K]) Remove(key K) bool {
	_, removed := s.m.Remove(key)
	return removed
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Len returns the number of elements.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// Clear removes all elements, keeping the table size.
func (s *Set[K]) Clear() {
	s.m.Clear()
}

// Range calls f for each element until f returns false.
func (s *Set[K]) Range(f func(key K) bool) {
	s.m.Range(func(k K, _ struct{}) bool { return f(k) })
}

// Append appends all elements to dst and returns the result.
func (s *Set[K]) Append(dst []K) []K {
	return s.m.AppendKeys(dst)
}

// Trim rehashes the set to the smallest table holding its elements.
func (s *Set[K]) Trim() {
	s.m.Trim()
}

// TrimTo rehashes the set to the smallest table sized for n elements,
// reporting false if the current elements do not fit.
func (s *Set[K]) TrimTo(n int) bool {
	return s.m.TrimTo(n)
}
