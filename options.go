package coll

// Option is a configuration option for NewMap, NewSet and ReadMap.
type Option[K comparable, V any] interface {
	applyToMap(*Map[K, V])
}

// WithCapacity sizes the table for an expected number of elements. The
// actual table size will be the least power of two greater than
// expected/loadFactor; the table never shrinks below it.
func WithCapacity[K comparable, V any](expected int) Option[K, V] {
	return &capacityOption[K, V]{expected: expected}
}

type capacityOption[K comparable, V any] struct {
	expected int
}

func (o *capacityOption[K, V]) applyToMap(m *Map[K, V]) {
	m.expected = o.expected
}

// WithLoadFactor specifies the load factor of the table, in (0, 1).
func WithLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return &loadFactorOption[K, V]{f: f}
}

type loadFactorOption[K comparable, V any] struct {
	f float64
}

func (o *loadFactorOption[K, V]) applyToMap(m *Map[K, V]) {
	m.f = o.f
}

// WithHasher specifies the hash function for keys. Keys comparing equal must
// hash equal; the table mixes the result, so identity hashes are fine.
func WithHasher[K comparable, V any](hasher Hasher[K]) Option[K, V] {
	return &hasherOption[K, V]{hasher: hasher}
}

type hasherOption[K comparable, V any] struct {
	hasher Hasher[K]
}

func (o *hasherOption[K, V]) applyToMap(m *Map[K, V]) {
	m.hash = o.hasher
}
