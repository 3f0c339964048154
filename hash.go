// Copyright 2024 The coll Authors. All rights reserved.

package coll

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultInitialSize is the default expected number of elements of a table.
	DefaultInitialSize = 16
	// DefaultLoadFactor is the default load factor of a table.
	DefaultLoadFactor = 0.75
	// maxArraySize is the largest permitted table size.
	maxArraySize = 1 << 30
)

// Hasher maps a key to a 64-bit hash. The table applies an avalanche mix on
// top of it, so a Hasher only needs to be injective-ish, not well spread.
type Hasher[K comparable] func(K) uint64

// mix64 is the 64-bit finalizer based on the golden ratio, used to
// decorrelate clustered keys from slot locality before masking.
func mix64(x uint64) uint64 {
	h := x * 0x9E3779B97F4A7C15
	h ^= h >> 32
	return h ^ (h >> 16)
}

func nextPowOfTwo(n int) int {
	k := 1
	for k < n {
		k = k * 2
	}
	return k
}

// arraySize returns the least power of two no smaller than 2 that keeps the
// load factor below f with expected elements.
func arraySize(expected int, f float64) int {
	s := nextPowOfTwo(int(math.Ceil(float64(expected) / f)))
	if s < 2 {
		s = 2
	}
	if s > maxArraySize {
		panic("coll: table size exceeds 1<<30")
	}
	return s
}

// maxFill returns the number of elements a table of size n can hold before a
// grow rehash. Always leaves at least one free slot so probes terminate.
func maxFill(n int, f float64) int {
	m := int(math.Ceil(float64(n) * f))
	if m > n-1 {
		m = n - 1
	}
	return m
}

// defaultHasher returns a hasher for K's underlying kind: integers and floats
// hash their raw bits, strings go through xxhash, everything else falls back
// to formatting. Plug a Hasher via WithHasher for composite keys on hot paths.
func defaultHasher[K comparable]() Hasher[K] {
	var zero K
	t := reflect.TypeOf(zero)
	if t == nil {
		// K is an interface type; hash the dynamic value's text form.
		return func(k K) uint64 { return xxhash.Sum64String(fmt.Sprint(k)) }
	}
	switch t.Kind() {
	case reflect.Int8, reflect.Uint8, reflect.Bool:
		return func(k K) uint64 { return uint64(*(*uint8)(unsafe.Pointer(&k))) }
	case reflect.Int16, reflect.Uint16:
		return func(k K) uint64 { return uint64(*(*uint16)(unsafe.Pointer(&k))) }
	case reflect.Int32, reflect.Uint32:
		return func(k K) uint64 { return uint64(*(*uint32)(unsafe.Pointer(&k))) }
	case reflect.Int64, reflect.Uint64:
		return func(k K) uint64 { return *(*uint64)(unsafe.Pointer(&k)) }
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		if t.Size() == 8 {
			return func(k K) uint64 { return *(*uint64)(unsafe.Pointer(&k)) }
		}
		return func(k K) uint64 { return uint64(*(*uint32)(unsafe.Pointer(&k))) }
	case reflect.Float32:
		return func(k K) uint64 {
			f := *(*float32)(unsafe.Pointer(&k))
			if f == 0 {
				f = 0 // collapse -0 and +0, which compare equal
			}
			return uint64(math.Float32bits(f))
		}
	case reflect.Float64:
		return func(k K) uint64 {
			f := *(*float64)(unsafe.Pointer(&k))
			if f == 0 {
				f = 0
			}
			return math.Float64bits(f)
		}
	case reflect.String:
		return func(k K) uint64 { return xxhash.Sum64String(*(*string)(unsafe.Pointer(&k))) }
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		return func(k K) uint64 { return uint64(*(*uintptr)(unsafe.Pointer(&k))) }
	default:
		return func(k K) uint64 { return xxhash.Sum64String(fmt.Sprintf("%v", k)) }
	}
}
