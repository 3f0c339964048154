// Copyright 2024 The coll Authors. All rights reserved.

package coll

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WriteMap writes m to w as a little-endian uint64 entry count followed by a
// flat sequence of key/value records. Keys and values must be fixed-size
// types in the encoding/binary sense; anything else returns an error before
// any entry is written. Iteration order is unspecified.
func WriteMap[K comparable, V any](w io.Writer, m *Map[K, V]) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, uint64(m.Len())); err != nil {
		return fmt.Errorf("coll: write count: %w", err)
	}
	var err error
	m.Range(func(k K, v V) bool {
		if err = binary.Write(bw, binary.LittleEndian, k); err != nil {
			err = fmt.Errorf("coll: write key: %w", err)
			return false
		}
		if err = binary.Write(bw, binary.LittleEndian, v); err != nil {
			err = fmt.Errorf("coll: write value: %w", err)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// ReadMap reads a map written by WriteMap. Options configure the resulting
// map; its capacity is sized from the stream's entry count.
func ReadMap[K comparable, V any](r io.Reader, options ...Option[K, V]) (*Map[K, V], error) {
	br := bufio.NewReader(r)
	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("coll: read count: %w", err)
	}
	if count > maxArraySize {
		return nil, fmt.Errorf("coll: entry count %d out of range", count)
	}
	m := NewMap[K, V](options...)
	// Presize for count entries, but refuse counts whose table would blow the
	// size cap instead of letting arraySize panic on a corrupt stream.
	need := nextPowOfTwo(int(math.Ceil(float64(count) / m.f)))
	if need > maxArraySize {
		return nil, fmt.Errorf("coll: entry count %d out of range", count)
	}
	if need > m.n {
		m.rehash(need)
	}
	for i := uint64(0); i < count; i++ {
		var k K
		var v V
		if err := binary.Read(br, binary.LittleEndian, &k); err != nil {
			return nil, fmt.Errorf("coll: read key %d: %w", i, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &v); err != nil {
			return nil, fmt.Errorf("coll: read value %d: %w", i, err)
		}
		m.Put(k, v)
	}
	return m, nil
}
