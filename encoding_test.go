package coll

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapEncodingRoundTrip(t *testing.T) {
	m := NewMap[int64, float64]()
	for i := int64(0); i < 1000; i++ {
		m.Put(i, float64(i)*0.5)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, m))

	got, err := ReadMap[int64, float64](&buf)
	require.NoError(t, err)
	require.Equal(t, m.Len(), got.Len())
	m.Range(func(k int64, v float64) bool {
		gv, ok := got.Get(k)
		require.True(t, ok)
		require.Equal(t, v, gv)
		return true
	})
}

func TestMapEncodingEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, NewMap[uint32, uint32]()))
	require.Equal(t, 8, buf.Len())

	got, err := ReadMap[uint32, uint32](&buf)
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
}

func TestMapEncodingOptions(t *testing.T) {
	m := NewMap[int32, int32]()
	m.Put(1, 2)
	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, m))

	got, err := ReadMap[int32, int32](&buf, WithLoadFactor[int32, int32](0.5))
	require.NoError(t, err)
	require.Equal(t, 0.5, got.f)
	v, ok := got.Get(1)
	require.True(t, ok)
	require.Equal(t, int32(2), v)
}

func TestMapEncodingNonFixedType(t *testing.T) {
	m := NewMap[string, int64]()
	m.Put("a", 1)
	var buf bytes.Buffer
	require.Error(t, WriteMap(&buf, m))
}

func TestMapEncodingTruncated(t *testing.T) {
	m := NewMap[int64, int64]()
	m.Put(1, 2)
	m.Put(3, 4)
	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, m))

	raw := buf.Bytes()
	_, err := ReadMap[int64, int64](bytes.NewReader(raw[:len(raw)-4]))
	require.Error(t, err)

	_, err = ReadMap[int64, int64](bytes.NewReader(raw[:3]))
	require.Error(t, err)
}

func TestMapEncodingCountOutOfRange(t *testing.T) {
	// counts within the raw size cap but whose table would exceed it must
	// error, not die in arraySize
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(1)<<30))
	_, err := ReadMap[int64, int64](&buf)
	require.ErrorContains(t, err, "out of range")

	buf.Reset()
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(1)<<40))
	_, err = ReadMap[int64, int64](&buf)
	require.ErrorContains(t, err, "out of range")

	// the bound tracks the configured load factor
	buf.Reset()
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(1)<<29+1))
	_, err = ReadMap[int64, int64](&buf, WithLoadFactor[int64, int64](0.5))
	require.ErrorContains(t, err, "out of range")
}
