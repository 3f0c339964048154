package coll

import (
	"testing"
)

func TestNextPowOfTwo(t *testing.T) {
	cases := [][2]int{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {1000, 1024}}
	for _, c := range cases {
		if got := nextPowOfTwo(c[0]); got != c[1] {
			t.Fatalf("nextPowOfTwo(%v) = %v, want %v", c[0], got, c[1])
		}
	}
}

func TestArraySize(t *testing.T) {
	if got := arraySize(0, 0.75); got != 2 {
		t.Fatalf("bad array size: %v", got)
	}
	if got := arraySize(3, 0.75); got != 4 {
		t.Fatalf("bad array size: %v", got)
	}
	if got := arraySize(16, 0.75); got != 32 {
		t.Fatalf("bad array size: %v", got)
	}
}

func TestMaxFill(t *testing.T) {
	if got := maxFill(16, 0.75); got != 12 {
		t.Fatalf("bad max fill: %v", got)
	}
	// always at least one free slot
	if got := maxFill(2, 0.99); got != 1 {
		t.Fatalf("bad max fill: %v", got)
	}
}

func TestMix64Avalanche(t *testing.T) {
	// sequential inputs must not map to sequential outputs
	seen := make(map[uint64]bool)
	for i := uint64(0); i < 1000; i++ {
		seen[mix64(i)&1023] = true
	}
	// with decent mixing, 1000 sequential keys spread over most of 1024 buckets
	if len(seen) < 500 {
		t.Fatalf("poor mixing: %v distinct buckets", len(seen))
	}
}

func TestDefaultHasherKinds(t *testing.T) {
	type myInt int32
	type myString string

	hi := defaultHasher[int]()
	if hi(1) == hi(2) {
		t.Fatal("distinct ints should hash differently")
	}
	h8 := defaultHasher[uint8]()
	if h8(1) != 1 {
		t.Fatalf("bad hash: %v", h8(1))
	}
	hm := defaultHasher[myInt]()
	if hm(7) != 7 {
		t.Fatalf("named integer types should hash their value: %v", hm(7))
	}
	hs := defaultHasher[string]()
	if hs("a") == hs("b") {
		t.Fatal("distinct strings should hash differently")
	}
	hms := defaultHasher[myString]()
	if hms("a") != hs("a") {
		t.Fatal("named string types should hash like string")
	}
	hb := defaultHasher[bool]()
	if hb(true) == hb(false) {
		t.Fatal("bools should hash differently")
	}
	type point struct{ x, y int }
	hp := defaultHasher[point]()
	if hp(point{1, 2}) == hp(point{2, 1}) {
		t.Fatal("distinct structs should hash differently")
	}
}
