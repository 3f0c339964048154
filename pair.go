package coll

import "fmt"

// Pair is a value pair. The zero value is the pair of zero values.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// MakePair returns the pair <left, right>.
func MakePair[L, R any](left L, right R) Pair[L, R] {
	return Pair[L, R]{Left: left, Right: right}
}

// Swapped returns the pair with sides exchanged.
func (p Pair[L, R]) Swapped() Pair[R, L] {
	return Pair[R, L]{Left: p.Right, Right: p.Left}
}

func (p Pair[L, R]) String() string {
	return fmt.Sprintf("<%v,%v>", p.Left, p.Right)
}
