package coll

import (
	"testing"
)

func TestPair(t *testing.T) {
	p := MakePair(1, "one")
	if p.Left != 1 || p.Right != "one" {
		t.Fatalf("bad pair: %v", p)
	}
	if s := p.String(); s != "<1,one>" {
		t.Fatalf("bad string: %v", s)
	}
	q := p.Swapped()
	if q.Left != "one" || q.Right != 1 {
		t.Fatalf("bad swapped pair: %v", q)
	}
}
