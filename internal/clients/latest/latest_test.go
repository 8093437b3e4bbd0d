package latest

import "testing"

func TestSupersededFetchIsRejected(t *testing.T) {
	t.Parallel()
	var g Guard

	slow := g.Begin()
	fast := g.Begin()

	if !g.Accept(fast) {
		t.Fatal("newest fetch should be accepted")
	}
	if g.Accept(slow) {
		t.Fatal("superseded fetch must be rejected")
	}
}

func TestAcceptIsIdempotentPerGeneration(t *testing.T) {
	t.Parallel()
	var g Guard

	gen := g.Begin()
	if !g.Accept(gen) {
		t.Fatal("first accept should succeed")
	}
	if g.Accept(gen) {
		t.Fatal("a generation can only be applied once")
	}
}

func TestSequentialFetches(t *testing.T) {
	t.Parallel()
	var g Guard

	for i := 0; i < 3; i++ {
		gen := g.Begin()
		if !g.Accept(gen) {
			t.Fatalf("fetch %d should be accepted", i)
		}
	}
}
