package motif

import "testing"

import (
	"context"
	"math/rand"
)

func TestSynthesizeZeroTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := Synthesize(context.Background(), rng, 7, true, chainPattern(t), 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if g.N != 7 || len(g.E) != 0 {
		t.Errorf("target 0 should yield the empty graph got %v", g)
	}
}

func TestSynthesizeNoBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Synthesize(context.Background(), rng, 7, true, chainPattern(t), 1, 0)
	if err != ErrSynthesisFailed {
		t.Fatalf("expected ErrSynthesisFailed got %v", err)
	}
}

func TestSynthesizeHitsTarget(t *testing.T) {
	p := chainPattern(t)
	for seed := int64(1); seed <= 3; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := Synthesize(context.Background(), rng, 6, true, p, 1, 500)
		if err != nil {
			t.Fatalf("seed %v: %v", seed, err)
		}
		t.Log(g)
		if g.N != 6 {
			t.Errorf("seed %v: expected 6 nodes got %v", seed, g.N)
		}
		if count := Find(g, p).Count(); count != 1 {
			t.Errorf("seed %v: expected exactly 1 instance got %v", seed, count)
		}
	}
}

func TestSynthesizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rng := rand.New(rand.NewSource(1))
	_, err := Synthesize(ctx, rng, 6, true, chainPattern(t), 1, 500)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled got %v", err)
	}
}
