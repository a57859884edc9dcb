package iso

import "testing"
import "github.com/stretchr/testify/assert"

import ()

import (
	"github.com/BiocomputeLab/mctools/graph"
)

func chain3(t *testing.T) *graph.Graph {
	b := graph.Build(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	return b.Build()
}

func cycle3(t *testing.T) *graph.Graph {
	b := graph.Build(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	return b.Build()
}

func triangle(t *testing.T) *graph.Graph {
	b := graph.Build(3, false)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	return b.Build()
}

func TestAutomorphismCounts(t *testing.T) {
	assert.Equal(t, 1, AutomorphismCount(chain3(t)), "a directed chain is rigid")
	assert.Equal(t, 3, AutomorphismCount(cycle3(t)), "a directed 3 cycle rotates")
	assert.Equal(t, 6, AutomorphismCount(triangle(t)), "a triangle has the full symmetric group")
}

func TestSubisomorphismsChainInTwoChains(t *testing.T) {
	// s -> a -> b and s -> c -> d
	b := graph.Build(5, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 3)
	b.AddEdge(3, 4)
	host := b.Build()
	maps := Subisomorphisms(host, chain3(t))
	for _, m := range maps {
		t.Log(m)
	}
	if len(maps) != 2 {
		t.Fatalf("expected 2 mappings got %v", len(maps))
	}
	for _, m := range maps {
		if !host.HasEdge(m[0], m[1]) || !host.HasEdge(m[1], m[2]) {
			t.Errorf("mapping %v does not preserve the chain", m)
		}
	}
}

func TestSubisomorphismsHonorDirection(t *testing.T) {
	// a <- s -> b has no directed 2 chain
	b := graph.Build(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	host := b.Build()
	if n := CountSubisomorphisms(host, chain3(t)); n != 0 {
		t.Errorf("expected 0 mappings got %v", n)
	}
}

func TestSubisomorphismsAreMonomorphisms(t *testing.T) {
	// the 3 cycle hosts the chain once per rotation: matches may land
	// on vertex sets carrying extra edges
	host := cycle3(t)
	if n := CountSubisomorphisms(host, chain3(t)); n != 3 {
		t.Errorf("expected 3 mappings got %v", n)
	}
}

func TestDirectednessMismatch(t *testing.T) {
	if n := CountSubisomorphisms(triangle(t), chain3(t)); n != 0 {
		t.Errorf("expected no mappings across directedness got %v", n)
	}
}

func TestIsomorphicRelabel(t *testing.T) {
	b := graph.Build(3, true)
	b.AddEdge(2, 0)
	b.AddEdge(0, 1)
	relabeled := b.Build()
	if !Isomorphic(chain3(t), relabeled) {
		t.Error("relabelled chain should be isomorphic")
	}
	if Isomorphic(chain3(t), cycle3(t)) {
		t.Error("chain and cycle are not isomorphic")
	}
}

func TestIsomorphicCountsEdges(t *testing.T) {
	a := chain3(t)
	b := graph.Build(3, true)
	b.AddEdge(0, 1)
	if Isomorphic(a, b.Build()) {
		t.Error("different edge counts can not be isomorphic")
	}
}

func TestDisconnectedPattern(t *testing.T) {
	// a single edge plus an isolated vertex
	pb := graph.Build(3, true)
	pb.AddEdge(0, 1)
	pat := pb.Build()
	hb := graph.Build(3, true)
	hb.AddEdge(0, 1)
	host := hb.Build()
	// 0->1 with the spare on 2, and nothing else: 1 edge placement
	// times 1 free vertex
	if n := CountSubisomorphisms(host, pat); n != 1 {
		t.Errorf("expected 1 mapping got %v", n)
	}
}
