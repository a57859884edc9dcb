package motif

import "testing"
import "github.com/stretchr/testify/assert"

import ()

import (
	"github.com/BiocomputeLab/mctools/graph"
	"github.com/BiocomputeLab/mctools/iso"
)

func chainPattern(t *testing.T) *Pattern {
	b := graph.Build(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	return NewPattern(b.Build())
}

// twoChains is the canonical small host: s -> a -> b and s -> c -> d,
// two chain instances sharing the source vertex.
func twoChains(t *testing.T) *graph.Graph {
	b := graph.Build(5, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 3)
	b.AddEdge(3, 4)
	return b.Build()
}

func TestPatternRot(t *testing.T) {
	assert.Equal(t, 1, chainPattern(t).Rot)
	cb := graph.Build(3, true)
	cb.AddEdge(0, 1)
	cb.AddEdge(1, 2)
	cb.AddEdge(2, 0)
	assert.Equal(t, 3, NewPattern(cb.Build()).Rot)
}

func TestFindTwoChains(t *testing.T) {
	in := Find(twoChains(t), chainPattern(t))
	t.Log(in.Raw)
	assert.Equal(t, 2, in.Valid)
	assert.Equal(t, 2, in.Count())
	assert.Equal(t, 2, len(in.Unique))
}

func TestCleanSpurious(t *testing.T) {
	// the cycle hosts the chain on a vertex set carrying an extra
	// edge; every directed match there is spurious
	b := graph.Build(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	in := Find(b.Build(), chainPattern(t))
	t.Log(in.Raw)
	if len(in.Raw) != 3 {
		t.Fatalf("expected 3 raw mappings got %v", len(in.Raw))
	}
	assert.Equal(t, 0, in.Valid)
	assert.Equal(t, 0, len(in.Unique))
	for _, m := range in.Raw {
		if m[0] != -1 {
			t.Errorf("mapping %v should carry the invalid sentinel", m)
		}
	}
}

func TestUniqueCollapsesSymmetry(t *testing.T) {
	// an undirected path pattern matches each instance twice (once
	// per direction); unique keeps one
	pb := graph.Build(3, false)
	pb.AddEdge(0, 1)
	pb.AddEdge(1, 2)
	p := NewPattern(pb.Build())
	assert.Equal(t, 2, p.Rot)
	hb := graph.Build(3, false)
	hb.AddEdge(0, 1)
	hb.AddEdge(1, 2)
	in := Find(hb.Build(), p)
	t.Log(in.Raw)
	assert.Equal(t, 2, in.Valid)
	assert.Equal(t, 1, in.Count())
	assert.Equal(t, 1, len(in.Unique))
}

func TestUniqueOrderInvariant(t *testing.T) {
	in := Find(twoChains(t), chainPattern(t))
	forward := unique(in.P, in.Raw)
	reversed := make(iso.Mappings, len(in.Raw))
	for i, m := range in.Raw {
		reversed[len(in.Raw)-1-i] = m
	}
	backward := unique(in.P, reversed)
	if len(forward) != len(backward) {
		t.Errorf("unique count depends on mapping order: %v vs %v", len(forward), len(backward))
	}
}

func TestFindSimplifiesHost(t *testing.T) {
	b := graph.Build(5, true)
	b.AddEdge(0, 1)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 2)
	b.AddEdge(0, 3)
	b.AddEdge(3, 4)
	in := Find(b.Build(), chainPattern(t))
	assert.Equal(t, 2, in.Count(), "duplicates and self loops must not create instances")
}
