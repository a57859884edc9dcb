package graph

import "testing"
import "github.com/stretchr/testify/assert"

import ()

func twoChains(t *testing.T) *Graph {
	// s -> a -> b and s -> c -> d
	b := Build(5, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 3)
	b.AddEdge(3, 4)
	return b.Build()
}

func TestBuildAdjacency(t *testing.T) {
	g := twoChains(t)
	t.Log(g)
	assert.Equal(t, 5, g.N)
	assert.Equal(t, 4, len(g.E))
	if g.OutDegree(0) != 2 {
		t.Errorf("expected out degree 2 at the source got %v", g.OutDegree(0))
	}
	if g.InDegree(0) != 0 {
		t.Errorf("expected in degree 0 at the source got %v", g.InDegree(0))
	}
	if g.Degree(1) != 2 {
		t.Errorf("expected degree 2 at an interior vertex got %v", g.Degree(1))
	}
}

func TestHasEdgeDirected(t *testing.T) {
	g := twoChains(t)
	if !g.HasEdge(0, 1) {
		t.Error("missing 0 -> 1")
	}
	if g.HasEdge(1, 0) {
		t.Error("directed graph should not have the reverse edge")
	}
}

func TestHasEdgeUndirected(t *testing.T) {
	b := Build(3, false)
	b.AddEdge(0, 1)
	g := b.Build()
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
		t.Error("undirected edges must match both ways")
	}
}

func TestSimplify(t *testing.T) {
	b := Build(3, true)
	b.AddEdge(0, 1)
	b.AddEdge(0, 1)
	b.AddEdge(1, 1)
	b.AddEdge(1, 2)
	g := b.Build().Simplify()
	t.Log(g)
	if len(g.E) != 2 {
		t.Errorf("expected 2 edges after simplify got %v", len(g.E))
	}
	if g.HasEdge(1, 1) {
		t.Error("self loop survived simplify")
	}
}

func TestSimplifyUndirectedReverse(t *testing.T) {
	b := Build(2, false)
	b.AddEdge(0, 1)
	b.AddEdge(1, 0)
	g := b.Build().Simplify()
	assert.Equal(t, 1, len(g.E), "an undirected edge and its reverse are duplicates")
}

func TestInducedEdgeCount(t *testing.T) {
	g := twoChains(t)
	if c := g.InducedEdgeCount([]int{0, 1, 2}); c != 2 {
		t.Errorf("expected 2 induced edges got %v", c)
	}
	if c := g.InducedEdgeCount([]int{1, 3}); c != 0 {
		t.Errorf("expected 0 induced edges got %v", c)
	}
}

func TestInduced(t *testing.T) {
	g := twoChains(t)
	sub := g.Induced([]int{0, 3, 4})
	t.Log(sub)
	assert.Equal(t, 3, sub.N)
	assert.Equal(t, 2, len(sub.E))
	if !sub.HasEdge(0, 1) || !sub.HasEdge(1, 2) {
		t.Errorf("induced subgraph lost the chain: %v", sub)
	}
}

func TestBuilderClone(t *testing.T) {
	b := Build(3, true)
	b.AddEdge(0, 1)
	c := b.Clone()
	c.AddEdge(1, 2)
	if len(b.E) != 1 {
		t.Errorf("clone mutated its parent: %v", b.E)
	}
	if len(c.E) != 2 {
		t.Errorf("clone lost an edge: %v", c.E)
	}
}
