package motif

import "testing"
import "github.com/stretchr/testify/assert"

import ()

import (
	"github.com/BiocomputeLab/mctools/graph"
)

func TestExtractTwoChains(t *testing.T) {
	sub, nodeMap := Extract(twoChains(t), chainPattern(t))
	t.Log(sub, nodeMap)
	assert.Equal(t, 5, sub.N)
	assert.Equal(t, 4, len(sub.E))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, nodeMap)
}

func TestExtractDropsOutsiders(t *testing.T) {
	// the two chains plus a lone edge off to the side; the lone edge
	// is not part of any instance
	b := graph.Build(7, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 3)
	b.AddEdge(3, 4)
	b.AddEdge(5, 6)
	sub, nodeMap := Extract(b.Build(), chainPattern(t))
	t.Log(sub, nodeMap)
	if len(nodeMap) != 5 {
		t.Fatalf("expected 5 extracted nodes got %v", nodeMap)
	}
	for _, orig := range nodeMap {
		if orig == 5 || orig == 6 {
			t.Errorf("vertex %v is not part of any instance", orig)
		}
	}
	assert.Equal(t, 4, len(sub.E), "the stray edge must not leak into the extract")
}

func TestExtractEmpty(t *testing.T) {
	b := graph.Build(4, true)
	b.AddEdge(0, 1)
	sub, nodeMap := Extract(b.Build(), chainPattern(t))
	assert.Equal(t, 0, sub.N)
	assert.Equal(t, 0, len(nodeMap))
}
