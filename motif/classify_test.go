package motif

import "testing"
import "github.com/stretchr/testify/assert"

import ()

import (
	"github.com/BiocomputeLab/mctools/graph"
	"github.com/BiocomputeLab/mctools/iso"
)

func TestCatalogueOverflow(t *testing.T) {
	b := graph.Build(5, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddEdge(3, 4)
	_, err := Catalogue(NewPattern(b.Build()))
	if err != ErrCatalogueOverflow {
		t.Fatalf("expected ErrCatalogueOverflow got %v", err)
	}
}

func TestCataloguePairwiseNonIsomorphic(t *testing.T) {
	types, err := Catalogue(chainPattern(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(types) == 0 {
		t.Fatal("expected a non empty catalogue for the chain")
	}
	for i, ti := range types {
		t.Log(i, ti)
		for j := i + 1; j < len(types); j++ {
			if iso.Isomorphic(ti, types[j]) {
				t.Errorf("catalogue entries %v and %v are isomorphic:\n%v\n%v", i, j, ti, types[j])
			}
		}
	}
}

func TestCatalogueEntriesAreFaithful(t *testing.T) {
	p := chainPattern(t)
	types, err := Catalogue(p)
	if err != nil {
		t.Fatal(err)
	}
	for i, ti := range types {
		// each entry holds exactly two instances of the pattern
		if count := Find(ti, p).Count(); count < 2 {
			t.Errorf("catalogue entry %v lost a pattern copy (count %v): %v", i, count, ti)
		}
	}
}

func TestClassifyTwoChains(t *testing.T) {
	cls, err := Classify(twoChains(t), chainPattern(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Log(cls.Counts, cls.Unclustered)
	total := 0
	for _, count := range cls.Counts {
		total += count
	}
	assert.Equal(t, 1, total, "one overlapping pair")
	assert.Equal(t, 0, cls.Unclustered)
	// the matched pair covers all five host vertices
	matched := -1
	for i, count := range cls.Counts {
		if count > 0 {
			matched = i
		}
	}
	if matched < 0 {
		t.Fatal("no bucket matched")
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, cls.Nodes[matched])
	if cls.Types[matched].N != 5 {
		t.Errorf("the 1-overlap merge of two chains has 5 vertices got %v", cls.Types[matched])
	}
}

func TestClassifyDisjointPairs(t *testing.T) {
	// two chains with nothing in common: one pair, unclustered
	b := graph.Build(6, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(3, 4)
	b.AddEdge(4, 5)
	cls, err := Classify(b.Build(), chainPattern(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, count := range cls.Counts {
		if count != 0 {
			t.Errorf("no pair should have been bucketed: %v", cls.Counts)
		}
	}
	assert.Equal(t, 1, cls.Unclustered)
}

func TestClassifyEveryPairLandsOnce(t *testing.T) {
	// shared middle vertex plus shared source: several pair shapes
	b := graph.Build(7, true)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 3)
	b.AddEdge(3, 4)
	b.AddEdge(5, 6)
	b.AddEdge(6, 0)
	host := b.Build()
	p := chainPattern(t)
	cls, err := Classify(host, p)
	if err != nil {
		t.Fatal(err)
	}
	in := Find(host, p)
	pairs := len(in.Unique) * (len(in.Unique) - 1) / 2
	total := cls.Unclustered
	for _, count := range cls.Counts {
		total += count
	}
	assert.Equal(t, pairs, total, "every pair lands in exactly one bucket")
}
