// Package motif computes motif clustering statistics: how often the
// instances of a small pattern graph (3 or 4 vertices) share vertices
// inside a host graph, how that compares to a null model matched on
// node and instance count, and which canonical overlap shapes the
// observed instance pairs form.
package motif

import ()

import (
	"github.com/BiocomputeLab/mctools/graph"
	"github.com/BiocomputeLab/mctools/iso"
)

// A Pattern is a small motif graph plus its cached automorphism count
// (its rotational symmetry). The automorphism count is >= 1 and is
// the factor by which raw subisomorphism lists over-count distinct
// instances.
type Pattern struct {
	G   *graph.Graph
	Rot int
}

func NewPattern(g *graph.Graph) *Pattern {
	g = g.Simplify()
	return &Pattern{
		G:   g,
		Rot: iso.AutomorphismCount(g),
	}
}

// FromIsoclass builds the pattern for an isomorphism class index as
// produced by iso.Isoclass.
func FromIsoclass(size, class int, directed bool) (*Pattern, error) {
	g, err := iso.Isoclass(size, class, directed)
	if err != nil {
		return nil, err
	}
	return NewPattern(g), nil
}

func (p *Pattern) Size() int {
	return p.G.N
}
