package iso

import ()

import (
	"github.com/BiocomputeLab/mctools/graph"
)

// Isomorphic reports whether a and b are the same graph up to a
// relabeling of the vertices. Both graphs should be simple.
func Isomorphic(a, b *graph.Graph) bool {
	if a.Directed != b.Directed || a.N != b.N || len(a.E) != len(b.E) {
		return false
	}
	for _, mi := IterMappings(a, b)(); mi != nil; _, mi = mi() {
		return true
	}
	return false
}

// AutomorphismCount counts the symmetries of p: the number of ways p
// maps onto itself. Every graph has at least one (the identity). This
// is the factor by which the raw subisomorphism list over-counts
// distinct instances of p.
func AutomorphismCount(p *graph.Graph) int {
	return CountSubisomorphisms(p, p)
}
