package graph

import (
	"fmt"
	"strings"
)

import ()

// Graph is a built (immutable) graph. Vertices are the integers
// [0, N). Edges may be directed or undirected depending on the
// Directed flag; an undirected edge is stored once, in the
// orientation it was added. Duplicate edges and self loops are legal
// (they arise transiently during null-model synthesis) and are
// removed by Simplify before any structural comparison.
//
// Adj[u] holds the ids of every edge touching u (both endpoints).
// Kids[u] holds the ids of edges with Src == u, Parents[u] the ids of
// edges with Targ == u. For undirected graphs Kids/Parents reflect
// storage orientation only; use Adj.
type Graph struct {
	N        int
	Directed bool
	E        Edges
	Adj      [][]int
	Kids     [][]int
	Parents  [][]int
}

type Edge struct {
	Src, Targ int
}

type Edges []Edge

func (g *Graph) Builder() *Builder {
	b := Build(g.N, g.Directed)
	b.E = make(Edges, len(g.E))
	copy(b.E, g.E)
	return b
}

// HasEdge reports whether an edge from src to targ exists. On
// undirected graphs orientation is ignored.
func (g *Graph) HasEdge(src, targ int) bool {
	for _, eid := range g.Kids[src] {
		if g.E[eid].Targ == targ {
			return true
		}
	}
	if !g.Directed {
		for _, eid := range g.Parents[src] {
			if g.E[eid].Src == targ {
				return true
			}
		}
	}
	return false
}

func (g *Graph) Degree(u int) int {
	return len(g.Adj[u])
}

func (g *Graph) InDegree(u int) int {
	if !g.Directed {
		return len(g.Adj[u])
	}
	return len(g.Parents[u])
}

func (g *Graph) OutDegree(u int) int {
	if !g.Directed {
		return len(g.Adj[u])
	}
	return len(g.Kids[u])
}

func (g *Graph) String() string {
	E := make([]string, 0, len(g.E))
	arrow := "->"
	if !g.Directed {
		arrow = "--"
	}
	for _, e := range g.E {
		E = append(E, fmt.Sprintf("[%v%v%v]", e.Src, arrow, e.Targ))
	}
	return fmt.Sprintf("{%v:%v}%v", g.N, len(g.E), strings.Join(E, ""))
}
