package graph

import ()

// Simplify returns a copy of g with self loops and duplicate edges
// removed. On undirected graphs an edge and its reverse count as
// duplicates. Structural comparisons (subisomorphism enumeration,
// induced edge counts) assume a simplified graph.
func (g *Graph) Simplify() *Graph {
	b := Build(g.N, g.Directed)
	seen := make(map[Edge]bool, len(g.E))
	for _, e := range g.E {
		if e.Src == e.Targ {
			continue
		}
		key := e
		if !g.Directed && key.Targ < key.Src {
			key.Src, key.Targ = key.Targ, key.Src
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		b.AddEdge(e.Src, e.Targ)
	}
	return b.Build()
}

// InducedEdgeCount counts the edges of g with both endpoints in ids.
// Self loops count, duplicates count individually; callers that need
// pattern-exact counts simplify first.
func (g *Graph) InducedEdgeCount(ids []int) int {
	in := make(map[int]bool, len(ids))
	for _, id := range ids {
		in[id] = true
	}
	count := 0
	for _, e := range g.E {
		if in[e.Src] && in[e.Targ] {
			count++
		}
	}
	return count
}

// Induced extracts the subgraph of g induced on ids. Vertex i of the
// result corresponds to ids[i].
func (g *Graph) Induced(ids []int) *Graph {
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	b := Build(len(ids), g.Directed)
	for _, e := range g.E {
		s, hasS := pos[e.Src]
		t, hasT := pos[e.Targ]
		if hasS && hasT {
			b.AddEdge(s, t)
		}
	}
	return b.Build()
}
