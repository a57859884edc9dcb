package graph

import ()

// Builder is a mutable graph under construction. Build produces the
// adjacency indexed Graph. Builders are cheap to clone, which is how
// the null-model synthesizer speculates on candidate graphs.
type Builder struct {
	N        int
	Directed bool
	E        Edges
}

func Build(n int, directed bool) *Builder {
	return &Builder{
		N:        n,
		Directed: directed,
		E:        make(Edges, 0, n),
	}
}

func (b *Builder) AddVertex() int {
	idx := b.N
	b.N++
	return idx
}

func (b *Builder) AddVertices(count int) {
	b.N += count
}

func (b *Builder) AddEdge(src, targ int) {
	if src < 0 || src >= b.N || targ < 0 || targ >= b.N {
		panic("AddEdge: endpoint out of range")
	}
	b.E = append(b.E, Edge{Src: src, Targ: targ})
}

func (b *Builder) Clone() *Builder {
	c := &Builder{
		N:        b.N,
		Directed: b.Directed,
		E:        make(Edges, len(b.E), len(b.E)+16),
	}
	copy(c.E, b.E)
	return c
}

func (b *Builder) Build() *Graph {
	g := &Graph{
		N:        b.N,
		Directed: b.Directed,
		E:        make(Edges, len(b.E)),
		Adj:      make([][]int, b.N),
		Kids:     make([][]int, b.N),
		Parents:  make([][]int, b.N),
	}
	copy(g.E, b.E)
	for i := range g.Adj {
		g.Adj[i] = make([]int, 0, 5)
		g.Kids[i] = make([]int, 0, 5)
		g.Parents[i] = make([]int, 0, 5)
	}
	for eid := range g.E {
		e := &g.E[eid]
		g.Adj[e.Src] = append(g.Adj[e.Src], eid)
		if e.Targ != e.Src {
			g.Adj[e.Targ] = append(g.Adj[e.Targ], eid)
		}
		g.Kids[e.Src] = append(g.Kids[e.Src], eid)
		g.Parents[e.Targ] = append(g.Parents[e.Targ], eid)
	}
	return g
}
