package iso

import ()

import (
	"github.com/timtadh/data-structures/heap"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/BiocomputeLab/mctools/graph"
)

// searchOp is one step of the backtracking search. A seed op places a
// pattern vertex on every available host vertex (component starts and
// isolated vertices); an edge op extends the partial assignment along
// one pattern edge.
type searchOp struct {
	seed int
	eid  int
}

// IterMappings enumerates every injective edge preserving mapping of
// pat into host, one mapping per pattern-vertex ordering (the raw
// subisomorphism list: a pattern with automorphisms yields each
// instance once per automorphism). The host must be simple; simplify
// first. Directedness of host and pattern must agree or no mappings
// are produced.
func IterMappings(host, pat *graph.Graph) (mi MapIterator) {
	if host.Directed != pat.Directed || pat.N > host.N {
		return func() (Mapping, MapIterator) { return nil, nil }
	}
	if pat.N == 0 {
		done := false
		return func() (Mapping, MapIterator) {
			if done {
				return nil, nil
			}
			done = true
			return Mapping{}, func() (Mapping, MapIterator) { return nil, nil }
		}
	}
	chain := searchChain(pat)
	type entry struct {
		emb *embedding
		op  int
	}
	pop := func(stack []entry) (entry, []entry) {
		return stack[len(stack)-1], stack[0 : len(stack)-1]
	}
	stack := make([]entry, 0, host.N*2)
	stack = append(stack, entry{nil, 0})
	mi = func() (Mapping, MapIterator) {
		for len(stack) > 0 {
			var i entry
			i, stack = pop(stack)
			if i.op >= len(chain) {
				return i.emb.slice(pat.N), mi
			}
			extendOp(host, pat, i.emb, &chain[i.op], func(ext *embedding) {
				stack = append(stack, entry{ext, i.op + 1})
			})
		}
		return nil, nil
	}
	return mi
}

// Subisomorphisms collects every mapping of pat into host.
func Subisomorphisms(host, pat *graph.Graph) Mappings {
	maps := make(Mappings, 0, 10)
	for m, mi := IterMappings(host, pat)(); mi != nil; m, mi = mi() {
		maps = append(maps, m)
	}
	return maps
}

func CountSubisomorphisms(host, pat *graph.Graph) int {
	count := 0
	for _, mi := IterMappings(host, pat)(); mi != nil; _, mi = mi() {
		count++
	}
	return count
}

// searchChain orders the search: a seed op opening each connected
// component followed by its edges in breadth first order, leftover
// edges (cycle closers) at the end once every vertex is placed. High
// degree vertices go early since they are the most constrained.
func searchChain(pat *graph.Graph) []searchOp {
	other := func(u, e int) int {
		if pat.E[e].Src == u {
			return pat.E[e].Targ
		}
		return pat.E[e].Src
	}
	ops := make([]searchOp, 0, pat.N+len(pat.E))
	seen := make([]bool, pat.N)
	added := make([]bool, len(pat.E))
	for start := 0; start < pat.N; start++ {
		if seen[start] {
			continue
		}
		ops = append(ops, searchOp{seed: start, eid: -1})
		queue := heap.NewUnique(heap.NewMinHeap(pat.N))
		queue.Add(0, types.Int(start))
		for queue.Size() > 0 {
			u := int(queue.Pop().(types.Int))
			if seen[u] {
				continue
			}
			if u != start {
				for _, e := range pat.Adj[u] {
					if seen[other(u, e)] && !added[e] {
						ops = append(ops, searchOp{seed: -1, eid: e})
						added[e] = true
						break
					}
				}
			}
			seen[u] = true
			for _, e := range pat.Adj[u] {
				v := other(u, e)
				if !seen[v] {
					queue.Add(-len(pat.Adj[v]), types.Int(v))
				}
			}
		}
	}
	for e := range pat.E {
		if !added[e] {
			ops = append(ops, searchOp{seed: -1, eid: e})
			added[e] = true
		}
	}
	return ops
}

func extendOp(host, pat *graph.Graph, cur *embedding, op *searchOp, do func(*embedding)) {
	if op.seed >= 0 {
		for id := 0; id < host.N; id++ {
			if !cur.hasId(id) && degreeOk(host, pat, op.seed, id) {
				do(cur.extend(op.seed, id))
			}
		}
		return
	}
	e := &pat.E[op.eid]
	srcId := cur.idOf(e.Src)
	targId := cur.idOf(e.Targ)
	switch {
	case srcId != -1 && targId != -1:
		if host.HasEdge(srcId, targId) {
			do(cur)
		}
	case srcId != -1:
		eachNeighbor(host, srcId, true, func(id int) {
			if !cur.hasId(id) && degreeOk(host, pat, e.Targ, id) {
				do(cur.extend(e.Targ, id))
			}
		})
	case targId != -1:
		eachNeighbor(host, targId, false, func(id int) {
			if !cur.hasId(id) && degreeOk(host, pat, e.Src, id) {
				do(cur.extend(e.Src, id))
			}
		})
	default:
		panic("search chain was not connected")
	}
}

// eachNeighbor visits the out-neighbors (fromSrc) or in-neighbors of
// id; on undirected graphs every neighbor, either way.
func eachNeighbor(g *graph.Graph, id int, fromSrc bool, do func(int)) {
	if !g.Directed {
		for _, eid := range g.Adj[id] {
			e := &g.E[eid]
			if e.Src == id {
				do(e.Targ)
			} else {
				do(e.Src)
			}
		}
		return
	}
	if fromSrc {
		for _, eid := range g.Kids[id] {
			do(g.E[eid].Targ)
		}
	} else {
		for _, eid := range g.Parents[id] {
			do(g.E[eid].Src)
		}
	}
}

func degreeOk(host, pat *graph.Graph, patIdx, hostId int) bool {
	if pat.Directed {
		return pat.OutDegree(patIdx) <= host.OutDegree(hostId) &&
			pat.InDegree(patIdx) <= host.InDegree(hostId)
	}
	return pat.Degree(patIdx) <= host.Degree(hostId)
}
