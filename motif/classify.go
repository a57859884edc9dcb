package motif

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/BiocomputeLab/mctools/graph"
	"github.com/BiocomputeLab/mctools/iso"
)

// ErrCatalogueOverflow rejects patterns outside the specialized 3 and
// 4 vertex overlap enumeration; larger sizes are refused outright
// rather than silently approximated.
var ErrCatalogueOverflow = errors.Errorf("clustering types are only enumerated for 3 and 4 vertex patterns")

// Catalogue enumerates the canonical clustering types of p: every
// merged graph two copies of the pattern can form by sharing
// overlap = 1..size-1 vertices without either copy gaining or losing
// edges in the merge. Entries are deduplicated by isomorphism and
// pairwise non-isomorphic; catalogue order is the enumeration order
// and is stable for a given pattern.
func Catalogue(p *Pattern) ([]*graph.Graph, error) {
	size := p.Size()
	if size < 3 || size > 4 {
		return nil, ErrCatalogueOverflow
	}
	types := make([]*graph.Graph, 0, 32)
	for overlap := 1; overlap < size; overlap++ {
		for _, pairs := range overlapMappings(size, overlap) {
			merged, copy1, copy2 := mergeCopies(p, pairs)
			if !faithful(merged, copy1, len(p.G.E)) || !faithful(merged, copy2, len(p.G.E)) {
				continue
			}
			dup := false
			for _, t := range types {
				if iso.Isomorphic(merged, t) {
					dup = true
					break
				}
			}
			if !dup {
				types = append(types, merged)
			}
		}
	}
	return types, nil
}

// Classification buckets the overlapping instance pairs of a host by
// clustering type. Counts is index aligned with Types; pairs that
// share no vertex, or whose merged host subgraph matches no type, go
// to the unclustered bucket. Nodes collects, per type, the sorted
// host node ids involved in any pair of that type.
type Classification struct {
	Types       []*graph.Graph
	Counts      []int
	Unclustered int
	Nodes       [][]int
}

// Classify builds the catalogue for p and classifies every pair of
// distinct unique instances of p in host. First matching catalogue
// entry wins; each pair lands in exactly one bucket.
func Classify(host *graph.Graph, p *Pattern) (*Classification, error) {
	types, err := Catalogue(p)
	if err != nil {
		return nil, err
	}
	in := Find(host, p)
	c := &Classification{
		Types:  types,
		Counts: make([]int, len(types)),
		Nodes:  make([][]int, len(types)),
	}
	nodeSets := make([]map[int]bool, len(types))
	for t := range nodeSets {
		nodeSets[t] = make(map[int]bool)
	}
	for i := 0; i < len(in.Unique); i++ {
		for j := i + 1; j < len(in.Unique); j++ {
			mi, mj := in.Unique[i], in.Unique[j]
			if mi.SharedWith(mj) == 0 {
				c.Unclustered++
				continue
			}
			merged := hostMerge(in.Host, mi, mj)
			matched := false
			for t := range types {
				if iso.Isomorphic(merged, types[t]) {
					c.Counts[t]++
					for _, id := range mi {
						nodeSets[t][id] = true
					}
					for _, id := range mj {
						nodeSets[t][id] = true
					}
					matched = true
					break
				}
			}
			if !matched {
				c.Unclustered++
			}
		}
	}
	for t := range nodeSets {
		ids := make([]int, 0, len(nodeSets[t]))
		for id := range nodeSets[t] {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		c.Nodes[t] = ids
	}
	return c, nil
}

// mergeCopies joins two pattern copies under an overlap mapping:
// pairs[k] = {a, b} identifies vertex a of copy 1 with vertex b of
// copy 2. Returns the simplified merged graph plus each copy's vertex
// ids within it.
func mergeCopies(p *Pattern, pairs [][2]int) (merged *graph.Graph, copy1, copy2 []int) {
	size := p.Size()
	map2 := make([]int, size)
	for i := range map2 {
		map2[i] = -1
	}
	for _, pr := range pairs {
		map2[pr[1]] = pr[0]
	}
	b := graph.Build(size, p.G.Directed)
	for i := range map2 {
		if map2[i] == -1 {
			map2[i] = b.AddVertex()
		}
	}
	for _, e := range p.G.E {
		b.AddEdge(e.Src, e.Targ)
	}
	for _, e := range p.G.E {
		b.AddEdge(map2[e.Src], map2[e.Targ])
	}
	copy1 = make([]int, size)
	for i := range copy1 {
		copy1[i] = i
	}
	return b.Build().Simplify(), copy1, map2
}

// faithful checks that a copy's vertex subset still induces exactly
// the pattern's edge count inside the merged graph; identifications
// that create or destroy edges within a copy are inconsistent
// overlaps and get rejected.
func faithful(merged *graph.Graph, ids []int, patternEdges int) bool {
	return merged.InducedEdgeCount(ids) == patternEdges
}

// overlapMappings enumerates every injective mapping of overlap
// copy-1 vertex indices onto copy-2 vertex indices: an increasing
// choice of copy-1 indices paired with every arrangement of copy-2
// indices.
func overlapMappings(size, overlap int) [][][2]int {
	maps := make([][][2]int, 0, 32)
	domain := make([]int, 0, overlap)
	codomain := make([]int, 0, overlap)
	used := make([]bool, size)
	var arrange func()
	arrange = func() {
		if len(codomain) == overlap {
			pairs := make([][2]int, overlap)
			for k := 0; k < overlap; k++ {
				pairs[k] = [2]int{domain[k], codomain[k]}
			}
			maps = append(maps, pairs)
			return
		}
		for b := 0; b < size; b++ {
			if used[b] {
				continue
			}
			used[b] = true
			codomain = append(codomain, b)
			arrange()
			codomain = codomain[:len(codomain)-1]
			used[b] = false
		}
	}
	var choose func(from int)
	choose = func(from int) {
		if len(domain) == overlap {
			arrange()
			return
		}
		for a := from; a < size; a++ {
			domain = append(domain, a)
			choose(a + 1)
			domain = domain[:len(domain)-1]
		}
	}
	choose(0)
	return maps
}

// hostMerge builds the merged subgraph of an instance pair as the
// host realizes it: the union of the two vertex sets carrying every
// host edge that lies within either instance's set, simplified.
func hostMerge(host *graph.Graph, a, b iso.Mapping) *graph.Graph {
	ids := make([]int, 0, len(a)+len(b))
	seen := make(map[int]bool, len(a)+len(b))
	for _, m := range []iso.Mapping{a, b} {
		for _, id := range m {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	bld := graph.Build(len(ids), host.Directed)
	for _, e := range host.E {
		within := (a.Contains(e.Src) && a.Contains(e.Targ)) ||
			(b.Contains(e.Src) && b.Contains(e.Targ))
		if within {
			bld.AddEdge(pos[e.Src], pos[e.Targ])
		}
	}
	return bld.Build().Simplify()
}
