package motif

import (
	"sort"
)

import (
	"github.com/BiocomputeLab/mctools/graph"
	"github.com/BiocomputeLab/mctools/iso"
)

// Extract pulls the union of the unique instance subgraphs of p out
// of host as a single graph. Vertices are renumbered densely;
// nodeMap[newID] gives the original host id. An edge survives only
// when it lies inside some single instance's vertex set, so edges
// between instances that are not themselves part of an instance do
// not leak into the extract.
func Extract(host *graph.Graph, p *Pattern) (*graph.Graph, []int) {
	in := Find(host, p)
	seen := make(map[int]bool)
	nodeMap := make([]int, 0, len(in.Unique)*p.Size())
	for _, m := range in.Unique {
		for _, id := range m {
			if !seen[id] {
				seen[id] = true
				nodeMap = append(nodeMap, id)
			}
		}
	}
	sort.Ints(nodeMap)
	pos := make(map[int]int, len(nodeMap))
	for i, id := range nodeMap {
		pos[id] = i
	}
	b := graph.Build(len(nodeMap), host.Directed)
	for _, e := range in.Host.E {
		if withinInstance(in.Unique, e.Src, e.Targ) {
			b.AddEdge(pos[e.Src], pos[e.Targ])
		}
	}
	return b.Build().Simplify(), nodeMap
}

func withinInstance(instances iso.Mappings, src, targ int) bool {
	for _, m := range instances {
		if m.Contains(src) && m.Contains(targ) {
			return true
		}
	}
	return false
}
