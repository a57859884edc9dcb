package motif

import ()

import (
	"github.com/BiocomputeLab/mctools/graph"
	"github.com/BiocomputeLab/mctools/iso"
)

// Instances holds the occurrences of a pattern in a host graph: the
// cleaned raw mapping list (one entry per subisomorphism, spurious
// entries invalidated in place) and the deduplicated unique-instance
// list. Host is the simplified host the mappings were found in.
type Instances struct {
	Host   *graph.Graph
	P      *Pattern
	Raw    iso.Mappings
	Valid  int
	Unique iso.Mappings
}

// Find enumerates and deduplicates the instances of p in host. The
// host is simplified first; raw mappings come back from the oracle in
// enumeration order, get cleaned, then deduplicated by vertex set.
func Find(host *graph.Graph, p *Pattern) *Instances {
	host = host.Simplify()
	in := &Instances{
		Host: host,
		P:    p,
		Raw:  iso.Subisomorphisms(host, p.G),
	}
	in.Valid = clean(host, p, in.Raw)
	in.Unique = unique(p, in.Raw)
	return in
}

// Count is the true instance count: valid raw mappings divided by the
// pattern's automorphism count.
func (in *Instances) Count() int {
	return in.Valid / in.P.Rot
}

// clean invalidates spurious mappings and returns the surviving
// count. On directed hosts a mapping is spurious when the host
// subgraph induced on its vertex set carries more edges than the
// pattern (the match is edge preserving but not edge exact).
// Undirected matches are left as found.
func clean(host *graph.Graph, p *Pattern, maps iso.Mappings) int {
	if !host.Directed {
		return len(maps)
	}
	valid := 0
	for _, m := range maps {
		if host.InducedEdgeCount(m) != len(p.G.E) {
			m[0] = -1
			continue
		}
		valid++
	}
	return valid
}

// unique accepts a mapping only when no previously accepted mapping
// has the same vertex set. Quadratic in the surviving mapping count,
// which is fine at the instance counts these graphs produce.
func unique(p *Pattern, maps iso.Mappings) iso.Mappings {
	size := p.Size()
	instances := make(iso.Mappings, 0, len(maps)/max(p.Rot, 1))
	for _, m := range maps {
		if m[0] == -1 {
			continue
		}
		dup := false
		for _, u := range instances {
			if m.SharedWith(u) == size {
				dup = true
				break
			}
		}
		if !dup {
			instances = append(instances, m)
		}
	}
	return instances
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
