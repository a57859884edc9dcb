package iso

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/BiocomputeLab/mctools/graph"
)

// Isoclasses enumerate the isomorphism classes of simple graphs on 3
// or 4 vertices. A class id names one unlabeled graph; class 0 is
// always the empty graph and the last class the complete graph. Ids
// are stable across runs: classes are ranked by their canonical edge
// bitmask (the minimum mask over all vertex permutations).

const minIsoclassSize = 3
const maxIsoclassSize = 4

var isoclassTables = map[isoclassKey][]uint{}

type isoclassKey struct {
	size     int
	directed bool
}

// IsoclassCount returns the number of isomorphism classes of graphs
// on size vertices: 16 directed / 4 undirected at size 3, 218
// directed / 11 undirected at size 4.
func IsoclassCount(size int, directed bool) (int, error) {
	table, err := isoclassTable(size, directed)
	if err != nil {
		return 0, err
	}
	return len(table), nil
}

// Isoclass builds the canonical representative of the given class.
func Isoclass(size, class int, directed bool) (*graph.Graph, error) {
	table, err := isoclassTable(size, directed)
	if err != nil {
		return nil, err
	}
	if class < 0 || class >= len(table) {
		return nil, errors.Errorf(
			"isoclass %v out of range, have %v classes at size %v", class, len(table), size)
	}
	pairs := isoclassPairs(size, directed)
	b := graph.Build(size, directed)
	mask := table[class]
	for bit, p := range pairs {
		if mask&(1<<uint(bit)) != 0 {
			b.AddEdge(p[0], p[1])
		}
	}
	return b.Build(), nil
}

func isoclassTable(size int, directed bool) ([]uint, error) {
	if size < minIsoclassSize || size > maxIsoclassSize {
		return nil, errors.Errorf("isoclasses are defined for sizes 3 and 4, got %v", size)
	}
	key := isoclassKey{size: size, directed: directed}
	if table, has := isoclassTables[key]; has {
		return table, nil
	}
	table := buildIsoclassTable(size, directed)
	isoclassTables[key] = table
	return table, nil
}

// buildIsoclassTable enumerates every edge bitmask, canonicalizes each
// by taking the minimum mask over vertex permutations, and ranks the
// distinct canonical masks.
func buildIsoclassTable(size int, directed bool) []uint {
	pairs := isoclassPairs(size, directed)
	slot := make(map[[2]int]int, len(pairs))
	for bit, p := range pairs {
		slot[p] = bit
	}
	perms := permutations(size)
	seen := make(map[uint]bool)
	canons := make([]uint, 0, 256)
	for mask := uint(0); mask < 1<<uint(len(pairs)); mask++ {
		canon := mask
		for _, perm := range perms {
			permuted := uint(0)
			for bit, p := range pairs {
				if mask&(1<<uint(bit)) == 0 {
					continue
				}
				q := [2]int{perm[p[0]], perm[p[1]]}
				if !directed && q[1] < q[0] {
					q[0], q[1] = q[1], q[0]
				}
				permuted |= 1 << uint(slot[q])
			}
			if permuted < canon {
				canon = permuted
			}
		}
		if !seen[canon] {
			seen[canon] = true
			canons = append(canons, canon)
		}
	}
	sort.Slice(canons, func(i, j int) bool { return canons[i] < canons[j] })
	return canons
}

// isoclassPairs lists the possible edges in bit order: ordered pairs
// for directed graphs, i < j pairs for undirected.
func isoclassPairs(size int, directed bool) [][2]int {
	pairs := make([][2]int, 0, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if i == j {
				continue
			}
			if !directed && j < i {
				continue
			}
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

func permutations(n int) [][]int {
	perms := make([][]int, 0, 24)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var gen func(k int)
	gen = func(k int) {
		if k == n {
			cp := make([]int, n)
			copy(cp, perm)
			perms = append(perms, cp)
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			gen(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	gen(0)
	return perms
}
