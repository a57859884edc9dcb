package iso

import (
	"fmt"
	"strings"
)

import ()

// A Mapping assigns a host vertex id to each pattern vertex index:
// m[patternIdx] == hostId. Mappings are produced once and consumed
// read only; slot 0 set to -1 marks a mapping invalidated during
// cleanup.
type Mapping []int

type Mappings []Mapping

// A MapIterator yields mappings one at a time; nil terminates.
type MapIterator func() (Mapping, MapIterator)

func (m Mapping) String() string {
	items := make([]string, 0, len(m))
	for idx, id := range m {
		items = append(items, fmt.Sprintf("%v=>%v", idx, id))
	}
	return fmt.Sprintf("(%v)", strings.Join(items, ", "))
}

// Contains reports whether id appears in the mapping's vertex set.
func (m Mapping) Contains(id int) bool {
	for _, x := range m {
		if x == id {
			return true
		}
	}
	return false
}

// SharedWith counts the vertices the two mappings have in common,
// comparing vertex sets, not positions.
func (m Mapping) SharedWith(o Mapping) int {
	found := 0
	for _, x := range m {
		for _, y := range o {
			if x == y {
				found++
				break
			}
		}
	}
	return found
}

// embeddings are linked partial assignments, newest link first, as in
// a backtracking search each extension shares its ancestors.
type embedding struct {
	sgIdx, embIdx int
	prev          *embedding
}

func (e *embedding) extend(sgIdx, embIdx int) *embedding {
	return &embedding{sgIdx: sgIdx, embIdx: embIdx, prev: e}
}

func (e *embedding) hasId(id int) bool {
	for c := e; c != nil; c = c.prev {
		if c.embIdx == id {
			return true
		}
	}
	return false
}

func (e *embedding) idOf(idx int) int {
	for c := e; c != nil; c = c.prev {
		if c.sgIdx == idx {
			return c.embIdx
		}
	}
	return -1
}

func (e *embedding) slice(size int) Mapping {
	m := make(Mapping, size)
	for i := range m {
		m[i] = -1
	}
	for c := e; c != nil; c = c.prev {
		m[c.sgIdx] = c.embIdx
	}
	return m
}
