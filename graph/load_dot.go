package graph

import (
	"io"
	"io/ioutil"
	"strings"
)

import (
	"github.com/timtadh/combos"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/dot"
)

import ()

// Loaded is a graph read from an exchange format together with the
// boundary detail the core does not care about: the original node
// identifiers and their (opaque) attributes.
type Loaded struct {
	G     *Graph
	Names []string
	Attrs map[int]map[string]string
}

type DotLoader struct {
	Builder *Builder
	Names   []string
	Attrs   map[int]map[string]string
	vidxs   map[string]int
}

// LoadDot reads a graph in dot format. The graph is directed iff the
// outermost graph is a digraph. Subgraph blocks are skipped, as are
// all attributes beyond the node identity.
func LoadDot(input io.Reader) (*Loaded, error) {
	text, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, err
	}
	l := &DotLoader{
		Builder: Build(0, true),
		Names:   make([]string, 0, 100),
		Attrs:   make(map[int]map[string]string),
		vidxs:   make(map[string]int),
	}
	dp := &dotParse{loader: l}
	err = dot.StreamParse(text, dp)
	if err != nil {
		return nil, err
	}
	return &Loaded{
		G:     l.Builder.Build(),
		Names: l.Names,
		Attrs: l.Attrs,
	}, nil
}

func (l *DotLoader) addVertex(sid string, attrs map[string]string) int {
	if idx, has := l.vidxs[sid]; has {
		return idx
	}
	idx := l.Builder.AddVertex()
	l.vidxs[sid] = idx
	l.Names = append(l.Names, sid)
	if len(attrs) > 0 {
		l.Attrs[idx] = attrs
	}
	return idx
}

func (l *DotLoader) addEdge(src, targ string) {
	sidx := l.addVertex(src, nil)
	tidx := l.addVertex(targ, nil)
	l.Builder.AddEdge(sidx, tidx)
}

type dotParse struct {
	loader   *DotLoader
	graphs   int
	subgraph int
}

func (p *dotParse) Enter(name string, n *combos.Node) error {
	if name == "SubGraph" {
		p.subgraph++
		return nil
	}
	if p.graphs == 0 {
		kind, ok := n.Get(0).Value.(string)
		if !ok {
			return errors.Errorf("malformed graph header %v", n)
		}
		p.loader.Builder.Directed = strings.ToLower(kind) == "digraph"
	}
	return nil
}

func (p *dotParse) Stmt(n *combos.Node) error {
	if p.subgraph > 0 {
		return nil
	}
	switch n.Label {
	case "Node":
		sid := n.Get(0).Value.(string)
		attrs := make(map[string]string)
		for _, attr := range n.Get(1).Children {
			attrs[attr.Get(0).Value.(string)] = attr.Get(1).Value.(string)
		}
		p.loader.addVertex(sid, attrs)
	case "Edge":
		p.loader.addEdge(n.Get(0).Value.(string), n.Get(1).Value.(string))
	}
	return nil
}

func (p *dotParse) Exit(name string) error {
	if name == "SubGraph" {
		p.subgraph--
		return nil
	}
	p.graphs++
	return nil
}
