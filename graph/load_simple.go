package graph

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import ()

// LoadSimple reads the line oriented exchange format:
//
//	graph	directed|undirected
//	vertex	<id>
//	edge	<src-id>	<targ-id>
//
// Vertex ids are arbitrary integers; edges may name vertices that
// were never declared, which declares them implicitly (matching how
// the dot loader behaves).
func LoadSimple(input io.Reader) (*Loaded, error) {
	l := &simpleLoader{
		b:     Build(0, true),
		names: make([]string, 0, 100),
		vidxs: make(map[string]int),
	}
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		split := strings.Split(line, "\t")
		kind, rest := split[0], split[1:]
		var err error
		switch kind {
		case "graph":
			err = l.header(rest)
		case "vertex":
			err = l.vertex(rest)
		case "edge":
			err = l.edge(rest)
		default:
			err = errors.Errorf("unexpected kind `%v` for line `%v`", kind, line)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Loaded{
		G:     l.b.Build(),
		Names: l.names,
		Attrs: make(map[int]map[string]string),
	}, nil
}

type simpleLoader struct {
	b     *Builder
	names []string
	vidxs map[string]int
}

func (l *simpleLoader) header(rest []string) error {
	if len(rest) != 1 {
		return errors.Errorf("graph line in unexpected format: `%v`", rest)
	}
	switch rest[0] {
	case "directed":
		l.b.Directed = true
	case "undirected":
		l.b.Directed = false
	default:
		return errors.Errorf("expected directed or undirected got `%v`", rest[0])
	}
	return nil
}

func (l *simpleLoader) vertex(rest []string) error {
	if len(rest) != 1 {
		return errors.Errorf("vertex line in unexpected format: `%v`", rest)
	}
	if _, err := strconv.Atoi(rest[0]); err != nil {
		return errors.Errorf("vertex id `%v` is not an integer", rest[0])
	}
	l.add(rest[0])
	return nil
}

func (l *simpleLoader) edge(rest []string) error {
	if len(rest) != 2 {
		return errors.Errorf("edge line in unexpected format: `%v`", rest)
	}
	l.b.AddEdge(l.add(rest[0]), l.add(rest[1]))
	return nil
}

func (l *simpleLoader) add(sid string) int {
	if idx, has := l.vidxs[sid]; has {
		return idx
	}
	idx := l.b.AddVertex()
	l.vidxs[sid] = idx
	l.names = append(l.names, sid)
	return idx
}
