package graph

import (
	"fmt"
	"io"
	"strings"
)

import ()

// Dotty renders g in dot format. Vertex v is named n<v>; names, when
// provided, become labels (index aligned with vertex ids, extras
// ignored).
func (g *Graph) Dotty(names []string) string {
	kind := "digraph"
	arrow := "->"
	if !g.Directed {
		kind = "graph"
		arrow = "--"
	}
	V := make([]string, 0, g.N)
	E := make([]string, 0, len(g.E))
	for v := 0; v < g.N; v++ {
		label := ""
		if v < len(names) {
			label = fmt.Sprintf(" [label=\"%v\"]", names[v])
		}
		V = append(V, fmt.Sprintf("n%v%v;", v, label))
	}
	for _, e := range g.E {
		E = append(E, fmt.Sprintf("n%v%vn%v;", e.Src, arrow, e.Targ))
	}
	return fmt.Sprintf("%v{\n%v\n%v\n}\n", kind, strings.Join(V, "\n"), strings.Join(E, "\n"))
}

func (g *Graph) WriteDot(w io.Writer, names []string) error {
	_, err := io.WriteString(w, g.Dotty(names))
	return err
}
