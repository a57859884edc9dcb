// Package ctypes is the clustering-types tool: it buckets every
// overlapping pair of motif instances in a host graph by the
// canonical shape the two copies merge into.
package ctypes

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/BiocomputeLab/mctools/cmd"
	"github.com/BiocomputeLab/mctools/graph"
	"github.com/BiocomputeLab/mctools/motif"
)

type Options struct {
	GraphPath    string
	Size         int
	Class        int
	OutputPrefix string
}

func NewCommand(c *cmd.Config) cmd.Runnable {
	o := Options{
		Size:  -1,
		Class: -1,
	}
	return cmd.Concat(
		NewOptionParser(c, &o),
		NewRunner(c, &o),
	)
}

func NewOptionParser(c *cmd.Config, o *Options) cmd.Runnable {
	return cmd.Cmd(
		"types",
		`[options] -s <size> -c <class> <graph-file>`,
		`
Classify the overlapping motif instance pairs of a graph by clustering
type. Prints one comma-separated line: a count per type in catalogue
order, then the unclustered pair count last.

<graph-file> the host graph, in dot format (.dot, .gv) or the simple
             line format; .gz accepted

Option Flags
    -h,--help                         Show this message
    -s,--size=<int>                   Motif size (3 or 4 nodes)
    -c,--class=<int>                  Isomorphism class of the motif
    -o,--output-prefix=<path>         Also write <prefix>Type<n>.dot per
                                      catalogue entry and <prefix>NodeMaps.txt
`,
		"s:c:o:",
		[]string{
			"size=",
			"class=",
			"output-prefix=",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-s", "--size":
					n, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "expected an int for %v got %v", oa.Opt(), oa.Arg())
					}
					o.Size = n
				case "-c", "--class":
					n, err := strconv.Atoi(oa.Arg())
					if err != nil {
						return nil, cmd.Errorf(1, "expected an int for %v got %v", oa.Opt(), oa.Arg())
					}
					o.Class = n
				case "-o", "--output-prefix":
					o.OutputPrefix = oa.Arg()
				}
			}
			if o.Size < 0 || o.Class < 0 {
				return nil, cmd.Usage(r, 2, "both -s and -c are required")
			}
			if len(args) < 1 {
				return nil, cmd.Usage(r, 2, "expected a graph file")
			}
			o.GraphPath = args[0]
			return args[1:], nil
		})
}

func NewRunner(c *cmd.Config, o *Options) cmd.Runnable {
	return cmd.BareCmd(
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			reader, closeall, err := cmd.Input(o.GraphPath)
			if err != nil {
				return nil, cmd.Errorf(1, "could not open %v, error: %v", o.GraphPath, err)
			}
			loaded, err := graph.Load(o.GraphPath, reader)
			closeall()
			if err != nil {
				return nil, cmd.Errorf(1, "could not parse %v, error: %v", o.GraphPath, err)
			}
			p, err := motif.FromIsoclass(o.Size, o.Class, loaded.G.Directed)
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			cls, err := motif.Classify(loaded.G, p)
			if err == motif.ErrCatalogueOverflow {
				return nil, cmd.Errorf(1, "there is currently only support for 3 and 4 node motifs")
			} else if err != nil {
				return nil, cmd.Err(2, err)
			}
			if o.OutputPrefix != "" {
				if cerr := writeFiles(loaded, cls, o.OutputPrefix); cerr != nil {
					return nil, cerr
				}
			}
			counts := make([]string, 0, len(cls.Counts)+1)
			for _, count := range cls.Counts {
				counts = append(counts, strconv.Itoa(count))
			}
			counts = append(counts, strconv.Itoa(cls.Unclustered))
			fmt.Println(strings.Join(counts, ","))
			return args, nil
		})
}

// writeFiles emits one dot file per catalogue entry (1-based, in
// catalogue order) and a node map file with one line per type: the
// original identifiers of every host node involved in a pair of that
// type, comma separated.
func writeFiles(loaded *graph.Loaded, cls *motif.Classification, prefix string) *cmd.Error {
	for i, t := range cls.Types {
		f, err := os.Create(fmt.Sprintf("%vType%v.dot", prefix, i+1))
		if err != nil {
			return cmd.Errorf(1, "could not create type file: %v", err)
		}
		werr := t.WriteDot(f, nil)
		f.Close()
		if werr != nil {
			return cmd.Errorf(1, "could not write type file: %v", werr)
		}
	}
	f, err := os.Create(fmt.Sprintf("%vNodeMaps.txt", prefix))
	if err != nil {
		return cmd.Errorf(1, "could not create node map file: %v", err)
	}
	defer f.Close()
	for _, ids := range cls.Nodes {
		names := make([]string, 0, len(ids))
		for _, id := range ids {
			names = append(names, loaded.Names[id])
		}
		fmt.Fprintln(f, strings.Join(names, ","))
	}
	return nil
}
