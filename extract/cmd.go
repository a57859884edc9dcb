// Package extract is the subgraph extraction tool: it pulls the union
// of a graph's motif instances out as a standalone graph.
package extract

import (
	"fmt"
	"os"
	"strconv"
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
	GraphPath string
	Size      int
	Class     int
	OutPath   string
	MapPath   string
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
		"extract",
		`[options] -s <size> -c <class> <graph-file> <graph-out>`,
		`
Extract the union of the unique motif instance subgraphs of a graph
into a single dot file, renumbering the nodes densely

<graph-file> the host graph, in dot format (.dot, .gv) or the simple
             line format; .gz accepted
<graph-out>  dot file to create

Option Flags
    -h,--help                         Show this message
    -s,--size=<int>                   Motif size (3 or 4 nodes)
    -c,--class=<int>                  Isomorphism class of the motif
    -m,--map=<path>                   Also write a node map file, one
                                      "new-id,original-id" line per node
`,
		"s:c:m:",
		[]string{
			"size=",
			"class=",
			"map=",
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
				case "-m", "--map":
					o.MapPath = oa.Arg()
				}
			}
			if o.Size < 0 || o.Class < 0 {
				return nil, cmd.Usage(r, 2, "both -s and -c are required")
			}
			if len(args) < 2 {
				return nil, cmd.Usage(r, 2, "expected a graph file and an output file")
			}
			o.GraphPath = args[0]
			o.OutPath = args[1]
			return args[2:], nil
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
			sub, nodeMap := motif.Extract(loaded.G, p)
			names := make([]string, len(nodeMap))
			for i, orig := range nodeMap {
				names[i] = loaded.Names[orig]
			}
			f, err := os.Create(o.OutPath)
			if err != nil {
				return nil, cmd.Errorf(1, "could not create %v, error: %v", o.OutPath, err)
			}
			werr := sub.WriteDot(f, names)
			f.Close()
			if werr != nil {
				return nil, cmd.Errorf(1, "could not write %v, error: %v", o.OutPath, werr)
			}
			if o.MapPath != "" {
				mf, err := os.Create(o.MapPath)
				if err != nil {
					return nil, cmd.Errorf(1, "could not create %v, error: %v", o.MapPath, err)
				}
				defer mf.Close()
				for i, orig := range nodeMap {
					fmt.Fprintf(mf, "%v,%v\n", i, loaded.Names[orig])
				}
			}
			return args, nil
		})
}
