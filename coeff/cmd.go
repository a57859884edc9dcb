package coeff

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"
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
	Samples      int
	Trials       int
	Seed         int64
	OutputPrefix string
}

func NewCommand(c *cmd.Config) cmd.Runnable {
	o := Options{
		Size:    -1,
		Class:   -1,
		Samples: 100,
		Trials:  100,
		Seed:    time.Now().UnixNano(),
	}
	return cmd.Concat(
		NewOptionParser(c, &o),
		NewRunner(c, &o),
	)
}

func NewOptionParser(c *cmd.Config, o *Options) cmd.Runnable {
	return cmd.Cmd(
		"coeff",
		`[options] -s <size> -c <class> <graph-file>`,
		`
Compute the motif clustering coefficient of a graph and its z-score
against a null model matched on node and motif-instance count

<graph-file> the host graph, in dot format (.dot, .gv) or the simple
             line format (graph/vertex/edge lines); .gz accepted

Option Flags
    -h,--help                         Show this message
    -s,--size=<int>                   Motif size (3 or 4 nodes)
    -c,--class=<int>                  Isomorphism class of the motif
    -n,--samples=<int>                Null model samples to draw (default 100)
    -t,--trials=<int>                 Trial budget per synthesis (default 100)
    --seed=<int>                      Random seed (defaults to the clock)
    -o,--output-prefix=<path>         Also write <prefix>_samples.txt and
                                      <prefix>_stats.txt
`,
		"s:c:n:t:o:",
		[]string{
			"size=",
			"class=",
			"samples=",
			"trials=",
			"seed=",
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
				case "-n", "--samples":
					n, err := strconv.Atoi(oa.Arg())
					if err != nil || n < 1 {
						return nil, cmd.Errorf(1, "expected a positive int for %v got %v", oa.Opt(), oa.Arg())
					}
					o.Samples = n
				case "-t", "--trials":
					n, err := strconv.Atoi(oa.Arg())
					if err != nil || n < 0 {
						return nil, cmd.Errorf(1, "expected a non-negative int for %v got %v", oa.Opt(), oa.Arg())
					}
					o.Trials = n
				case "--seed":
					n, err := strconv.ParseInt(oa.Arg(), 10, 64)
					if err != nil {
						return nil, cmd.Errorf(1, "expected an int for %v got %v", oa.Opt(), oa.Arg())
					}
					o.Seed = n
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
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			s, err := motif.SampleZ(ctx, loaded.G, p, o.Samples, o.Trials, c.Workers, o.Seed, c.Debug)
			if err == motif.ErrUndefined {
				return nil, cmd.Errorf(3, "fewer than 2 motif instances in the graph, coefficient undefined")
			} else if err == motif.ErrNoValidSamples {
				return nil, cmd.Errorf(3, "every null model sample failed, z-score undefined (raise -t)")
			} else if err != nil {
				return nil, cmd.Err(2, err)
			}
			fmt.Printf("Motif clustering coefficient = %.8f, z-score = %.8f\n", s.Observed, s.Z)
			if s.Failed > 0 {
				fmt.Fprintf(os.Stderr, "warning: %v of %v samples failed and were excluded\n", s.Failed, o.Samples)
			}
			if o.OutputPrefix != "" {
				if cerr := writeFiles(loaded.G, s, o.OutputPrefix); cerr != nil {
					return nil, cerr
				}
			}
			return args, nil
		})
}

func writeFiles(g *graph.Graph, s *motif.Sample, prefix string) *cmd.Error {
	sf, err := os.Create(fmt.Sprintf("%v_samples.txt", prefix))
	if err != nil {
		return cmd.Errorf(1, "could not create samples file: %v", err)
	}
	defer sf.Close()
	for _, c := range s.Coefficients {
		fmt.Fprintf(sf, "%.8f\n", c)
	}
	tf, err := os.Create(fmt.Sprintf("%v_stats.txt", prefix))
	if err != nil {
		return cmd.Errorf(1, "could not create stats file: %v", err)
	}
	defer tf.Close()
	fmt.Fprintf(tf, "Nodes, Edges, MCC, Z-Score\n")
	fmt.Fprintf(tf, "%v, %v, %.8f, %.8f\n", g.N, len(g.E), s.Observed, s.Z)
	return nil
}
