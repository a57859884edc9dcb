package main

import (
	"os"
	"strconv"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/BiocomputeLab/mctools/cmd"
	"github.com/BiocomputeLab/mctools/coeff"
	"github.com/BiocomputeLab/mctools/ctypes"
	"github.com/BiocomputeLab/mctools/extract"
)

func main() {
	var config cmd.Config
	var profileCleanup func()
	root := cmd.Concat(
		cmd.Cmd(
			os.Args[0],
			`[options] <command>`,
			`
Motif clustering tools: statistics on how the instances of a small
pattern graph cluster together inside a host graph.

Option Flags
    -h,--help                         Show this message
    -d,--debug=<int>                  Debug level (default 0)
    -w,--workers=<int>                Worker count for the sample loop
                                      (defaults to one per CPU)
    -p,--cpu-profile=<path>           Write a cpu profile
`,
			"d:w:p:",
			[]string{
				"debug=",
				"workers=",
				"cpu-profile=",
			},
			func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
				for _, oa := range optargs {
					switch oa.Opt() {
					case "-d", "--debug":
						n, err := strconv.Atoi(oa.Arg())
						if err != nil {
							return nil, cmd.Errorf(1, "expected an int for %v got %v", oa.Opt(), oa.Arg())
						}
						config.Debug = n
					case "-w", "--workers":
						n, err := strconv.Atoi(oa.Arg())
						if err != nil {
							return nil, cmd.Errorf(1, "expected an int for %v got %v", oa.Opt(), oa.Arg())
						}
						config.Workers = n
					case "-p", "--cpu-profile":
						cleanup, cerr := cmd.CPUProfile(oa.Arg())
						if cerr != nil {
							return nil, cerr
						}
						profileCleanup = cleanup
					}
				}
				return args, nil
			},
		),
		cmd.Commands(map[string]cmd.Runnable{
			"coeff":   coeff.NewCommand(&config),
			"types":   ctypes.NewCommand(&config),
			"extract": extract.NewCommand(&config),
		}),
	)
	cmd.Main(os.Args[1:], root, func() {
		if profileCleanup != nil {
			profileCleanup()
		}
	})
}
