package cmd

import (
	"fmt"
	"os"
)

import ()

// Main runs the root command, applies cleanup (profile flushes and
// the like, which deferred calls would miss past the exit), and exits
// with the command's code.
func Main(argv []string, r Runnable, cleanup func()) {
	args, err := r.Run(argv)
	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(err.ExitCode)
	}
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "expected 0 args left got %v\n", args)
		os.Exit(1)
	}
	os.Exit(0)
}
