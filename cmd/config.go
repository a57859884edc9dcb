package cmd

import ()

// Config carries the global flags every subcommand sees: the debug
// verbosity level and the worker count for the parallel sample loop
// (0 means one worker per CPU).
type Config struct {
	Debug   int
	Workers int
}
