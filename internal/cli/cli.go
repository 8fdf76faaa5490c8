// Package cli parses the phishscope command line.
package cli

import (
	"flag"
	"io"
)

// CLIArgs are the command-line arguments for a server run. Flags
// override both the config file and the environment.
type CLIArgs struct {
	// Addr is the HTTP listen address; empty means "use config".
	Addr string

	// ConfigPath points at an optional YAML config file.
	ConfigPath string

	// ModelPath points at the model artifact; empty means "use config".
	ModelPath string

	// HistoryCapacity bounds the in-memory record; 0 means "use config".
	HistoryCapacity int

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by
// passing arbitrary slices. The function is deterministic and does not
// read os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("phishscope", flag.ContinueOnError)
	var (
		addr       = fs.String("addr", "", "HTTP listen address (overrides config)")
		configPath = fs.String("config", "", "Path to a YAML config file")
		modelPath  = fs.String("model", "", "Path to the model artifact (overrides config)")
		capacity   = fs.Int("capacity", 0, "History capacity (0=use config)")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &CLIArgs{
		Addr:            *addr,
		ConfigPath:      *configPath,
		ModelPath:       *modelPath,
		HistoryCapacity: *capacity,
		RawArgs:         args,
	}, nil
}
