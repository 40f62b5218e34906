package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/gwyn/consoleio/console"
	"github.com/gwyn/consoleio/internal/debug"
)

// TypesOptions contains the parsed command line options for the types command.
type TypesOptions struct {
	NoHeader bool
}

// ParseTypesFlags parses command line flags for the types command.
func ParseTypesFlags(args []string) (*TypesOptions, error) {
	opts := &TypesOptions{}
	fs := flag.NewFlagSet("types", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.NoHeader, "no-header", false, "Omit table header from output")

	if err := fs.Parse(args); err != nil {
		debug.Error("ParseTypesFlags", err, "stage", "fs.Parse")
		return nil, err
	}
	return opts, nil
}

// TypesRunner executes the types subcommand.
type TypesRunner struct {
	Out io.Writer
}

// Run prints each supported type with its default range.
func (r *TypesRunner) Run(opts TypesOptions) error {
	if !opts.NoHeader {
		fmt.Fprintf(r.Out, "%-8s %s\n", "TYPE", "RANGE")
	}
	for _, t := range console.TargetTypes() {
		minText, maxText, ok := rangeText(t)
		if !ok {
			fmt.Fprintf(r.Out, "%-8s %s\n", t, "unordered")
			continue
		}
		fmt.Fprintf(r.Out, "%-8s %s to %s\n", t, minText, maxText)
	}
	return nil
}
