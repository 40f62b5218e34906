package cmd

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/gwyn/consoleio/console"
	"github.com/gwyn/consoleio/internal/debug"
)

// DefaultAskMessage is shown when --message is not given.
const DefaultAskMessage = "Enter a value: "

// AskOptions contains the parsed command line options for the ask command.
type AskOptions struct {
	Type    string
	Message string
	Min     OptionalString
	Max     OptionalString
}

// OptionalString is a flag.Value that records whether it was set, so an
// explicit empty value can be told apart from an absent flag.
type OptionalString struct {
	Value  string
	WasSet bool
}

func (o *OptionalString) String() string {
	return o.Value
}

func (o *OptionalString) Set(value string) error {
	o.Value = value
	o.WasSet = true
	return nil
}

// ParseAskFlags parses command line flags for the ask command.
func ParseAskFlags(args []string) (*AskOptions, error) {
	debug.Log("ParseAskFlags", "args", args)

	opts := &AskOptions{}
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.Type, "type", "", "Value type (int, long, short, double, float, decimal, char, bool, string)")
	fs.StringVar(&opts.Type, "t", "", "Value type (int, long, short, double, float, decimal, char, bool, string)")

	fs.StringVar(&opts.Message, "message", DefaultAskMessage, "Prompt shown before each attempt")
	fs.StringVar(&opts.Message, "m", DefaultAskMessage, "Prompt shown before each attempt")

	fs.Var(&opts.Min, "min", "Inclusive lower bound")
	fs.Var(&opts.Max, "max", "Inclusive upper bound")

	if err := fs.Parse(args); err != nil {
		debug.Error("ParseAskFlags", err, "stage", "fs.Parse")
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	debug.Log("ParseAskFlags", "parsed", fmt.Sprintf("%+v", opts))
	return opts, nil
}

// AskRunner executes the ask subcommand.
type AskRunner struct {
	Console  *console.Console
	Out      io.Writer
	Prompter Prompter
}

// Run prompts until a valid value is entered and prints it to Out.
func (r *AskRunner) Run(opts AskOptions) error {
	debug.Log("AskRunner.Run", "type", opts.Type, "min", opts.Min.Value, "max", opts.Max.Value)

	var (
		t   console.TargetType
		err error
	)
	if opts.Type == "" {
		if r.Prompter == nil {
			return fmt.Errorf("--type flag is required when not running interactively")
		}
		t, err = SelectTargetType(r.Prompter)
		if err != nil {
			debug.Error("AskRunner.Run", err, "stage", "select_type")
			return err
		}
	} else {
		t, err = console.ParseTargetType(opts.Type)
		if err != nil {
			return fmt.Errorf("%w\nSupported types: %s", err, typeList())
		}
	}

	bounds, err := parseBounds(t, opts.Min, opts.Max)
	if err != nil {
		return err
	}

	value, err := r.Console.PromptForBoundedValue(opts.Message, t, bounds)
	if err != nil {
		debug.Error("AskRunner.Run", err, "stage", "prompt")
		return err
	}

	text, err := console.Format(t, value)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, text)
	return nil
}

func parseBounds(t console.TargetType, minFlag, maxFlag OptionalString) (*console.Bounds, error) {
	if !minFlag.WasSet && !maxFlag.WasSet {
		return nil, nil
	}
	if !t.Ordered() {
		return nil, fmt.Errorf("--min and --max are not supported for %s", t)
	}

	b := &console.Bounds{}
	if minFlag.WasSet {
		v, err := console.Parse(t, minFlag.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid --min %q: %w", minFlag.Value, err)
		}
		b.Min = v
	}
	if maxFlag.WasSet {
		v, err := console.Parse(t, maxFlag.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid --max %q: %w", maxFlag.Value, err)
		}
		b.Max = v
	}
	return b, nil
}

func typeList() string {
	types := console.TargetTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
