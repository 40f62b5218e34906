package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gwyn/consoleio/console"
	"github.com/gwyn/consoleio/internal/debug"
	"github.com/gwyn/consoleio/internal/questionnaire"
)

// SurveyOptions contains the parsed command line options for the survey command.
type SurveyOptions struct {
	File string
}

// ParseSurveyFlags parses command line flags for the survey command. The
// questionnaire file may be given with --file or as the first argument.
func ParseSurveyFlags(args []string) (*SurveyOptions, error) {
	debug.Log("ParseSurveyFlags", "args", args)

	opts := &SurveyOptions{}
	fs := flag.NewFlagSet("survey", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.File, "file", "", "Questionnaire YAML file")
	fs.StringVar(&opts.File, "f", "", "Questionnaire YAML file")

	if err := fs.Parse(args); err != nil {
		debug.Error("ParseSurveyFlags", err, "stage", "fs.Parse")
		return nil, err
	}
	if opts.File == "" && fs.NArg() > 0 {
		opts.File = fs.Arg(0)
	}
	if opts.File == "" {
		return nil, errors.New("questionnaire file is required")
	}
	if opts.File == "-" {
		return nil, errors.New("questionnaire cannot be read from stdin: answers are read from stdin")
	}

	debug.Log("ParseSurveyFlags", "parsed", fmt.Sprintf("%+v", opts))
	return opts, nil
}

// SurveyRunner executes the survey subcommand.
type SurveyRunner struct {
	Console *console.Console
	Out     io.Writer
}

// Run asks every question in the file and prints the answers as YAML.
func (r *SurveyRunner) Run(opts SurveyOptions) error {
	debug.Log("SurveyRunner.Run", "file", opts.File)

	q, err := questionnaire.Load(opts.File)
	if err != nil {
		debug.Error("SurveyRunner.Run", err, "stage", "load")
		return err
	}

	if q.Title != "" {
		if err := r.Console.PrintLine(q.Title); err != nil {
			return err
		}
	}

	answers, err := questionnaire.Ask(r.Console, q)
	if err != nil {
		debug.Error("SurveyRunner.Run", err, "stage", "ask", "answered", len(answers))
		return err
	}

	enc := yaml.NewEncoder(r.Out)
	enc.SetIndent(2)
	if err := enc.Encode(answers); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	return enc.Close()
}
