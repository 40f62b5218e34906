package main

import (
	"fmt"
	"os"

	"github.com/cli/go-gh/v2/pkg/prompter"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/joho/godotenv"

	"github.com/gwyn/consoleio/cmd"
	"github.com/gwyn/consoleio/console"
	"github.com/gwyn/consoleio/internal/debug"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is not an error.
	_ = godotenv.Load(".env")
	debug.Init()

	args := os.Args[1:]

	if len(args) == 0 {
		return printUsage()
	}

	switch args[0] {
	case "ask":
		return runAsk(args[1:])
	case "survey":
		return runSurvey(args[1:])
	case "types":
		return runTypes(args[1:])
	case "help", "--help", "-h":
		return printUsage()
	case "version", "--version":
		fmt.Println("consoleio version 0.1.0")
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// newConsole reads answers from stdin and writes prompts to stderr, leaving
// stdout for results.
func newConsole(t term.Term) *console.Console {
	return console.New(t.In(), t.ErrOut())
}

// newPrompter returns nil unless both ends are attached to a terminal.
func newPrompter(t term.Term) cmd.Prompter {
	if !term.IsTerminal(os.Stdin) || !t.IsTerminalOutput() {
		debug.Log("newPrompter", "interactive", false)
		return nil
	}
	return prompter.New(os.Stdin, os.Stdout, os.Stderr)
}

func runAsk(args []string) error {
	opts, err := cmd.ParseAskFlags(args)
	if err != nil {
		return err
	}

	t := term.FromEnv()
	runner := &cmd.AskRunner{
		Console:  newConsole(t),
		Out:      t.Out(),
		Prompter: newPrompter(t),
	}
	return runner.Run(*opts)
}

func runSurvey(args []string) error {
	opts, err := cmd.ParseSurveyFlags(args)
	if err != nil {
		return err
	}

	t := term.FromEnv()
	runner := &cmd.SurveyRunner{
		Console: newConsole(t),
		Out:     t.Out(),
	}
	return runner.Run(*opts)
}

func runTypes(args []string) error {
	opts, err := cmd.ParseTypesFlags(args)
	if err != nil {
		return err
	}

	runner := &cmd.TypesRunner{Out: os.Stdout}
	return runner.Run(*opts)
}

func printUsage() error {
	usage := `consoleio - Prompt for typed, range-checked values on the console

USAGE
  consoleio <command> [flags]

COMMANDS
  ask       Prompt for one value and print it
  survey    Ask the questions in a YAML questionnaire and print the answers
  types     List supported value types and their ranges

ASK FLAGS
  -t, --type <name>        Value type (prompted for when interactive)
  -m, --message <string>   Prompt text (default "Enter a value: ")
      --min <value>        Inclusive lower bound
      --max <value>        Inclusive upper bound

SURVEY FLAGS
  -f, --file <path>        Questionnaire file (or first argument)

ENVIRONMENT
  CONSOLEIO_DEBUG          Log debug output to stderr when set
  A .env file in the working directory is loaded first.

EXAMPLES
  consoleio ask -t int --min 0 --max 120 -m "Enter age: "
  consoleio ask -t bool -m "Enter flag: "
  consoleio survey signup.yaml > answers.yaml
`
	fmt.Print(usage)
	return nil
}

// Compile-time check: the go-gh prompter must implement cmd.Prompter
var _ cmd.Prompter = (*prompter.Prompter)(nil)
