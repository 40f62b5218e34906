package cmd

// Prompter presents a menu of choices on an interactive terminal.
// Line-oriented value prompts go through console.Console instead.
type Prompter interface {
	Select(prompt string, defaultValue string, options []string) (int, error)
}
