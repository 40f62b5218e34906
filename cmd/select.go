package cmd

import (
	"fmt"

	"github.com/gwyn/consoleio/console"
	"github.com/gwyn/consoleio/internal/debug"
)

// SelectTargetType prompts user to pick a value type from the supported set.
func SelectTargetType(p Prompter) (console.TargetType, error) {
	types := console.TargetTypes()
	debug.Log("SelectTargetType", "type_count", len(types))

	options := make([]string, len(types))
	for i, t := range types {
		options[i] = describeType(t)
	}

	idx, err := p.Select("Select value type", options[0], options)
	if err != nil {
		debug.Error("SelectTargetType", err, "stage", "prompt_select")
		return 0, err
	}
	if idx < 0 || idx >= len(types) {
		return 0, fmt.Errorf("selection %d out of range", idx)
	}

	selected := types[idx]
	debug.Log("SelectTargetType", "selected_index", idx, "selected_type", selected)
	return selected, nil
}

// describeType returns "name (min to max)" for ordered types and the bare
// name otherwise.
func describeType(t console.TargetType) string {
	minText, maxText, ok := rangeText(t)
	if !ok {
		return t.String()
	}
	return fmt.Sprintf("%s (%s to %s)", t, minText, maxText)
}

func rangeText(t console.TargetType) (string, string, bool) {
	b, ok := console.DefaultBounds(t)
	if !ok {
		return "", "", false
	}
	minText, err := console.Format(t, b.Min)
	if err != nil {
		return "", "", false
	}
	maxText, err := console.Format(t, b.Max)
	if err != nil {
		return "", "", false
	}
	if t == console.Char {
		minText, maxText = fmt.Sprintf("%U", b.Min), fmt.Sprintf("%U", b.Max)
	}
	return minText, maxText, true
}
