// Package questionnaire runs a YAML-described sequence of console prompts.
package questionnaire

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/gwyn/consoleio/console"
	"github.com/gwyn/consoleio/internal/debug"
)

// Questionnaire is the decoded form of a questionnaire file.
type Questionnaire struct {
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// Question is one prompt. Min and Max are written as text and parsed with
// the question's type.
type Question struct {
	Name    string `yaml:"name"`
	Message string `yaml:"message"`
	Type    string `yaml:"type"`
	Min     string `yaml:"min"`
	Max     string `yaml:"max"`

	target console.TargetType
	bounds *console.Bounds
}

// TargetType returns the resolved type. Valid after Parse.
func (q Question) TargetType() console.TargetType {
	return q.target
}

// Bounds returns the parsed bounds, or nil if the question has none.
func (q Question) Bounds() *console.Bounds {
	return q.bounds
}

// envVarPattern matches ${VAR_NAME} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads a questionnaire file.
func Load(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading questionnaire file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates questionnaire YAML. ${VAR} references are
// replaced with environment values before decoding.
func Parse(data []byte) (*Questionnaire, error) {
	data = envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := envVarPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(varName)))
	})

	q := &Questionnaire{}
	if err := yaml.Unmarshal(data, q); err != nil {
		return nil, fmt.Errorf("parsing questionnaire: %w", err)
	}
	if len(q.Questions) == 0 {
		return nil, errors.New("questionnaire has no questions")
	}

	seen := make(map[string]bool, len(q.Questions))
	for i := range q.Questions {
		question := &q.Questions[i]
		if question.Name == "" {
			return nil, fmt.Errorf("question %d: name is required", i+1)
		}
		if seen[question.Name] {
			return nil, fmt.Errorf("question %q: duplicate name", question.Name)
		}
		seen[question.Name] = true

		if err := question.resolve(); err != nil {
			return nil, fmt.Errorf("question %q: %w", question.Name, err)
		}
	}

	debug.Log("questionnaire.Parse", "title", q.Title, "questions", len(q.Questions))
	return q, nil
}

func (q *Question) resolve() error {
	if q.Type == "" {
		q.Type = "string"
	}
	t, err := console.ParseTargetType(q.Type)
	if err != nil {
		return err
	}
	q.target = t

	if q.Min == "" && q.Max == "" {
		return nil
	}
	if !t.Ordered() {
		return fmt.Errorf("%w: %s", console.ErrUnorderedType, t)
	}

	b := &console.Bounds{}
	if q.Min != "" {
		if b.Min, err = console.Parse(t, q.Min); err != nil {
			return fmt.Errorf("min %q: %w", q.Min, err)
		}
	}
	if q.Max != "" {
		if b.Max, err = console.Parse(t, q.Max); err != nil {
			return fmt.Errorf("max %q: %w", q.Max, err)
		}
	}
	q.bounds = b
	return nil
}
