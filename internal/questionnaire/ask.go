package questionnaire

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gwyn/consoleio/console"
	"github.com/gwyn/consoleio/internal/debug"
)

// Answer is the validated value for one question.
type Answer struct {
	Name  string
	Type  console.TargetType
	Value any
}

// Answers holds answers in question order.
type Answers []Answer

// Get returns the value answered for name.
func (a Answers) Get(name string) (any, bool) {
	for _, answer := range a {
		if answer.Name == name {
			return answer.Value, true
		}
	}
	return nil, false
}

// Ask prompts for every question in order. It stops at the first stream
// error; answers gathered so far are returned with it.
func Ask(c *console.Console, q *Questionnaire) (Answers, error) {
	debug.Log("questionnaire.Ask", "title", q.Title, "questions", len(q.Questions))

	answers := make(Answers, 0, len(q.Questions))
	for i := range q.Questions {
		question := &q.Questions[i]
		if question.target == 0 {
			if err := question.resolve(); err != nil {
				return answers, fmt.Errorf("question %q: %w", question.Name, err)
			}
		}

		message := question.Message
		if message == "" {
			message = question.Name + ": "
		}

		value, err := c.PromptForBoundedValue(message, question.target, question.bounds)
		if err != nil {
			debug.Error("questionnaire.Ask", err, "question", question.Name)
			return answers, fmt.Errorf("question %q: %w", question.Name, err)
		}
		answers = append(answers, Answer{Name: question.Name, Type: question.target, Value: value})
	}
	return answers, nil
}

// MarshalYAML renders answers as an ordered mapping of name to value.
func (a Answers) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, answer := range a {
		text, err := console.Format(answer.Type, answer.Value)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", answer.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: answer.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: scalarTag(answer.Type), Value: text},
		)
	}
	return node, nil
}

// scalarTag forces quoting for text answers that would otherwise read back
// as numbers or booleans. Numeric and bool answers resolve on their own.
func scalarTag(t console.TargetType) string {
	switch t {
	case console.Char, console.Text:
		return "!!str"
	}
	return ""
}
