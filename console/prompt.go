package console

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gwyn/consoleio/internal/debug"
)

// PromptForValue writes message, reads a line and parses it as t, repeating
// until a line parses. No bounds are applied, so Float64 and Float32 accept
// NaN and ±Inf here.
func (c *Console) PromptForValue(message string, t TargetType) (any, error) {
	v, err := lookup(t)
	if err != nil {
		return nil, err
	}
	return v.promptAny(c, message)
}

// PromptForBoundedValue is PromptForValue plus an inclusive bounds check.
// A nil b, or a nil side of b, falls back to the type's natural range. Bool
// and Text accept only a nil b.
func (c *Console) PromptForBoundedValue(message string, t TargetType, b *Bounds) (any, error) {
	v, err := lookup(t)
	if err != nil {
		return nil, err
	}
	return v.promptBoundedAny(c, message, b)
}

func promptValue[T any](c *Console, message string, k kind[T]) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		if err := c.Print(message); err != nil {
			return zero, err
		}
		line, err := c.GetLine()
		if err != nil {
			debug.Error("console.promptValue", err, "type", k.typ, "attempt", attempt)
			return zero, err
		}
		v, err := k.parse(line)
		if err == nil {
			debug.Log("console.promptValue", "type", k.typ, "attempt", attempt, "result", "accepted")
			return v, nil
		}
		debug.Log("console.promptValue", "type", k.typ, "attempt", attempt, "result", rejection(err))
		if err := c.printError(err); err != nil {
			return zero, err
		}
	}
}

func promptBounded[T any](c *Console, message string, k kind[T], min, max T) (T, error) {
	var zero T
	if isNaN(min) || isNaN(max) || k.compare(min, max) > 0 {
		return zero, ErrInvalidBounds
	}
	for {
		v, err := promptValue(c, message, k)
		if err != nil {
			return zero, err
		}
		err = k.check(v, min, max)
		if err == nil {
			return v, nil
		}
		debug.Log("console.promptBounded", "type", k.typ, "min", k.format(min), "max", k.format(max), "result", rejection(err))
		if err := c.printError(err); err != nil {
			return zero, err
		}
	}
}

func rejection(err error) string {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Kind.String()
	}
	return "error"
}

// GetInt prompts for an int32.
func (c *Console) GetInt(message string) (int32, error) {
	return promptBounded(c, message, int32Kind, int32Kind.min, int32Kind.max)
}

// GetIntBetween prompts for an int32 in [min, max].
func (c *Console) GetIntBetween(message string, min, max int32) (int32, error) {
	return promptBounded(c, message, int32Kind, min, max)
}

// GetLong prompts for an int64.
func (c *Console) GetLong(message string) (int64, error) {
	return promptBounded(c, message, int64Kind, int64Kind.min, int64Kind.max)
}

// GetLongBetween prompts for an int64 in [min, max].
func (c *Console) GetLongBetween(message string, min, max int64) (int64, error) {
	return promptBounded(c, message, int64Kind, min, max)
}

// GetShort prompts for an int16.
func (c *Console) GetShort(message string) (int16, error) {
	return promptBounded(c, message, int16Kind, int16Kind.min, int16Kind.max)
}

// GetShortBetween prompts for an int16 in [min, max].
func (c *Console) GetShortBetween(message string, min, max int16) (int16, error) {
	return promptBounded(c, message, int16Kind, min, max)
}

// GetDouble prompts for a finite float64.
func (c *Console) GetDouble(message string) (float64, error) {
	return promptBounded(c, message, float64Kind, float64Kind.min, float64Kind.max)
}

// GetDoubleBetween prompts for a float64 in [min, max].
func (c *Console) GetDoubleBetween(message string, min, max float64) (float64, error) {
	return promptBounded(c, message, float64Kind, min, max)
}

// GetFloat prompts for a finite float32.
func (c *Console) GetFloat(message string) (float32, error) {
	return promptBounded(c, message, float32Kind, float32Kind.min, float32Kind.max)
}

// GetFloatBetween prompts for a float32 in [min, max].
func (c *Console) GetFloatBetween(message string, min, max float32) (float32, error) {
	return promptBounded(c, message, float32Kind, min, max)
}

// GetDecimal prompts for a decimal within [DecimalMin, DecimalMax].
func (c *Console) GetDecimal(message string) (decimal.Decimal, error) {
	return promptBounded(c, message, decimalKind, decimalKind.min, decimalKind.max)
}

// GetDecimalBetween prompts for a decimal in [min, max].
func (c *Console) GetDecimalBetween(message string, min, max decimal.Decimal) (decimal.Decimal, error) {
	return promptBounded(c, message, decimalKind, min, max)
}

// GetChar prompts for a single character.
func (c *Console) GetChar(message string) (rune, error) {
	return promptBounded(c, message, charKind, charKind.min, charKind.max)
}

// GetCharBetween prompts for a single character whose code point lies in
// [min, max].
func (c *Console) GetCharBetween(message string, min, max rune) (rune, error) {
	return promptBounded(c, message, charKind, min, max)
}

// GetBool prompts for "true" or "false".
func (c *Console) GetBool(message string) (bool, error) {
	return promptValue(c, message, boolKind)
}

// GetString prompts once and returns the raw line.
func (c *Console) GetString(message string) (string, error) {
	if err := c.Print(message); err != nil {
		return "", err
	}
	return c.GetLine()
}
