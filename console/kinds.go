package console

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Bounds is an inclusive [Min, Max] range for an ordered TargetType. Each
// side must hold the target's Go type (int32 for Int32, rune for Char,
// decimal.Decimal for Decimal, ...); a nil side uses the type's default.
type Bounds struct {
	Min any
	Max any
}

var (
	// DecimalMax is the largest value accepted for Decimal, 2^96-1.
	DecimalMax = decimal.RequireFromString("79228162514264337593543950335")
	// DecimalMin is the smallest value accepted for Decimal.
	DecimalMin = DecimalMax.Neg()
)

const (
	// decimalDigits is the number of integer digits in DecimalMax.
	decimalDigits = 29
	// decimalScale is the number of fractional digits kept for Decimal.
	decimalScale = 28
)

// kind is the capability set of one TargetType.
type kind[T any] struct {
	typ     TargetType
	parse   func(string) (T, error)
	format  func(T) string
	compare func(a, b T) int // nil for unordered types
	min     T
	max     T
}

var (
	int32Kind = kind[int32]{
		typ: Int32, parse: parseSigned[int32](Int32, 32), format: formatSigned[int32],
		compare: cmp.Compare[int32], min: math.MinInt32, max: math.MaxInt32,
	}
	int64Kind = kind[int64]{
		typ: Int64, parse: parseSigned[int64](Int64, 64), format: formatSigned[int64],
		compare: cmp.Compare[int64], min: math.MinInt64, max: math.MaxInt64,
	}
	int16Kind = kind[int16]{
		typ: Int16, parse: parseSigned[int16](Int16, 16), format: formatSigned[int16],
		compare: cmp.Compare[int16], min: math.MinInt16, max: math.MaxInt16,
	}
	float64Kind = kind[float64]{
		typ: Float64, parse: parseReal[float64](Float64, 64), format: formatReal[float64](64),
		compare: cmp.Compare[float64], min: -math.MaxFloat64, max: math.MaxFloat64,
	}
	float32Kind = kind[float32]{
		typ: Float32, parse: parseReal[float32](Float32, 32), format: formatReal[float32](32),
		compare: cmp.Compare[float32], min: -math.MaxFloat32, max: math.MaxFloat32,
	}
	decimalKind = kind[decimal.Decimal]{
		typ: Decimal, parse: parseDecimal, format: decimal.Decimal.String,
		compare: decimal.Decimal.Cmp, min: DecimalMin, max: DecimalMax,
	}
	charKind = kind[rune]{
		typ: Char, parse: parseChar, format: func(r rune) string { return string(r) },
		compare: cmp.Compare[rune], min: 0, max: unicode.MaxRune,
	}
	boolKind = kind[bool]{
		typ: Bool, parse: parseBool, format: strconv.FormatBool,
	}
	textKind = kind[string]{
		typ: Text, parse: func(s string) (string, error) { return s, nil },
		format: func(s string) string { return s },
	}
)

// variant erases T so kinds can be looked up by TargetType.
type variant interface {
	parseAny(text string) (any, error)
	formatAny(v any) (string, error)
	defaultBounds() (Bounds, bool)
	promptAny(c *Console, message string) (any, error)
	promptBoundedAny(c *Console, message string, b *Bounds) (any, error)
}

var variants = map[TargetType]variant{
	Int32:   int32Kind,
	Int64:   int64Kind,
	Int16:   int16Kind,
	Float64: float64Kind,
	Float32: float32Kind,
	Decimal: decimalKind,
	Char:    charKind,
	Bool:    boolKind,
	Text:    textKind,
}

func lookup(t TargetType) (variant, error) {
	v, ok := variants[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return v, nil
}

// Parse converts text to a value of t. Rejections are *InputError values
// classified as format or overflow errors.
func Parse(t TargetType, text string) (any, error) {
	v, err := lookup(t)
	if err != nil {
		return nil, err
	}
	return v.parseAny(text)
}

// Format renders a value of t the way it appears in bounds messages.
func Format(t TargetType, value any) (string, error) {
	v, err := lookup(t)
	if err != nil {
		return "", err
	}
	return v.formatAny(value)
}

// DefaultBounds returns the natural range of t. The second result is false
// for unordered types.
func DefaultBounds(t TargetType) (Bounds, bool) {
	v, err := lookup(t)
	if err != nil {
		return Bounds{}, false
	}
	return v.defaultBounds()
}

func (k kind[T]) ordered() bool {
	return k.compare != nil
}

func (k kind[T]) parseAny(text string) (any, error) {
	v, err := k.parse(text)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (k kind[T]) formatAny(value any) (string, error) {
	v, ok := value.(T)
	if !ok {
		return "", fmt.Errorf("%T is not a %s value", value, k.typ)
	}
	return k.format(v), nil
}

func (k kind[T]) defaultBounds() (Bounds, bool) {
	if !k.ordered() {
		return Bounds{}, false
	}
	return Bounds{Min: k.min, Max: k.max}, true
}

func (k kind[T]) promptAny(c *Console, message string) (any, error) {
	v, err := promptValue(c, message, k)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (k kind[T]) promptBoundedAny(c *Console, message string, b *Bounds) (any, error) {
	if !k.ordered() {
		if b != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnorderedType, k.typ)
		}
		return k.promptAny(c, message)
	}
	min, max, err := k.resolve(b)
	if err != nil {
		return nil, err
	}
	v, err := promptBounded(c, message, k, min, max)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// resolve fills unset sides of b with the type's defaults.
func (k kind[T]) resolve(b *Bounds) (T, T, error) {
	min, max := k.min, k.max
	if b == nil {
		return min, max, nil
	}
	if b.Min != nil {
		v, ok := b.Min.(T)
		if !ok {
			return min, max, fmt.Errorf("%w: min is %T, want %s", ErrBoundsType, b.Min, k.typ)
		}
		min = v
	}
	if b.Max != nil {
		v, ok := b.Max.(T)
		if !ok {
			return min, max, fmt.Errorf("%w: max is %T, want %s", ErrBoundsType, b.Max, k.typ)
		}
		max = v
	}
	return min, max, nil
}

// check returns a bounds InputError if v lies outside [min, max].
func (k kind[T]) check(v, min, max T) error {
	if k.compare(v, min) < 0 || k.compare(v, max) > 0 {
		return &InputError{
			Kind:  BoundsError,
			Type:  k.typ,
			Input: k.format(v),
			Min:   k.format(min),
			Max:   k.format(max),
		}
	}
	return nil
}

func numberError(t TargetType, input string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return overflowError(t, input)
	}
	return formatError(t, input)
}

func parseSigned[T int16 | int32 | int64](t TargetType, bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
		if err != nil {
			return 0, numberError(t, s, err)
		}
		return T(n), nil
	}
}

func formatSigned[T int16 | int32 | int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// parseReal accepts NaN and ±Inf; the default bounds reject them.
func parseReal[T float32 | float64](t TargetType, bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), bits)
		if err != nil {
			return 0, numberError(t, s, err)
		}
		return T(f), nil
	}
}

func formatReal[T float32 | float64](bits int) func(T) string {
	return func(v T) string {
		return strconv.FormatFloat(float64(v), 'g', -1, bits)
	}
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, formatError(Decimal, s)
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	// |d| lies in [10^(mag-1), 10^mag). Must be checked before Round or Cmp,
	// which rescale to the exponent.
	mag := int64(d.NumDigits()) + int64(d.Exponent())
	if mag > decimalDigits {
		return decimal.Zero, overflowError(Decimal, s)
	}
	if mag <= -decimalScale {
		return decimal.Zero, nil
	}
	d = d.Round(decimalScale)
	if d.Abs().GreaterThan(DecimalMax) {
		return decimal.Zero, overflowError(Decimal, s)
	}
	return d, nil
}

// parseChar requires exactly one rune; the line is not trimmed so that a
// space can be entered.
func parseChar(s string) (rune, error) {
	if !utf8.ValidString(s) || utf8.RuneCountInString(s) != 1 {
		return 0, formatError(Char, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// parseBool accepts only "true" and "false", ignoring case.
func parseBool(s string) (bool, error) {
	switch v := strings.TrimSpace(s); {
	case strings.EqualFold(v, "true"):
		return true, nil
	case strings.EqualFold(v, "false"):
		return false, nil
	}
	return false, formatError(Bool, s)
}

// isNaN reports whether v is a floating-point NaN.
func isNaN[T any](v T) bool {
	switch f := any(v).(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}
