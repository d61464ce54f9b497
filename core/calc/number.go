// Package calc implements the calculator's pending-binary-operation state
// machine. It has no UI dependencies: the ui package feeds it intents and the
// current display text, and writes the returned effects back to its widgets.
package calc

import (
	"math"
	"regexp"
	"strconv"
)

// numberPattern accepts an optional leading minus, digits and at most one dot.
// A lone dot is not a number.
var numberPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

// numOrDotPattern matches a single digit or dot, the only text a digit intent may carry.
var numOrDotPattern = regexp.MustCompile(`^[0-9.]$`)

// Number is a calculator operand or result.
type Number struct {
	value float64
}

// NewNumber wraps a float64.
func NewNumber(v float64) Number {
	return Number{value: v}
}

// ParseNumber parses display text into a Number.
func ParseNumber(text string) (Number, error) {
	if !numberPattern.MatchString(text) {
		return Number{}, newUserError(ErrInvalidInput, "invalid number")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Number{}, newUserError(ErrInvalidInput, "invalid number")
	}
	return Number{value: v}, nil
}

// IsValidNumber reports whether text parses as a Number.
func IsValidNumber(text string) bool {
	_, err := ParseNumber(text)
	return err == nil
}

// IsNumOrDot reports whether text is exactly one digit or a dot.
func IsNumOrDot(text string) bool {
	return numOrDotPattern.MatchString(text)
}

// Float returns the underlying value.
func (n Number) Float() float64 {
	return n.value
}

// IsInteger reports whether n has no fractional part.
func (n Number) IsInteger() bool {
	return !math.IsInf(n.value, 0) && !math.IsNaN(n.value) && n.value == math.Trunc(n.value)
}

// Negate returns -n. Zero stays unsigned so it prints as "0".
func (n Number) Negate() Number {
	if n.value == 0 {
		return Number{}
	}
	return Number{value: -n.value}
}

// String renders integers without a fractional part and everything else in
// the shortest form that parses back to the same value. Exponent notation is
// never used, so the result is always valid display text.
func (n Number) String() string {
	if n.value == 0 {
		return "0"
	}
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}
