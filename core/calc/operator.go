package calc

import "math"

// Operator is a binary operator symbol.
type Operator string

const (
	OpNone     Operator = ""
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpPower    Operator = "^"
)

// ParseOperator maps a key or button symbol to an Operator. "p" and "P" are
// the keyboard spelling of the exponent.
func ParseOperator(symbol string) (Operator, bool) {
	switch symbol {
	case "+":
		return OpAdd, true
	case "-":
		return OpSubtract, true
	case "*":
		return OpMultiply, true
	case "/":
		return OpDivide, true
	case "^", "p", "P":
		return OpPower, true
	}
	return OpNone, false
}

// Evaluate applies op to left and right.
func Evaluate(left Number, op Operator, right Number) (Number, error) {
	l, r := left.value, right.value
	var result float64

	switch op {
	case OpAdd:
		result = l + r
	case OpSubtract:
		result = l - r
	case OpMultiply:
		result = l * r
	case OpDivide:
		if r == 0 {
			return Number{}, newUserError(ErrDivisionByZero, MsgUndefinedResult)
		}
		result = l / r
	case OpPower:
		if l == 0 && r < 0 {
			return Number{}, newUserError(ErrUndefined, MsgUndefinedResult)
		}
		result = math.Pow(l, r)
	default:
		return Number{}, newUserError(ErrMissingOperator, msgUnknownOperator)
	}

	switch {
	case math.IsNaN(result):
		return Number{}, newUserError(ErrUndefined, MsgUndefinedResult)
	case math.IsInf(result, 0):
		return Number{}, newUserError(ErrOverflow, MsgOverflow)
	}
	return Number{value: result}, nil
}
