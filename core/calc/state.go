package calc

import "fmt"

// IntentKind enumerates normalised user actions.
type IntentKind int

const (
	IntentDigit IntentKind = iota
	IntentDelete
	IntentClear
	IntentOperator
	IntentInvert
	IntentEquals
)

func (k IntentKind) String() string {
	switch k {
	case IntentDigit:
		return "digit"
	case IntentDelete:
		return "delete"
	case IntentClear:
		return "clear"
	case IntentOperator:
		return "operator"
	case IntentInvert:
		return "invert"
	case IntentEquals:
		return "equals"
	}
	return fmt.Sprintf("IntentKind(%d)", int(k))
}

// Intent is a user action decoupled from the key or button that produced it.
// Text carries the digit for IntentDigit and the symbol for IntentOperator.
type Intent struct {
	Kind IntentKind
	Text string
}

// Digit returns a digit/dot intent.
func Digit(text string) Intent { return Intent{Kind: IntentDigit, Text: text} }

// Op returns an operator intent.
func Op(op Operator) Intent { return Intent{Kind: IntentOperator, Text: string(op)} }

// Delete, Clear, Invert and Equals carry no payload.
var (
	Delete = Intent{Kind: IntentDelete}
	Clear  = Intent{Kind: IntentClear}
	Invert = Intent{Kind: IntentInvert}
	Equals = Intent{Kind: IntentEquals}
)

// ErrorResult is the sentinel written in place of a failed evaluation.
const ErrorResult = "Error"

// State is the calculator's whole memory. The zero value is Idle.
type State struct {
	Left     *Number
	Operator Operator
	Right    *Number
	Equation string
}

// Idle reports whether no left operand is held.
func (s State) Idle() bool {
	return s.Left == nil
}

// Effect is what the UI must apply after an intent. Display is always the
// full new display text. Info is only meaningful when InfoChanged is set.
// Err, when non-nil, must be shown to the user.
type Effect struct {
	Display     string
	Info        string
	InfoChanged bool
	Err         error
}

// Reduce applies in to s given the current display text and returns the next
// state together with the effect to render. s is never modified in place.
func Reduce(s State, display string, in Intent) (State, Effect) {
	switch in.Kind {
	case IntentDigit:
		return insertDigit(s, display, in.Text)
	case IntentDelete:
		return s, Effect{Display: backspace(display)}
	case IntentClear:
		return clearAll(s, display)
	case IntentOperator:
		return chooseOperator(s, display, in.Text)
	case IntentInvert:
		return invert(s, display)
	case IntentEquals:
		return equals(s, display)
	}
	return s, Effect{Display: display}
}

func insertDigit(s State, display, text string) (State, Effect) {
	if !IsNumOrDot(text) {
		return s, Effect{Display: display}
	}
	candidate := display + text
	if !IsValidNumber(candidate) {
		return s, Effect{Display: display}
	}
	return s, Effect{Display: candidate}
}

func backspace(display string) string {
	r := []rune(display)
	if len(r) == 0 {
		return display
	}
	return string(r[:len(r)-1])
}

func invert(s State, display string) (State, Effect) {
	n, err := ParseNumber(display)
	if err != nil {
		return s, Effect{Display: display}
	}
	return s, Effect{Display: n.Negate().String()}
}

func clearAll(s State, display string) (State, Effect) {
	if !IsValidNumber(display) && s.Left == nil {
		return s, Effect{Display: display, Err: newUserError(ErrMissingOperand, MsgNothingToClear)}
	}
	next := s
	next.Left = nil
	next.Right = nil
	next.Operator = OpNone
	return next, Effect{Display: ""}
}

func chooseOperator(s State, display, symbol string) (State, Effect) {
	op, ok := ParseOperator(symbol)
	if !ok {
		return s, Effect{Display: display}
	}
	n, err := ParseNumber(display)
	if err != nil && s.Left == nil {
		return s, Effect{Display: display, Err: newUserError(ErrMissingOperand, MsgNoNumbers)}
	}

	next := s
	// An operator pressed while Left is held only replaces the operator.
	if next.Left == nil {
		next.Left = &n
	}
	next.Operator = op
	next.Equation = fmt.Sprintf("%s %s ??", next.Left, next.Operator)
	return next, Effect{Display: "", Info: next.Equation, InfoChanged: true}
}

func equals(s State, display string) (State, Effect) {
	right, err := ParseNumber(display)
	if err != nil {
		return s, Effect{Display: display, Err: newUserError(ErrInvalidInput, MsgNoNumber)}
	}
	if s.Left == nil || s.Operator == OpNone {
		return s, Effect{Display: display, Err: newUserError(ErrMissingOperator, MsgSelectOperator)}
	}

	next := s
	next.Right = &right
	next.Equation = fmt.Sprintf("%s %s %s", next.Left, next.Operator, next.Right)

	result, evalErr := Evaluate(*next.Left, next.Operator, right)
	resultText := ErrorResult
	if evalErr == nil {
		resultText = result.String()
	}

	eff := Effect{
		Display:     "",
		Info:        fmt.Sprintf("%s = %s", next.Equation, resultText),
		InfoChanged: true,
		Err:         evalErr,
	}

	next.Right = nil
	if evalErr != nil {
		next.Left = nil
		next.Operator = OpNone
	} else {
		next.Left = &result
	}
	return next, eff
}
