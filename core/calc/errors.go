package calc

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingOperator = errors.New("missing operator")
	ErrMissingOperand  = errors.New("missing operand")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrOverflow        = errors.New("overflow")
	ErrUndefined       = errors.New("undefined result")
)

// User-facing messages.
const (
	MsgNothingToClear   = "No numbers to clear"
	MsgNoNumbers        = "You didn't select numbers"
	MsgNoNumber         = "You didn't select a number"
	MsgSelectOperator   = "Select a operator"
	MsgUndefinedResult  = "Undefined result"
	MsgOverflow         = "Pop"
	msgUnknownOperator  = "Unknown operator"
	msgDefaultUserError = "Something went wrong"
)

// UserError pairs an error kind with the message shown to the user.
type UserError struct {
	Kind    error
	Message string
}

func newUserError(kind error, message string) *UserError {
	return &UserError{Kind: kind, Message: message}
}

func (e *UserError) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *UserError) Unwrap() error {
	return e.Kind
}

// UserMessage returns the text to show for err.
func UserMessage(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	if err == nil {
		return ""
	}
	return msgDefaultUserError
}
