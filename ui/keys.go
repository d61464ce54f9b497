package ui

import (
	"strings"

	"fyne.io/fyne/v2"

	"calculator/core/calc"
)

// operatorRunes are the keyboard operators; p and P type the exponent.
const operatorRunes = "-+/*pP"

// classifyKey maps the named, non-printable keys the display reacts to.
func classifyKey(name fyne.KeyName) (calc.Intent, bool) {
	switch name {
	case fyne.KeyReturn, fyne.KeyEnter:
		return calc.Equals, true
	case fyne.KeyBackspace, fyne.KeyDelete:
		return calc.Delete, true
	case fyne.KeyEscape:
		return calc.Clear, true
	}
	return calc.Intent{}, false
}

// classifyRune maps typed characters, first match wins: "=", operators,
// whitespace (ignored), then a single digit or dot.
func classifyRune(r rune) (calc.Intent, bool) {
	text := string(r)
	switch {
	case r == '=':
		return calc.Equals, true
	case strings.ContainsRune(operatorRunes, r):
		op, _ := calc.ParseOperator(text)
		return calc.Op(op), true
	case strings.TrimSpace(text) == "":
		return calc.Intent{}, false
	case calc.IsNumOrDot(text):
		return calc.Digit(text), true
	}
	return calc.Intent{}, false
}
