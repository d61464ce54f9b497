package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"calculator/core/calc"
	"calculator/internal/constants"
	"calculator/internal/debuglog"
	"calculator/internal/dialogs"
	"calculator/internal/styles"
)

// Labels of the non-digit buttons
const (
	labelClear     = "C"
	labelBackspace = "⌫"
	labelInvert    = "N"
	labelEquals    = "="
)

// errorDialogTitle is the title of every validation and evaluation dialog
const errorDialogTitle = "Informational"

// gridMask is the button layout, row by row.
var gridMask = [][]string{
	{labelClear, labelBackspace, "^", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{labelInvert, "0", ".", labelEquals},
}

func gridLog(level debuglog.Level, format string, args ...interface{}) {
	debuglog.Log("grid", level, debuglog.UseGlobal, format, args...)
}

// gridButton is a button with a fixed minimum size.
type gridButton struct {
	widget.Button
	minSize fyne.Size
}

func newGridButton(label string, size float32, tapped func()) *gridButton {
	b := &gridButton{minSize: fyne.NewSize(size, size)}
	b.Text = label
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

func (b *gridButton) MinSize() fyne.Size {
	return b.Button.MinSize().Max(b.minSize)
}

// ButtonsGrid owns the calculator state. Buttons and display keys are
// turned into intents and all go through Dispatch.
type ButtonsGrid struct {
	display *Display
	info    *Info
	window  fyne.Window

	state   calc.State
	buttons map[string]*gridButton
	content fyne.CanvasObject

	// showError presents a user-facing message; replaced in tests
	showError func(message string)
}

// NewButtonsGrid builds the grid and connects the display's key intents.
func NewButtonsGrid(display *Display, info *Info, window fyne.Window, buttonSize float32, base fyne.Theme) *ButtonsGrid {
	g := &ButtonsGrid{
		display: display,
		info:    info,
		window:  window,
		buttons: make(map[string]*gridButton),
	}
	g.showError = g.showErrorDialog
	g.makeGrid(buttonSize, base)
	return g
}

func (g *ButtonsGrid) makeGrid(buttonSize float32, base fyne.Theme) {
	g.display.OnIntent = g.Dispatch

	var cells []fyne.CanvasObject
	for _, row := range gridMask {
		for _, label := range row {
			in, ok := intentForLabel(label)
			if !ok {
				gridLog(debuglog.LevelWarn, "makeGrid: no intent for button %q", label)
				continue
			}
			button := newGridButton(label, buttonSize, func() { g.Dispatch(in) })
			if !calc.IsNumOrDot(label) {
				button.Importance = widget.HighImportance
			}
			g.buttons[label] = button
			cells = append(cells, button)
		}
	}

	grid := container.NewGridWithColumns(len(gridMask[0]), cells...)
	g.content = container.NewThemeOverride(grid, styles.WithTextSize(base, constants.MediumFontSize))
}

// intentForLabel maps a button label to the intent it produces.
func intentForLabel(label string) (calc.Intent, bool) {
	switch label {
	case labelClear:
		return calc.Clear, true
	case labelBackspace:
		return calc.Delete, true
	case labelInvert:
		return calc.Invert, true
	case labelEquals:
		return calc.Equals, true
	}
	if op, ok := calc.ParseOperator(label); ok {
		return calc.Op(op), true
	}
	if calc.IsNumOrDot(label) {
		return calc.Digit(label), true
	}
	return calc.Intent{}, false
}

// Dispatch runs one intent through the state machine and renders the result.
// Intents arriving while a dialog is open are dropped.
func (g *ButtonsGrid) Dispatch(in calc.Intent) {
	if g.dialogOpen() {
		gridLog(debuglog.LevelTrace, "Dispatch: %s %q ignored, dialog open", in.Kind, in.Text)
		return
	}
	next, eff := calc.Reduce(g.state, g.display.Text(), in)
	g.state = next

	g.display.SetText(eff.Display)
	if eff.InfoChanged {
		g.info.SetText(eff.Info)
	}
	gridLog(debuglog.LevelTrace, "Dispatch: %s %q -> left=%v op=%q equation=%q",
		in.Kind, in.Text, next.Left, next.Operator, next.Equation)

	if eff.Err != nil {
		gridLog(debuglog.LevelInfo, "Dispatch: %s rejected: %v", in.Kind, eff.Err)
		g.showError(calc.UserMessage(eff.Err))
	}
	g.display.Focus()
}

// State returns a copy of the calculator state.
func (g *ButtonsGrid) State() calc.State {
	return g.state
}

// CanvasObject returns the object to place in the window.
func (g *ButtonsGrid) CanvasObject() fyne.CanvasObject {
	return g.content
}

// dialogOpen reports whether an overlay (the error dialog) covers the window.
func (g *ButtonsGrid) dialogOpen() bool {
	return g.window != nil && g.window.Canvas().Overlays().Top() != nil
}

func (g *ButtonsGrid) showErrorDialog(message string) {
	if g.window == nil {
		return
	}
	dialogs.ShowCritical(g.window, errorDialogTitle, message, g.display.Focus)
}
