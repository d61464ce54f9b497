package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"calculator/core/calc"
	"calculator/internal/constants"
)

// Display is the read-only, right-aligned number field. It takes keyboard
// focus but never edits itself from key input: every key is classified and
// handed to OnIntent instead.
type Display struct {
	widget.BaseWidget

	// OnIntent receives every classified key press.
	OnIntent func(calc.Intent)

	text     string
	focused  bool
	minWidth float32
	fontSize float32
	margin   float32
}

var (
	_ fyne.Focusable     = (*Display)(nil)
	_ fyne.Tappable      = (*Display)(nil)
	_ fyne.Shortcutable  = (*Display)(nil)
	_ desktop.Cursorable = (*Display)(nil)
)

// NewDisplay creates an empty display at least minWidth wide.
func NewDisplay(minWidth float32) *Display {
	d := &Display{
		minWidth: minWidth,
		fontSize: constants.BigFontSize,
		margin:   constants.TextMargin,
	}
	d.ExtendBaseWidget(d)
	return d
}

// Text returns the current display text.
func (d *Display) Text() string {
	return d.text
}

// SetText replaces the display content.
func (d *Display) SetText(text string) {
	if d.text == text {
		return
	}
	d.text = text
	d.Refresh()
}

// Clear empties the display.
func (d *Display) Clear() {
	d.SetText("")
}

// Insert appends text at the end; the display has no movable cursor.
func (d *Display) Insert(text string) {
	d.SetText(d.text + text)
}

// Backspace removes the last character.
func (d *Display) Backspace() {
	r := []rune(d.text)
	if len(r) == 0 {
		return
	}
	d.SetText(string(r[:len(r)-1]))
}

// Focus asks the window holding the display to give it keyboard focus.
// It is a no-op while the display is not on a canvas.
func (d *Display) Focus() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	if c := app.Driver().CanvasForObject(d); c != nil {
		c.Focus(d)
	}
}

// Focused reports whether the display currently has keyboard focus.
func (d *Display) Focused() bool {
	return d.focused
}

func (d *Display) FocusGained() {
	d.focused = true
	d.Refresh()
}

func (d *Display) FocusLost() {
	d.focused = false
	d.Refresh()
}

// TypedKey handles non-printable keys. Printable keys also arrive through
// TypedRune and are classified there, so they are ignored here.
func (d *Display) TypedKey(ev *fyne.KeyEvent) {
	if in, ok := classifyKey(ev.Name); ok {
		d.emit(in)
	}
}

func (d *Display) TypedRune(r rune) {
	if in, ok := classifyRune(r); ok {
		d.emit(in)
	}
}

// TypedShortcut allows copying the value out; paste and cut are swallowed.
func (d *Display) TypedShortcut(s fyne.Shortcut) {
	if cp, ok := s.(*fyne.ShortcutCopy); ok && cp.Clipboard != nil {
		cp.Clipboard.SetContent(d.text)
	}
}

func (d *Display) Tapped(*fyne.PointEvent) {
	d.Focus()
}

func (d *Display) Cursor() desktop.Cursor {
	return desktop.DefaultCursor
}

func (d *Display) emit(in calc.Intent) {
	if d.OnIntent != nil {
		d.OnIntent(in)
	}
}

func (d *Display) CreateRenderer() fyne.WidgetRenderer {
	r := &displayRenderer{
		display:   d,
		bg:        canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)),
		underline: canvas.NewRectangle(theme.Color(theme.ColorNameInputBorder)),
		text:      canvas.NewText(d.text, theme.Color(theme.ColorNameForeground)),
	}
	r.bg.CornerRadius = theme.InputRadiusSize()
	r.text.Alignment = fyne.TextAlignTrailing
	r.text.TextSize = d.fontSize
	r.objects = []fyne.CanvasObject{r.bg, r.underline, r.text}
	r.Refresh()
	return r
}

type displayRenderer struct {
	display   *Display
	bg        *canvas.Rectangle
	underline *canvas.Rectangle
	text      *canvas.Text
	objects   []fyne.CanvasObject
}

func (r *displayRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	border := theme.InputBorderSize() * 2
	r.underline.Resize(fyne.NewSize(size.Width, border))
	r.underline.Move(fyne.NewPos(0, size.Height-border))

	textMin := r.text.MinSize()
	m := r.display.margin
	r.text.Resize(fyne.NewSize(size.Width-2*m, textMin.Height))
	r.text.Move(fyne.NewPos(m, (size.Height-textMin.Height)/2))
}

func (r *displayRenderer) MinSize() fyne.Size {
	textMin := r.text.MinSize()
	m := r.display.margin
	width := textMin.Width + 2*m
	if width < r.display.minWidth {
		width = r.display.minWidth
	}
	height := textMin.Height + 2*m
	if h := r.display.fontSize * 2; height < h {
		height = h
	}
	return fyne.NewSize(width, height)
}

func (r *displayRenderer) Refresh() {
	r.text.Text = r.display.text
	r.text.Color = theme.Color(theme.ColorNameForeground)
	r.bg.FillColor = theme.Color(theme.ColorNameInputBackground)
	if r.display.focused {
		r.underline.FillColor = theme.Color(theme.ColorNamePrimary)
	} else {
		r.underline.FillColor = theme.Color(theme.ColorNameInputBorder)
	}
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *displayRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *displayRenderer) Destroy() {}
