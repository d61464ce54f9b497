package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"calculator/internal/constants"
	"calculator/internal/styles"
)

// Info is the small right-aligned label above the display showing the
// pending equation or the last result.
type Info struct {
	label   *widget.Label
	content fyne.CanvasObject
}

// NewInfo creates the label with its initial text, drawn at the small font
// size on top of base.
func NewInfo(text string, base fyne.Theme) *Info {
	label := widget.NewLabel(text)
	label.Alignment = fyne.TextAlignTrailing
	label.Truncation = fyne.TextTruncateEllipsis

	return &Info{
		label:   label,
		content: container.NewThemeOverride(label, styles.WithTextSize(base, constants.SmallFontSize)),
	}
}

// Text returns the label text.
func (i *Info) Text() string {
	return i.label.Text
}

// SetText replaces the label text.
func (i *Info) SetText(text string) {
	i.label.SetText(text)
}

// CanvasObject returns the object to place in the window.
func (i *Info) CanvasObject() fyne.CanvasObject {
	return i.content
}
