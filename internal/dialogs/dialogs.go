package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewCritical builds a modal message dialog with the error icon.
// onClosed, if not nil, runs after the user dismisses it.
func NewCritical(window fyne.Window, title, message string, onClosed func()) dialog.Dialog {
	icon := widget.NewIcon(theme.ErrorIcon())
	text := widget.NewLabel(message)
	text.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(title, "OK", container.NewBorder(nil, nil, icon, nil, text), window)
	if onClosed != nil {
		d.SetOnClosed(onClosed)
	}
	return d
}

// ShowCritical shows a critical message dialog. It must be called on the UI
// thread.
func ShowCritical(window fyne.Window, title, message string, onClosed func()) {
	NewCritical(window, title, message, onClosed).Show()
}

// ShowError shows an error dialog to the user
func ShowError(window fyne.Window, err error) {
	fyne.Do(func() {
		dialog.ShowError(err, window)
	})
}

// ShowInfo shows an information dialog to the user
func ShowInfo(window fyne.Window, title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, window)
	})
}
