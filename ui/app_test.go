//go:build cgo

package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calculator/core"
	"calculator/core/calc"
	"calculator/core/settings"
)

// newTestApp builds the full window on a headless app and captures error
// messages instead of opening dialogs.
func newTestApp(t *testing.T) (*App, fyne.Window, *[]string) {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("Calculator")
	t.Cleanup(w.Close)

	app := NewApp(w, &core.AppController{Settings: settings.Default()})
	app.FinalizeFixedSize()

	var errs []string
	app.grid.showError = func(message string) { errs = append(errs, message) }
	return app, w, &errs
}

func tap(t *testing.T, app *App, labels ...string) {
	t.Helper()
	for _, label := range labels {
		b, ok := app.grid.buttons[label]
		require.True(t, ok, "no button %q", label)
		test.Tap(b)
	}
}

func TestAppLayout(t *testing.T) {
	app, w, _ := newTestApp(t)

	assert.True(t, w.FixedSize())
	assert.Equal(t, "Your account:", app.Info().Text())
	assert.Equal(t, "", app.Display().Text())
	assert.Len(t, app.grid.buttons, 20)
	assert.GreaterOrEqual(t, app.Display().MinSize().Width, float32(500))

	for label, b := range app.grid.buttons {
		assert.GreaterOrEqual(t, b.MinSize().Width, float32(75), label)
		if calc.IsNumOrDot(label) {
			assert.NotEqual(t, widget.HighImportance, b.Importance, label)
		} else {
			assert.Equal(t, widget.HighImportance, b.Importance, label)
		}
	}
}

func TestAppButtonsAddition(t *testing.T) {
	app, w, errs := newTestApp(t)

	tap(t, app, "5", "+")
	assert.Equal(t, "5 + ??", app.Info().Text())
	assert.Equal(t, "", app.Display().Text())

	tap(t, app, "3", "=")
	assert.Equal(t, "5 + 3 = 8", app.Info().Text())
	assert.Equal(t, "", app.Display().Text())
	assert.Empty(t, *errs)
	assert.Equal(t, app.Display(), w.Canvas().Focused())
}

func TestAppKeyboardPower(t *testing.T) {
	app, _, errs := newTestApp(t)

	test.Type(app.Display(), "2p10=")
	assert.Equal(t, "2 ^ 10 = 1024", app.Info().Text())
	assert.Empty(t, *errs)

	// Chained equals continues from the result
	test.Type(app.Display(), "2")
	app.Display().TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, "1024 ^ 2 = 1048576", app.Info().Text())
}

func TestAppDivisionByZero(t *testing.T) {
	app, _, errs := newTestApp(t)

	test.Type(app.Display(), "5/0=")
	assert.Equal(t, []string{"Undefined result"}, *errs)
	assert.Equal(t, "5 / 0 = Error", app.Info().Text())
	assert.True(t, app.Grid().State().Idle())
}

func TestAppKeysDoNotEditText(t *testing.T) {
	app, _, _ := newTestApp(t)

	test.Type(app.Display(), "12ab 3..4")
	assert.Equal(t, "123.4", app.Display().Text())

	app.Display().TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "123.", app.Display().Text())

	clipboard := fyne.CurrentApp().Clipboard()
	clipboard.SetContent("999")
	app.Display().TypedShortcut(&fyne.ShortcutPaste{Clipboard: clipboard})
	assert.Equal(t, "123.", app.Display().Text())

	app.Display().TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, "", app.Display().Text())
}

func TestAppClearErrors(t *testing.T) {
	app, _, errs := newTestApp(t)

	tap(t, app, "C")
	assert.Equal(t, []string{"No numbers to clear"}, *errs)

	tap(t, app, "+", "=")
	assert.Equal(t, []string{"No numbers to clear", "You didn't select numbers", "You didn't select a number"}, *errs)
	assert.True(t, app.Grid().State().Idle())
}

func TestAppInvert(t *testing.T) {
	app, _, errs := newTestApp(t)

	tap(t, app, "N")
	assert.Equal(t, "", app.Display().Text())

	tap(t, app, "4", "N")
	assert.Equal(t, "-4", app.Display().Text())
	tap(t, app, "*", "2", "=")
	assert.Equal(t, "-4 * 2 = -8", app.Info().Text())
	assert.Empty(t, *errs)
}

func TestAppCopyShortcut(t *testing.T) {
	app, _, _ := newTestApp(t)
	test.Type(app.Display(), "42")

	clipboard := fyne.CurrentApp().Clipboard()
	app.Display().TypedShortcut(&fyne.ShortcutCopy{Clipboard: clipboard})
	assert.Equal(t, "42", clipboard.Content())
}

func TestAppErrorDialog(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("Calculator")
	t.Cleanup(w.Close)
	app := NewApp(w, &core.AppController{Settings: settings.Default()})
	app.FinalizeFixedSize()

	require.Nil(t, w.Canvas().Overlays().Top())
	app.Grid().Dispatch(calc.Equals)
	top := w.Canvas().Overlays().Top()
	require.NotNil(t, top, "error dialog should be shown")

	w.Canvas().Overlays().Remove(top)
}

func TestAppInputIgnoredWhileDialogOpen(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("Calculator")
	t.Cleanup(w.Close)
	app := NewApp(w, &core.AppController{Settings: settings.Default()})
	app.FinalizeFixedSize()

	app.Grid().Dispatch(calc.Equals)
	top := w.Canvas().Overlays().Top()
	require.NotNil(t, top)
	info := app.Info().Text()

	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyReturn})
	w.Canvas().OnTypedRune()('7')
	w.Canvas().OnTypedRune()('+')
	app.Display().TypedRune('8')
	tap(t, app, "9")

	assert.Len(t, w.Canvas().Overlays().List(), 1, "no further dialog stacked")
	assert.Equal(t, top, w.Canvas().Overlays().Top())
	assert.Equal(t, "", app.Display().Text())
	assert.Equal(t, info, app.Info().Text())
	assert.True(t, app.Grid().State().Idle())

	w.Canvas().Overlays().Remove(top)
	w.Canvas().OnTypedRune()('7')
	assert.Equal(t, "7", app.Display().Text())
}

func TestAppCanvasForwardsKeys(t *testing.T) {
	app, w, _ := newTestApp(t)
	w.Canvas().Unfocus()

	w.Canvas().OnTypedRune()('9')
	assert.Equal(t, "9", app.Display().Text())
}
