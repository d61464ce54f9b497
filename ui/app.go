package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"calculator/core"
)

// App is the calculator window: info label, display and button grid
// stacked vertically in a window that cannot be resized.
type App struct {
	window fyne.Window
	stack  *fyne.Container

	info    *Info
	display *Display
	grid    *ButtonsGrid
}

// NewApp builds the calculator inside window using controller's settings.
func NewApp(window fyne.Window, controller *core.AppController) *App {
	s := controller.Settings
	base := fyne.CurrentApp().Settings().Theme()

	app := &App{
		window: window,
		stack:  container.NewVBox(),
	}

	app.info = NewInfo(s.InfoText, base)
	app.AddWidget(app.info.CanvasObject())

	app.display = NewDisplay(s.MinimumWidth)
	app.AddWidget(app.display)

	app.grid = NewButtonsGrid(app.display, app.info, window, s.ButtonSize, base)
	app.AddWidget(app.grid.CanvasObject())

	// Keys typed while nothing has focus still reach the display
	window.Canvas().SetOnTypedKey(app.display.TypedKey)
	window.Canvas().SetOnTypedRune(app.display.TypedRune)

	return app
}

// AddWidget appends obj to the bottom of the vertical stack.
func (a *App) AddWidget(obj fyne.CanvasObject) {
	a.stack.Add(obj)
}

// FinalizeFixedSize sets the stack as window content, shrinks the window to
// fit it and locks the size. Call it after the last AddWidget.
func (a *App) FinalizeFixedSize() {
	a.window.SetContent(a.stack)
	a.window.Resize(a.stack.MinSize())
	a.window.SetFixedSize(true)
	a.display.Focus()
}

// Display returns the number display.
func (a *App) Display() *Display {
	return a.display
}

// Info returns the equation label.
func (a *App) Info() *Info {
	return a.info
}

// Grid returns the button grid.
func (a *App) Grid() *ButtonsGrid {
	return a.grid
}
