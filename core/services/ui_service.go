package services

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"calculator/internal/constants"
	"calculator/internal/styles"
)

// UIService owns the fyne application, its main window and the icon.
type UIService struct {
	Application fyne.App
	MainWindow  fyne.Window
	AppIcon     fyne.Resource
	Theme       fyne.Theme
}

// NewUIService creates the fyne application with the given icon and theme name.
func NewUIService(appIconData []byte, themeName string) *UIService {
	log.Println("UIService: Initializing Fyne application...")
	return NewUIServiceWithApp(app.NewWithID(constants.AppID), appIconData, themeName)
}

// NewUIServiceWithApp wires an existing application, e.g. a test app.
func NewUIServiceWithApp(a fyne.App, appIconData []byte, themeName string) *UIService {
	ui := &UIService{
		Application: a,
		Theme:       styles.NewTheme(themeName),
	}
	if len(appIconData) > 0 {
		ui.AppIcon = fyne.NewStaticResource("calculator.svg", appIconData)
		ui.Application.SetIcon(ui.AppIcon)
	}
	ui.Application.Settings().SetTheme(ui.Theme)
	return ui
}

// NewMainWindow creates the titled main window.
func (ui *UIService) NewMainWindow() fyne.Window {
	ui.MainWindow = ui.Application.NewWindow(constants.AppTitle)
	if ui.AppIcon != nil {
		ui.MainWindow.SetIcon(ui.AppIcon)
	}
	return ui.MainWindow
}
