package core

import (
	"fmt"
	"log"

	"calculator/internal/dialogs"
)

// ShowSettingsError reports a settings.jsonc problem recorded at startup, if any.
func (ac *AppController) ShowSettingsError() {
	if ac.settingsErr == nil {
		return
	}
	message := fmt.Sprintf("Settings could not be applied:\n\n%s\n\nDefaults are used instead.", ac.settingsErr.Error())
	if ac.UIService != nil && ac.UIService.MainWindow != nil {
		dialogs.ShowError(ac.UIService.MainWindow, fmt.Errorf("%s", message))
	}
	log.Printf("SettingsError: %v", ac.settingsErr)
}

// ShowAlreadyRunning tells the user another instance is open.
func (ac *AppController) ShowAlreadyRunning() {
	if ac.UIService != nil && ac.UIService.MainWindow != nil {
		dialogs.ShowInfo(ac.UIService.MainWindow, "Information",
			"The calculator is already running. Use the existing window or close it before starting a new one.")
	}
}
