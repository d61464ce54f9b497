package main

import (
	_ "embed" // For embedding the window icon
	"log"

	"calculator/core"
	"calculator/ui"
)

//go:embed assets/calculator.svg
var appIconData []byte

// main is the application's entry point. It creates the AppController,
// builds the calculator window and runs the fyne event loop.
func main() {
	controller, err := core.NewAppController(appIconData)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	window := controller.UIService.NewMainWindow()

	app := ui.NewApp(window, controller)
	app.FinalizeFixedSize()
	window.CenterOnScreen()

	core.CheckIfAlreadyRunningUtil(controller)
	controller.ShowSettingsError()

	window.ShowAndRun()
	// The code below executes only after ShowAndRun() finishes.
	controller.GracefulExit()
}
