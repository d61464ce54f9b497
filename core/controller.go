// Package core wires the application together: paths and log file, user
// settings, the fyne application and the startup checks.
package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"calculator/core/services"
	"calculator/core/settings"
	"calculator/internal/constants"
	"calculator/internal/debuglog"
	"calculator/internal/platform"
	"calculator/internal/process"
)

// AppController - the main structure holding application-wide state.
type AppController struct {
	FileService *services.FileService
	UIService   *services.UIService
	Settings    settings.Settings

	// settingsErr is kept until the main window exists to report it
	settingsErr error
}

// NewAppController resolves paths, opens the log file, loads settings and
// creates the fyne application.
func NewAppController(appIconData []byte) (*AppController, error) {
	fileService, err := services.NewFileService()
	if err != nil {
		return nil, fmt.Errorf("NewAppController: %w", err)
	}
	if err := fileService.OpenLogFile(debuglog.ShouldLog(debuglog.LevelVerbose, debuglog.UseGlobal)); err != nil {
		return nil, fmt.Errorf("NewAppController: %w", err)
	}
	log.Printf("Application initializing (version %s)...", constants.AppVersion)

	if err := platform.SetAppUserModelID(constants.AppUserModelID); err != nil {
		log.Printf("NewAppController: %v", err)
	}

	ac := newAppController(fileService)
	ac.UIService = services.NewUIService(appIconData, ac.Settings.Theme)
	return ac, nil
}

// newAppController loads settings for fileService; the UI service is left to
// the caller so tests can supply a headless application.
func newAppController(fileService *services.FileService) *AppController {
	ac := &AppController{FileService: fileService}
	s, err := settings.Load(fileService.SettingsPath)
	if err != nil {
		log.Printf("NewAppController: settings error, using defaults: %v", err)
		ac.settingsErr = err
	} else {
		debuglog.Log("core", debuglog.LevelVerbose, debuglog.UseGlobal,
			"settings loaded: theme=%s minimum_width=%.0f button_size=%.0f", s.Theme, s.MinimumWidth, s.ButtonSize)
	}
	ac.Settings = s
	return ac
}

// CheckIfAlreadyRunningUtil tells the user when another instance of this
// executable is running.
func CheckIfAlreadyRunningUtil(ac *AppController) {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("CheckIfAlreadyRunning: cannot detect executable path: %v", err)
		return
	}
	others, err := process.FindOtherInstances(filepath.Base(execPath), os.Getpid())
	if err != nil {
		log.Printf("CheckIfAlreadyRunning: error listing processes: %v", err)
		return
	}
	if len(others) > 0 {
		log.Printf("CheckIfAlreadyRunning: found %d other instance(s), first PID %d", len(others), others[0].PID)
		ac.ShowAlreadyRunning()
	}
}

// GracefulExit closes the log file; called once the event loop has returned.
func (ac *AppController) GracefulExit() {
	log.Println("Application shutting down.")
	if ac.FileService != nil {
		ac.FileService.CloseLogFiles()
	}
}
