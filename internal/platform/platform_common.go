package platform

import (
	"os"
	"path/filepath"
	"strings"

	"calculator/internal/constants"
)

// GetSettingsPath returns the path to settings.jsonc
func GetSettingsPath(execDir string) string {
	return filepath.Join(execDir, constants.SettingsFileName)
}

// GetLogsDir returns the path to logs directory
func GetLogsDir(execDir string) string {
	return filepath.Join(execDir, constants.LogsDirName)
}

// GetMainLogPath returns the path to the application log file
func GetMainLogPath(execDir string) string {
	return filepath.Join(GetLogsDir(execDir), constants.MainLogFileName)
}

// EnsureDirectories creates necessary directories if they don't exist
func EnsureDirectories(execDir string) error {
	dirs := []string{
		GetLogsDir(execDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeProcessName lowercases a process name and strips the platform
// executable suffix so names from different sources can be compared.
func NormalizeProcessName(name string) string {
	name = strings.ToLower(filepath.Base(name))
	return strings.TrimSuffix(name, ExecutableSuffix)
}
