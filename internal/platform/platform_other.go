//go:build !windows
// +build !windows

package platform

// ExecutableSuffix is appended to executable names on this platform
const ExecutableSuffix = ""

// SetAppUserModelID is a Windows-only taskbar hook; elsewhere the desktop
// entry already carries the icon.
func SetAppUserModelID(id string) error {
	return nil
}
