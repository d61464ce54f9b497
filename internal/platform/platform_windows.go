//go:build windows
// +build windows

package platform

import (
	"fmt"
	"syscall"
	"unsafe"
)

// ExecutableSuffix is appended to executable names on this platform
const ExecutableSuffix = ".exe"

var (
	shell32                                 = syscall.NewLazyDLL("shell32.dll")
	procSetCurrentProcessExplicitAppUserMID = shell32.NewProc("SetCurrentProcessExplicitAppUserModelID")
)

// SetAppUserModelID gives the process its own taskbar identity so Windows
// shows the application icon instead of the host executable's.
func SetAppUserModelID(id string) error {
	if err := procSetCurrentProcessExplicitAppUserMID.Find(); err != nil {
		return fmt.Errorf("SetAppUserModelID: %w", err)
	}
	ptr, err := syscall.UTF16PtrFromString(id)
	if err != nil {
		return fmt.Errorf("SetAppUserModelID: %w", err)
	}
	hr, _, _ := procSetCurrentProcessExplicitAppUserMID.Call(uintptr(unsafe.Pointer(ptr)))
	if hr != 0 {
		return fmt.Errorf("SetAppUserModelID: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}
