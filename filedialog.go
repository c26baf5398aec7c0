//go:build windows

// Package filedialog shows the native Windows open and save file dialogs.
//
// The package wraps the IFileDialog family of COM interfaces. Use the
// builders for control over folders, filters and file names, or Open and
// Save for the one-call defaults.
package filedialog

import (
	"golang.org/x/sys/windows"

	"github.com/winshell/filedialog/internal/com"
)

// Open shows an open dialog with default settings, initializing the COM
// runtime if needed, and returns the chosen path.
func Open() (string, error) {
	return NewOpenDialogBuilder().InitRuntime().Execute()
}

// Save shows a save dialog with default settings, initializing the COM
// runtime if needed, and returns the chosen path.
func Save() (string, error) {
	return NewSaveDialogBuilder().InitRuntime().Execute()
}

// IsCancelled reports whether err means the user dismissed the dialog
// without choosing anything.
func IsCancelled(err error) bool {
	return com.Win32FromError(err) == uint32(windows.ERROR_CANCELLED)
}
