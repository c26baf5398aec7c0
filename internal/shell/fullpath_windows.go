//go:build windows

package shell

import (
	"github.com/winshell/filedialog/internal/winapi"
	"github.com/winshell/filedialog/internal/wstr"
)

// GetFullPathName resolves path to its absolute form and returns it along
// with the code-unit index of the filename portion (-1 when the path names a
// directory or similar). Suffix the result at that index to view the
// filename.
func GetFullPathName(path *wstr.WideStr) (*wstr.WideString, int, error) {
	return resolveFullPath(winapi.GetFullPathName, path)
}
