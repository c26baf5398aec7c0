// Package winapi contains low-level bindings to the Win32 and shell COM
// APIs this module consumes. It can be thought of as an extension to
// golang.org/x/sys/windows.
package winapi

//go:generate go tool github.com/Microsoft/go-winio/tools/mkwinsyscall -output zsyscall_windows.go ./*.go
