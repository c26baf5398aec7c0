//go:build windows

package shell

import (
	"syscall"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/winshell/filedialog/internal/com"
	"github.com/winshell/filedialog/internal/interop"
	"github.com/winshell/filedialog/internal/logfields"
	"github.com/winshell/filedialog/internal/winapi"
	"github.com/winshell/filedialog/internal/wstr"
)

// vtblOf reads the vtable pointer at the start of a COM object. ptr is a
// COM-heap address the Go runtime never manages, so the uintptr round-trip
// cannot be invalidated by the garbage collector.
func vtblOf(ptr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(ptr))
}

// ShellItem wraps an IShellItem reference.
type ShellItem struct {
	ref *com.Ref
}

// ItemFromPath creates a shell item for a filesystem path. The path is
// resolved to absolute form first, since the parsing call rejects relative
// paths. It panics if the path contains an interior NUL.
func ItemFromPath(path string) (*ShellItem, error) {
	wp, err := wstr.New(wstr.Path(path))
	if err != nil {
		panic("shell: path contains an interior nul")
	}
	full, _, err := GetFullPathName(&wp.WideStr)
	if err != nil {
		return nil, err
	}
	return ItemFromParsingName(&full.WideStr)
}

// ItemFromParsingName creates a shell item from an absolute parsing name.
func ItemFromParsingName(name *wstr.WideStr) (*ShellItem, error) {
	var ptr uintptr
	if err := winapi.SHCreateItemFromParsingName(name.Ptr(), 0, &winapi.IID_IShellItem, &ptr); err != nil {
		return nil, com.NewError(err, "SHCreateItemFromParsingName")
	}
	return &ShellItem{ref: com.FromUnknown(ptr)}, nil
}

// ItemFromIDList creates a shell item from an item ID list. The list keeps
// its own lifecycle; it is borrowed, not consumed.
func ItemFromIDList(list *ItemIDList) (*ShellItem, error) {
	var ptr uintptr
	if err := winapi.SHCreateItemFromIDList(list.Ptr(), &winapi.IID_IShellItem, &ptr); err != nil {
		return nil, com.NewError(err, "SHCreateItemFromIDList")
	}
	return &ShellItem{ref: com.FromUnknown(ptr)}, nil
}

// DisplayName retrieves the requested representation of the item. The result
// is allocated by the COM task allocator; close it to free it.
func (item *ShellItem) DisplayName(form DisplayNameForm) (*interop.CoTaskMemString, error) {
	vtbl := (*winapi.IShellItemVtbl)(vtblOf(item.ref.Ptr()))
	var p *uint16
	r, _, _ := syscall.SyscallN(vtbl.GetDisplayName, item.ref.Ptr(), uintptr(sigdnOf(form)), uintptr(unsafe.Pointer(&p)))
	if err := com.ErrFromHResult(r, "IShellItem::GetDisplayName"); err != nil {
		logrus.WithField(logfields.Form, form.String()).WithError(err).Debug("display name unavailable")
		return nil, err
	}
	return interop.FromRaw(p), nil
}

// Close releases the item's reference. It is a no-op after a consuming
// operation has taken ownership.
func (item *ShellItem) Close() error {
	return item.ref.Close()
}

// ItemIDList owns an absolute item ID list (PIDL). Unlike COM references it
// is released through ILFree.
type ItemIDList struct {
	pidl uintptr
}

// IDListFromPath creates an item ID list from an absolute path. The
// underlying call rejects relative paths.
func IDListFromPath(path *wstr.WideStr) (*ItemIDList, error) {
	pidl, err := winapi.ILCreateFromPath(path.Ptr())
	if err != nil {
		return nil, com.NewError(err, "ILCreateFromPath")
	}
	return &ItemIDList{pidl: pidl}, nil
}

// Ptr returns the raw PIDL for borrowing calls.
func (l *ItemIDList) Ptr() uintptr {
	return l.pidl
}

// Close frees the list.
func (l *ItemIDList) Close() error {
	if l.pidl != 0 {
		winapi.ILFree(l.pidl)
		l.pidl = 0
	}
	return nil
}

func sigdnOf(form DisplayNameForm) winapi.SIGDN {
	switch form {
	case NormalDisplay:
		return winapi.SIGDN_NORMALDISPLAY
	case ParentRelativeParsing:
		return winapi.SIGDN_PARENTRELATIVEPARSING
	case DesktopAbsoluteParsing:
		return winapi.SIGDN_DESKTOPABSOLUTEPARSING
	case ParentRelativeEditing:
		return winapi.SIGDN_PARENTRELATIVEEDITING
	case DesktopAbsoluteEditing:
		return winapi.SIGDN_DESKTOPABSOLUTEEDITING
	case FileSysPath:
		return winapi.SIGDN_FILESYSPATH
	case Url:
		return winapi.SIGDN_URL
	case ParentRelativeForAddressBar:
		return winapi.SIGDN_PARENTRELATIVEFORADDRESSBAR
	case ParentRelative:
		return winapi.SIGDN_PARENTRELATIVE
	case ParentRelativeForUi:
		return winapi.SIGDN_PARENTRELATIVEFORUI
	default:
		panic("shell: unknown display name form")
	}
}
