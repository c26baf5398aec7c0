//go:build windows

package shell

import (
	"math"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/winshell/filedialog/internal/com"
	"github.com/winshell/filedialog/internal/winapi"
	"github.com/winshell/filedialog/internal/wstr"
)

// ModalWindow is the narrowest dialog capability: it can be shown. Wider
// capabilities embed it and add operations over the same underlying
// reference; there is no layout trickery, only composition.
type ModalWindow struct {
	ref *com.Ref
}

// Show displays the window and blocks the calling thread until the foreign
// runtime returns control. parent may be 0.
func (w *ModalWindow) Show(parent windows.HWND) error {
	vtbl := (*winapi.IModalWindowVtbl)(vtblOf(w.ref.Ptr()))
	r, _, _ := syscall.SyscallN(vtbl.Show, w.ref.Ptr(), uintptr(parent))
	return com.ErrFromHResult(r, "IModalWindow::Show")
}

// Close releases the window's reference.
func (w *ModalWindow) Close() error {
	return w.ref.Close()
}

// FileDialog adds the folder, filter, filename and result operations shared
// by the open and save dialogs.
type FileDialog struct {
	ModalWindow
}

func (d *FileDialog) vtbl() *winapi.IFileDialogVtbl {
	return (*winapi.IFileDialogVtbl)(vtblOf(d.ref.Ptr()))
}

// SetDefaultFolder sets the folder the dialog opens in when no recent
// choice overrides it. The call consumes item's reference on the foreign
// side whether or not it succeeds, so the item is handed off
// unconditionally; closing it afterwards is a no-op.
func (d *FileDialog) SetDefaultFolder(item *ShellItem) error {
	ptr := item.ref.Handoff()
	r, _, _ := syscall.SyscallN(d.vtbl().SetDefaultFolder, d.ref.Ptr(), ptr)
	return com.ErrFromHResult(r, "IFileDialog::SetDefaultFolder")
}

// SetFolder sets the folder the dialog opens in, overriding past choices.
// Consumes item's reference like SetDefaultFolder.
func (d *FileDialog) SetFolder(item *ShellItem) error {
	ptr := item.ref.Handoff()
	r, _, _ := syscall.SyscallN(d.vtbl().SetFolder, d.ref.Ptr(), ptr)
	return com.ErrFromHResult(r, "IFileDialog::SetFolder")
}

// SetFileTypes exports the filter descriptors to the dialog. Windows copies
// the strings internally (observed behavior, not documented contract), but
// filters must stay alive and unmodified at least until this call returns.
func (d *FileDialog) SetFileTypes(filters *FilterList) error {
	if filters.Empty() {
		return nil
	}
	if uint64(filters.Len()) > math.MaxUint32 {
		panic("shell: filter count does not fit in a uint32")
	}
	specs := filters.Specs()
	r, _, _ := syscall.SyscallN(d.vtbl().SetFileTypes, d.ref.Ptr(), uintptr(uint32(len(specs))), uintptr(unsafe.Pointer(&specs[0])))
	return com.ErrFromHResult(r, "IFileDialog::SetFileTypes")
}

// SetFileName sets the name prefilled in the dialog's edit box.
func (d *FileDialog) SetFileName(name *wstr.WideStr) error {
	r, _, _ := syscall.SyscallN(d.vtbl().SetFileName, d.ref.Ptr(), uintptr(unsafe.Pointer(name.Ptr())))
	return com.ErrFromHResult(r, "IFileDialog::SetFileName")
}

// Result returns the item the user chose. Only valid after Show returned
// successfully.
func (d *FileDialog) Result() (*ShellItem, error) {
	var ptr uintptr
	r, _, _ := syscall.SyscallN(d.vtbl().GetResult, d.ref.Ptr(), uintptr(unsafe.Pointer(&ptr)))
	if err := com.ErrFromHResult(r, "IFileDialog::GetResult"); err != nil {
		return nil, err
	}
	return &ShellItem{ref: com.FromUnknown(ptr)}, nil
}

// FileOpenDialog is the concrete open dialog. It only differs from
// FileSaveDialog in the class instantiated.
type FileOpenDialog struct {
	FileDialog
}

// NewFileOpenDialog activates a new open dialog instance.
func NewFileOpenDialog() (*FileOpenDialog, error) {
	ref, err := com.CreateInstance(&winapi.CLSID_FileOpenDialog, &winapi.IID_IFileOpenDialog)
	if err != nil {
		return nil, err
	}
	return &FileOpenDialog{FileDialog{ModalWindow{ref: ref}}}, nil
}

// FileSaveDialog is the concrete save dialog.
type FileSaveDialog struct {
	FileDialog
}

// NewFileSaveDialog activates a new save dialog instance.
func NewFileSaveDialog() (*FileSaveDialog, error) {
	ref, err := com.CreateInstance(&winapi.CLSID_FileSaveDialog, &winapi.IID_IFileSaveDialog)
	if err != nil {
		return nil, err
	}
	return &FileSaveDialog{FileDialog{ModalWindow{ref: ref}}}, nil
}
