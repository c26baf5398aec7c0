//go:build windows

package winapi

import "golang.org/x/sys/windows"

//sys GetFullPathName(path *uint16, bufLen uint32, buf *uint16, filePart **uint16) (size uint32, err error) = kernel32.GetFullPathNameW
//sys SHCreateItemFromParsingName(path *uint16, bindCtx uintptr, iid *windows.GUID, item *uintptr) (hr error) = shell32.SHCreateItemFromParsingName
//sys SHCreateItemFromIDList(pidl uintptr, iid *windows.GUID, item *uintptr) (hr error) = shell32.SHCreateItemFromIDList
//sys ILCreateFromPath(path *uint16) (pidl uintptr, err error) [failretval==0] = shell32.ILCreateFromPathW
//sys ILFree(pidl uintptr) = shell32.ILFree
//sys CoCreateInstance(clsid *windows.GUID, unkOuter uintptr, clsContext uint32, iid *windows.GUID, object *uintptr) (hr error) = ole32.CoCreateInstance

const (
	// MaxPath is the conventional first-attempt buffer size for path APIs.
	MaxPath = 260

	// CLSCTX_ALL is the class context passed to CoCreateInstance.
	CLSCTX_ALL = 0x17
)

// Class and interface identifiers for the common item dialog family.
var (
	CLSID_FileOpenDialog = windows.GUID{Data1: 0xdc1c5a9c, Data2: 0xe88a, Data3: 0x4dde, Data4: [8]byte{0xa5, 0xa1, 0x60, 0xf8, 0x2a, 0x20, 0xae, 0xf7}}
	CLSID_FileSaveDialog = windows.GUID{Data1: 0xc0b4e2f3, Data2: 0xba21, Data3: 0x4773, Data4: [8]byte{0x8d, 0xba, 0x33, 0x5e, 0xc9, 0x46, 0xeb, 0x8b}}

	IID_IShellItem      = windows.GUID{Data1: 0x43826d1e, Data2: 0xe718, Data3: 0x42ee, Data4: [8]byte{0xbc, 0x55, 0xa1, 0xe2, 0x61, 0xc3, 0x7b, 0xfe}}
	IID_IFileOpenDialog = windows.GUID{Data1: 0xd57c7288, Data2: 0xd4ad, Data3: 0x4768, Data4: [8]byte{0xbe, 0x02, 0x9d, 0x96, 0x95, 0x32, 0xd9, 0x60}}
	IID_IFileSaveDialog = windows.GUID{Data1: 0x84bccd23, Data2: 0x5fde, Data3: 0x4cdb, Data4: [8]byte{0xae, 0xa4, 0xaf, 0x64, 0xb8, 0x3d, 0x78, 0xab}}
)

// SIGDN selects the representation returned by IShellItem::GetDisplayName.
type SIGDN uint32

const (
	SIGDN_NORMALDISPLAY               SIGDN = 0x00000000
	SIGDN_PARENTRELATIVEPARSING       SIGDN = 0x80018001
	SIGDN_DESKTOPABSOLUTEPARSING      SIGDN = 0x80028000
	SIGDN_PARENTRELATIVEEDITING       SIGDN = 0x80031001
	SIGDN_DESKTOPABSOLUTEEDITING      SIGDN = 0x8004c000
	SIGDN_FILESYSPATH                 SIGDN = 0x80058000
	SIGDN_URL                         SIGDN = 0x80068000
	SIGDN_PARENTRELATIVEFORADDRESSBAR SIGDN = 0x8007c001
	SIGDN_PARENTRELATIVE              SIGDN = 0x80080001
	SIGDN_PARENTRELATIVEFORUI         SIGDN = 0x80094001
)

// COM vtable layouts for the interfaces called by slot. A COM object is a
// pointer to a pointer to its vtable; the embedded structs mirror interface
// inheritance on the foreign side.

type IUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type IModalWindowVtbl struct {
	IUnknownVtbl
	Show uintptr
}

type IFileDialogVtbl struct {
	IModalWindowVtbl
	SetFileTypes        uintptr
	SetFileTypeIndex    uintptr
	GetFileTypeIndex    uintptr
	Advise              uintptr
	Unadvise            uintptr
	SetOptions          uintptr
	GetOptions          uintptr
	SetDefaultFolder    uintptr
	SetFolder           uintptr
	GetFolder           uintptr
	GetCurrentSelection uintptr
	SetFileName         uintptr
	GetFileName         uintptr
	SetTitle            uintptr
	SetOkButtonLabel    uintptr
	SetFileNameLabel    uintptr
	GetResult           uintptr
	AddPlace            uintptr
	SetDefaultExtension uintptr
	Close               uintptr
	SetClientGuid       uintptr
	ClearClientData     uintptr
	SetFilter           uintptr
}

type IFileOpenDialogVtbl struct {
	IFileDialogVtbl
	GetResults       uintptr
	GetSelectedItems uintptr
}

type IFileSaveDialogVtbl struct {
	IFileDialogVtbl
	SetSaveAsItem          uintptr
	SetProperties          uintptr
	SetCollectedProperties uintptr
	GetProperties          uintptr
	ApplyProperties        uintptr
}

type IShellItemVtbl struct {
	IUnknownVtbl
	BindToHandler  uintptr
	GetParent      uintptr
	GetDisplayName uintptr
	GetAttributes  uintptr
	Compare        uintptr
}
