package shell

// DisplayNameForm selects which identity representation of a shell item
// DisplayName returns. Some forms do not exist for every item (for example
// FileSysPath on an item with no filesystem backing); requesting a missing
// form is an ordinary error, not a contract violation.
type DisplayNameForm int

const (
	// NormalDisplay is the name relative to the parent folder, as shown in UI.
	NormalDisplay DisplayNameForm = iota
	// ParentRelativeParsing is the parsing name relative to the parent
	// folder. Not suitable for UI.
	ParentRelativeParsing
	// DesktopAbsoluteParsing is the parsing name relative to the desktop.
	// Not suitable for UI.
	DesktopAbsoluteParsing
	// ParentRelativeEditing is the editing name relative to the parent folder.
	ParentRelativeEditing
	// DesktopAbsoluteEditing is the editing name relative to the desktop.
	DesktopAbsoluteEditing
	// FileSysPath is the item's file system path, when it has one.
	FileSysPath
	// Url is the item's URL, when it has one.
	Url
	// ParentRelativeForAddressBar is the friendly address-bar form of the
	// path relative to the parent folder.
	ParentRelativeForAddressBar
	// ParentRelative is the path relative to the parent folder.
	ParentRelative
	// ParentRelativeForUi is the Windows 8+ UI form.
	ParentRelativeForUi
)

func (f DisplayNameForm) String() string {
	switch f {
	case NormalDisplay:
		return "NormalDisplay"
	case ParentRelativeParsing:
		return "ParentRelativeParsing"
	case DesktopAbsoluteParsing:
		return "DesktopAbsoluteParsing"
	case ParentRelativeEditing:
		return "ParentRelativeEditing"
	case DesktopAbsoluteEditing:
		return "DesktopAbsoluteEditing"
	case FileSysPath:
		return "FileSysPath"
	case Url:
		return "Url"
	case ParentRelativeForAddressBar:
		return "ParentRelativeForAddressBar"
	case ParentRelative:
		return "ParentRelative"
	case ParentRelativeForUi:
		return "ParentRelativeForUi"
	default:
		return "Unknown"
	}
}
