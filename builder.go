//go:build windows

package filedialog

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/winshell/filedialog/internal/com"
	"github.com/winshell/filedialog/internal/logfields"
	"github.com/winshell/filedialog/internal/shell"
	"github.com/winshell/filedialog/internal/wstr"
)

// dialogOptions carries the settings shared by the open and save builders.
// Empty strings mean unset.
type dialogOptions struct {
	initRuntime bool
	defaultPath string
	path        string
	fileName    string
	filters     shell.FilterList
}

// apply configures a freshly created dialog. The shell items created for the
// folder options are consumed by the set-folder calls; their Close is a
// no-op afterwards.
func (o *dialogOptions) apply(d *shell.FileDialog) error {
	if o.defaultPath != "" {
		item, err := shell.ItemFromPath(o.defaultPath)
		if err != nil {
			return errors.Wrap(err, "failed to create default folder item")
		}
		defer item.Close()
		if err := d.SetDefaultFolder(item); err != nil {
			return errors.Wrap(err, "failed to set default folder")
		}
	}

	if o.path != "" {
		item, err := shell.ItemFromPath(o.path)
		if err != nil {
			return errors.Wrap(err, "failed to create folder item")
		}
		defer item.Close()
		if err := d.SetFolder(item); err != nil {
			return errors.Wrap(err, "failed to set folder")
		}
	}

	if !o.filters.Empty() {
		if err := d.SetFileTypes(&o.filters); err != nil {
			return errors.Wrap(err, "failed to set file types")
		}
	}

	if o.fileName != "" {
		name, err := wstr.New(wstr.String(o.fileName))
		if err != nil {
			return errors.Wrap(err, "invalid file name")
		}
		if err := d.SetFileName(&name.WideStr); err != nil {
			return errors.Wrap(err, "failed to set file name")
		}
	}

	logrus.WithFields(logrus.Fields{
		logfields.Path:    o.path,
		logfields.Filters: o.filters.Len(),
	}).Debug("dialog configured")
	return nil
}

func (o *dialogOptions) startRuntime() error {
	if !o.initRuntime {
		return nil
	}
	return com.StartRuntime()
}

// execute shows d and returns the chosen item's filesystem path.
func execute(d *shell.FileDialog) (string, error) {
	if err := d.Show(0); err != nil {
		return "", err
	}
	item, err := d.Result()
	if err != nil {
		return "", err
	}
	defer item.Close()
	name, err := item.DisplayName(shell.FileSysPath)
	if err != nil {
		return "", err
	}
	defer name.Close()
	return name.String(), nil
}

// OpenDialogBuilder assembles a file open dialog.
type OpenDialogBuilder struct {
	opts dialogOptions
}

// NewOpenDialogBuilder returns a builder with nothing set.
func NewOpenDialogBuilder() *OpenDialogBuilder {
	return &OpenDialogBuilder{}
}

// InitRuntime makes Build initialize the COM runtime first.
func (b *OpenDialogBuilder) InitRuntime() *OpenDialogBuilder {
	b.opts.initRuntime = true
	return b
}

// DefaultPath sets the folder the dialog opens in when the user has no more
// recent choice.
func (b *OpenDialogBuilder) DefaultPath(path string) *OpenDialogBuilder {
	b.opts.defaultPath = path
	return b
}

// Path sets the folder the dialog opens in, regardless of past choices.
func (b *OpenDialogBuilder) Path(path string) *OpenDialogBuilder {
	b.opts.path = path
	return b
}

// Filter adds a file type filter. It panics if name or pattern contains an
// interior NUL.
func (b *OpenDialogBuilder) Filter(name, pattern string) *OpenDialogBuilder {
	b.opts.filters.AddStrings(name, pattern)
	return b
}

// FileName sets the prefilled file name.
func (b *OpenDialogBuilder) FileName(name string) *OpenDialogBuilder {
	b.opts.fileName = name
	return b
}

// Build creates and configures the dialog. The caller owns the result and
// must close it.
func (b *OpenDialogBuilder) Build() (*shell.FileOpenDialog, error) {
	if err := b.opts.startRuntime(); err != nil {
		return nil, err
	}
	d, err := shell.NewFileOpenDialog()
	if err != nil {
		return nil, err
	}
	if err := b.opts.apply(&d.FileDialog); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// Execute builds the dialog, shows it, and returns the filesystem path the
// user chose.
func (b *OpenDialogBuilder) Execute() (string, error) {
	d, err := b.Build()
	if err != nil {
		return "", err
	}
	defer d.Close()
	return execute(&d.FileDialog)
}

// SaveDialogBuilder assembles a file save dialog. It mirrors
// OpenDialogBuilder; only the class instantiated differs.
type SaveDialogBuilder struct {
	opts dialogOptions
}

// NewSaveDialogBuilder returns a builder with nothing set.
func NewSaveDialogBuilder() *SaveDialogBuilder {
	return &SaveDialogBuilder{}
}

// InitRuntime makes Build initialize the COM runtime first.
func (b *SaveDialogBuilder) InitRuntime() *SaveDialogBuilder {
	b.opts.initRuntime = true
	return b
}

// DefaultPath sets the folder the dialog opens in when the user has no more
// recent choice.
func (b *SaveDialogBuilder) DefaultPath(path string) *SaveDialogBuilder {
	b.opts.defaultPath = path
	return b
}

// Path sets the folder the dialog opens in, regardless of past choices.
func (b *SaveDialogBuilder) Path(path string) *SaveDialogBuilder {
	b.opts.path = path
	return b
}

// Filter adds a file type filter. It panics if name or pattern contains an
// interior NUL.
func (b *SaveDialogBuilder) Filter(name, pattern string) *SaveDialogBuilder {
	b.opts.filters.AddStrings(name, pattern)
	return b
}

// FileName sets the prefilled file name.
func (b *SaveDialogBuilder) FileName(name string) *SaveDialogBuilder {
	b.opts.fileName = name
	return b
}

// Build creates and configures the dialog. The caller owns the result and
// must close it.
func (b *SaveDialogBuilder) Build() (*shell.FileSaveDialog, error) {
	if err := b.opts.startRuntime(); err != nil {
		return nil, err
	}
	d, err := shell.NewFileSaveDialog()
	if err != nil {
		return nil, err
	}
	if err := b.opts.apply(&d.FileDialog); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// Execute builds the dialog, shows it, and returns the filesystem path the
// user chose.
func (b *SaveDialogBuilder) Execute() (string, error) {
	d, err := b.Build()
	if err != nil {
		return "", err
	}
	defer d.Close()
	return execute(&d.FileDialog)
}
