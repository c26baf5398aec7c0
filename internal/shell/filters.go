// Package shell wraps the Windows shell item and common item dialog APIs.
// The filter list and path resolution cores are portable; the files bound to
// the foreign runtime are windows-only.
package shell

import (
	"github.com/winshell/filedialog/internal/wstr"
)

// FilterSpec mirrors COMDLG_FILTERSPEC: two pointers into nul-terminated
// wide buffers owned elsewhere.
type FilterSpec struct {
	Name    *uint16
	Pattern *uint16
}

type filterPair struct {
	name    *wstr.WideString
	pattern *wstr.WideString
}

// FilterList is an ordered, append-only list of (name, pattern) file type
// filters. Each Add stores an owned copy of the pair and a descriptor whose
// pointers reference that copy, so descriptors and storage only ever grow in
// lock-step. There is deliberately no removal or reordering: either would
// invalidate descriptor pointers already exported to the foreign side.
type FilterList struct {
	specs   []FilterSpec
	storage []filterPair
}

// Add appends a filter. The arguments are cloned; the list does not alias
// caller memory.
func (l *FilterList) Add(name, pattern *wstr.WideStr) {
	p := filterPair{name: name.Clone(), pattern: pattern.Clone()}
	l.specs = append(l.specs, FilterSpec{Name: p.name.Ptr(), Pattern: p.pattern.Ptr()})
	l.storage = append(l.storage, p)
}

// AddStrings converts and appends a filter. It panics if either string
// contains an interior NUL: such a filter cannot be represented at the
// foreign boundary, and asking for one is a programming error.
func (l *FilterList) AddStrings(name, pattern string) {
	n, err := wstr.New(wstr.String(name))
	if err != nil {
		panic("shell: filter name contains an interior nul")
	}
	p, err := wstr.New(wstr.String(pattern))
	if err != nil {
		panic("shell: filter pattern contains an interior nul")
	}
	l.specs = append(l.specs, FilterSpec{Name: n.Ptr(), Pattern: p.Ptr()})
	l.storage = append(l.storage, filterPair{name: n, pattern: p})
}

// Len returns the number of filters.
func (l *FilterList) Len() int {
	return len(l.specs)
}

// Empty reports whether the list has no filters.
func (l *FilterList) Empty() bool {
	return len(l.specs) == 0
}

// Specs returns the descriptor array for passing to SetFileTypes. The
// pointers inside are valid only while the list is alive and unmodified
// after the call that exported them.
func (l *FilterList) Specs() []FilterSpec {
	return l.specs
}
