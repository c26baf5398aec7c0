package shell

import (
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/winshell/filedialog/internal/com"
	"github.com/winshell/filedialog/internal/logfields"
	"github.com/winshell/filedialog/internal/wstr"
)

// initialPathUnits is the first-attempt buffer capacity, in code units
// (MAX_PATH). Longer paths are handled by the grow-and-retry loop.
const initialPathUnits = 260

// fullPathFunc has the shape of GetFullPathNameW: on success the return
// value is the number of code units written, terminator excluded; when the
// buffer is too small it is the required capacity, terminator included.
// filePart, when set, points at the start of the filename inside buf.
type fullPathFunc func(path *uint16, bufLen uint32, buf *uint16, filePart **uint16) (uint32, error)

// resolveFullPath runs the growable-buffer retry protocol around resolve.
//
// It returns the resolved path and the code-unit index of the filename
// portion, or -1 when the resolver did not mark one. The index is computed
// once, here, from the address difference between the filename pointer and
// the buffer start; the pointer itself is never retained, since its validity
// is tied to this specific buffer.
func resolveFullPath(resolve fullPathFunc, path *wstr.WideStr) (*wstr.WideString, int, error) {
	buf := make([]uint16, initialPathUnits)
	for {
		var filePart *uint16
		size, err := resolve(path.Ptr(), uint32(len(buf)), &buf[0], &filePart)
		if err != nil {
			return nil, -1, com.NewError(err, "GetFullPathName")
		}
		if int64(size) >= int64(len(buf)) {
			// size is the required capacity, terminator included.
			logrus.WithFields(logrus.Fields{
				logfields.Size:     size,
				logfields.Capacity: len(buf),
			}).Debug("path buffer too small, growing")
			buf = make([]uint16, size)
			continue
		}

		buf = buf[: size+1 : size+1]
		idx := -1
		if filePart != nil {
			off := uintptr(unsafe.Pointer(filePart)) - uintptr(unsafe.Pointer(&buf[0]))
			if off%2 != 0 || int64(off/2) >= int64(len(buf)) {
				// The filename pointer is supposed to point into the
				// buffer we supplied. If it does not, the index would be
				// garbage; abort rather than propagate it.
				panic("shell: filename pointer outside the resolved path buffer")
			}
			idx = int(off / 2)
		}

		full, err := wstr.FromUnits(buf)
		if err != nil {
			panic("shell: resolved path failed terminator validation: " + err.Error())
		}
		return full, idx, nil
	}
}
