// Package filename resolves the file-system path associated with an
// already-open file descriptor or handle.
//
// The path is recovered from the live descriptor itself, so it works for
// temporary files, files opened by other libraries, and descriptors
// received from other processes:
//
//	f, _ := os.CreateTemp("", "example")
//	path, err := filename.FileName(f)
//
// Each supported platform uses a different kernel primitive: Linux and
// Android read the /proc/self/fd symlink, macOS and iOS query the
// descriptor with fcntl(F_GETPATH), and Windows requests the handle's
// FileNameInfo. Whatever the kernel reports is returned verbatim; see the
// per-platform notes on the backend in question.
package filename

// Filer is the minimal capability required to resolve a path: any value
// that can expose its native descriptor (or handle, on Windows).
// *os.File satisfies it, as does any other handle-owning type with an Fd
// method.
type Filer interface {
	Fd() uintptr
}

// Fd adapts a bare descriptor or handle value to the Filer interface,
// for callers that hold the raw integer rather than a wrapping object.
type Fd uintptr

// Fd implements Filer.
func (fd Fd) Fd() uintptr { return uintptr(fd) }

// FileName returns the path the open descriptor or handle currently
// refers to, in the platform's native representation. The descriptor is
// only read, never duplicated or closed, and the result is built fresh
// on every call.
//
// Failures reported by the underlying OS primitive are returned
// unchanged; no retry or error translation is performed.
func FileName(f Filer) (string, error) {
	return fileName(f.Fd())
}
