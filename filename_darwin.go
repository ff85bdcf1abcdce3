//go:build darwin

package filename

import (
	"bytes"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// maxPathLen mirrors the darwin MAXPATHLEN constant. F_GETPATH requires
// a buffer of at least this size.
const maxPathLen = 1024

// fileName asks the kernel for the descriptor's path using the
// F_GETPATH fcntl command, which writes a NUL-terminated absolute path
// into a caller-owned buffer.
//
// The bytes are returned as-is: paths on darwin are byte strings and no
// UTF-8 validation happens here.
func fileName(fd uintptr) (string, error) {
	var buf [maxPathLen]byte
	_, err := unix.FcntlInt(fd, unix.F_GETPATH, int(uintptr(unsafe.Pointer(&buf[0]))))
	runtime.KeepAlive(&buf)
	if err != nil {
		return "", err
	}

	n := bytes.IndexByte(buf[:], 0)
	if n < 0 {
		n = len(buf)
	}
	return string(buf[:n]), nil
}
