//go:build linux

package filename

import (
	"fmt"
	"os"
)

// fileName resolves the descriptor through the kernel's per-process
// descriptor table, exposed as a farm of symlinks under /proc/self/fd.
//
// The link target is returned exactly as the kernel reports it. If the
// underlying file was removed while the descriptor stayed open, the
// target carries a " (deleted)" suffix; it is not stripped here.
func fileName(fd uintptr) (string, error) {
	return os.Readlink(fmt.Sprintf("/proc/self/fd/%d", fd))
}
