//go:build !windows

package filename_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-filename"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonical resolves symlinks so results can be compared against the
// path a file was created at (e.g. /tmp vs /private/tmp on darwin).
func canonical(t *testing.T, path string) string {
	t.Helper()

	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)

	return resolved
}

func TestFileNameLongPath(t *testing.T) {
	// Stays below darwin's 1024-byte MAXPATHLEN while getting close
	// enough to exercise the buffer bound.
	const target = 1000

	dir := t.TempDir()
	seg := strings.Repeat("d", 200)
	for len(dir)+len(seg)+1 < target-60 {
		dir = filepath.Join(dir, seg)
		require.NoError(t, os.Mkdir(dir, 0o755))
	}

	name := filepath.Join(dir, strings.Repeat("f", target-len(dir)-1))
	require.Len(t, name, target)

	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()

	got, err := filename.FileName(f)
	require.NoError(t, err)

	want := canonical(t, name)
	assert.Equal(t, want, canonical(t, got))
	assert.Len(t, got, len(want))
}
