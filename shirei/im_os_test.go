package shirei

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isCached(fpath string) bool {
	filesLock.RLock()
	defer filesLock.RUnlock()
	_, found := fileContent[filepath.Clean(fpath)]
	return found
}

func TestReadFileContent_ReloadsOnChange(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte("first"), 0o644))

	assert.Equal(t, "first", string(ReadFileContent(fpath)))
	require.True(t, isCached(fpath))

	require.NoError(t, os.WriteFile(fpath, []byte("second"), 0o644))

	require.Eventually(t, func() bool { return !isCached(fpath) }, 5*time.Second, 10*time.Millisecond)
	// let the rest of the write events through before reading again
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, "second", string(ReadFileContent(fpath)))
}

func TestReadFileContent_Missing(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "missing.yaml")
	assert.Nil(t, ReadFileContent(fpath))

	require.NoError(t, os.WriteFile(fpath, []byte("now here"), 0o644))
	require.Eventually(t, func() bool { return !isCached(fpath) }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, "now here", string(ReadFileContent(fpath)))
}
