package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.edn")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous body"), 0o644))

	require.NoError(t, WriteFile(path, []byte("{}")))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.edn"), []byte("{}"))
	assert.ErrorIs(t, err, ErrFileAccess)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.edn"))
	assert.ErrorIs(t, err, ErrFileAccess)
}
