package util

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCBZKeepsPageOrder(t *testing.T) {
	dir := t.TempDir()

	// Written out of order on purpose; the archive must sort by name.
	var files []string
	for _, name := range []string{"page_002.jpg", "page_001.jpg", "page_003.jpg"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0644))
		files = append(files, p)
	}

	out := filepath.Join(dir, "chapter.cbz")
	require.NoError(t, WriteCBZ(files, out))

	r, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.File, 3)
	assert.Equal(t, "page_001.jpg", r.File[0].Name)
	assert.Equal(t, "page_002.jpg", r.File[1].Name)
	assert.Equal(t, "page_003.jpg", r.File[2].Name)
}

func TestWriteCBZMissingFile(t *testing.T) {
	dir := t.TempDir()

	err := WriteCBZ([]string{filepath.Join(dir, "nope.jpg")}, filepath.Join(dir, "out.cbz"))
	assert.Error(t, err)
}

func TestCleanupUnfinishedTempFolders(t *testing.T) {
	dir := t.TempDir()

	tmp := filepath.Join(dir, "solo_ch_1"+TempSuffix)
	keep := filepath.Join(dir, "solo_ch_1")
	require.NoError(t, os.MkdirAll(tmp, 0755))
	require.NoError(t, os.MkdirAll(keep, 0755))

	CleanupUnfinishedTempFolders(dir)

	_, err := os.Stat(tmp)
	assert.True(t, os.IsNotExist(err), "temp folder should be removed")
	_, err = os.Stat(keep)
	assert.NoError(t, err, "finished folder stays")
}

func TestHuman(t *testing.T) {
	assert.Equal(t, "512 B", Human(512))
	assert.Equal(t, "1.00 KB", Human(1024))
	assert.Equal(t, "1.50 MB", Human(3*1024*1024/2))
}
