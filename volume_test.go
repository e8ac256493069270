package sfs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sfs "github.com/felixdube/sfs"
)

func TestMksfs_FreshThenReopen_NoFilesYet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfs_disk.disk")

	v := sfs.NewVolume()
	require.NoError(t, v.MksfsAt(path, true))

	name, remaining := v.GetNextFileName()
	assert.Zero(t, remaining)
	assert.Empty(t, name)

	v2 := sfs.NewVolume()
	require.NoError(t, v2.MksfsAt(path, false))

	name, remaining = v2.GetNextFileName()
	assert.Zero(t, remaining)
	assert.Empty(t, name)
}

func TestMksfs_Remount_PreservesCreatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfs_disk.disk")

	v := sfs.NewVolume()
	require.NoError(t, v.MksfsAt(path, true))

	h, err := v.Fopen("greeting.txt")
	require.NoError(t, err)
	n, err := v.Fwrite(h, []byte("hello"), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.NoError(t, v.Fclose(h))

	v2 := sfs.NewVolume()
	require.NoError(t, v2.MksfsAt(path, false))

	assert.EqualValues(t, 5, v2.GetFileSize("greeting.txt"))

	h2, err := v2.Fopen("greeting.txt")
	require.NoError(t, err)
	buf := make([]byte, 5)
	read, err := v2.Fread(h2, buf, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, read)
	assert.Equal(t, "hello", string(buf))
}

func TestFopen_NameTooLong_FailsNameInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfs_disk.disk")
	v := sfs.NewVolume()
	require.NoError(t, v.MksfsAt(path, true))

	longName := "abcdefghijklmnopqrstu" // 21 bytes
	_, err := v.Fopen(longName)
	require.Error(t, err)
}

func TestFopen_EmptyName_FailsNameInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfs_disk.disk")
	v := sfs.NewVolume()
	require.NoError(t, v.MksfsAt(path, true))

	_, err := v.Fopen("")
	require.Error(t, err)
}

func TestFopen_Reopen_ReturnsSameHandleAndResetsCursor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfs_disk.disk")
	v := sfs.NewVolume()
	require.NoError(t, v.MksfsAt(path, true))

	h1, err := v.Fopen("a.txt")
	require.NoError(t, err)
	_, err = v.Fwrite(h1, []byte("0123456789"), 10)
	require.NoError(t, err)

	h2, err := v.Fopen("a.txt")
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	buf := make([]byte, 3)
	read, err := v.Fread(h2, buf, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, read)
	assert.Equal(t, "012", string(buf))
}

func TestFclose_UnusedHandle_FailsBadHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfs_disk.disk")
	v := sfs.NewVolume()
	require.NoError(t, v.MksfsAt(path, true))

	require.Error(t, v.Fclose(0))
}

func TestFseek_OutOfRange_FailsBadRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfs_disk.disk")
	v := sfs.NewVolume()
	require.NoError(t, v.MksfsAt(path, true))

	h, err := v.Fopen("a.txt")
	require.NoError(t, err)

	require.Error(t, v.Fseek(h, -1))
}
