package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreUpload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/files/", 1024)
	require.NoError(t, err)

	obj, err := store.Upload(context.Background(), "../../etc/gallery final.txt", strings.NewReader("hello deliverable"))
	require.NoError(t, err)

	assert.Equal(t, "gallery_final.txt", obj.Name)
	assert.Equal(t, int64(len("hello deliverable")), obj.Size)
	assert.True(t, strings.HasPrefix(obj.URL, "/files/"))
	assert.True(t, strings.HasSuffix(obj.Key, "-gallery_final.txt"))
	assert.True(t, strings.HasPrefix(obj.ContentType, "text/plain"))

	content, err := os.ReadFile(filepath.Join(dir, obj.Key))
	require.NoError(t, err)
	assert.Equal(t, "hello deliverable", string(content))

	require.NoError(t, store.Delete(context.Background(), obj.Key))
	_, err = os.Stat(filepath.Join(dir, obj.Key))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Delete(context.Background(), obj.Key))
}

func TestLocalStoreRejectsOversizeFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/files", 4)
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), "big.bin", bytes.NewReader([]byte("12345")))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStoreCancelledContext(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/files", 1024)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Upload(ctx, "a.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "photo.jpg", sanitizeName("photo.jpg"))
	assert.Equal(t, "x.jpg", sanitizeName("C:\\Users\\me\\x.jpg"))
	assert.Equal(t, "upload", sanitizeName(""))
	assert.Equal(t, "upload", sanitizeName(".."))
}
