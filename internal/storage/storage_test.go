package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, field, name string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/media", nil)
	require.NoError(t, err)

	fh := uploadHeader(t, "logo", "logo.PNG", []byte("image-bytes"))
	url, err := store.Save(fh, "logos")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/media/logos/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension is kept lowercased")

	rel := strings.TrimPrefix(url, "/media/")
	stored, err := os.ReadFile(filepath.Join(dir, rel))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), stored)

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(dir, rel))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFileIsNoError(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/media", nil)
	require.NoError(t, err)

	assert.NoError(t, store.Remove("/media/logos/gone.png"))
	assert.NoError(t, store.Remove("https://elsewhere.example/file.png"))
}

func TestRemoveRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/media", nil)
	require.NoError(t, err)

	outside := filepath.Join(dir, "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
	defer os.Remove(outside)

	require.NoError(t, store.Remove("/media/../victim.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err, "files outside the media dir must not be deletable")
}

func TestUniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/media", nil)
	require.NoError(t, err)

	fh := uploadHeader(t, "doc", "same.pdf", []byte("a"))
	first, err := store.Save(fh, "docs")
	require.NoError(t, err)
	second, err := store.Save(fh, "docs")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
