package wallpaper

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, imaging.Save(imaging.New(w, h, color.NRGBA{200, 120, 40, 255}), path))
}

func TestResizedPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"foo.jpg", "foo-resized.jpg"},
		{filepath.Join("pics", "foo.jpg"), filepath.Join("pics", "foo-resized.jpg")},
		{"holiday.v2.jpg", "holiday.v2-resized.jpg"},
		{"scan.png", "scan-resized.jpg"},
		{"noext", "noext-resized.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResizedPath(tt.path, "-resized"))
		})
	}
}

func TestIsAlreadyConverted(t *testing.T) {
	dir := t.TempDir()

	// Outputs are always skipped, whether or not anything else exists.
	assert.True(t, IsAlreadyConverted(filepath.Join(dir, "foo-resized.jpg"), "-resized"))

	src := filepath.Join(dir, "bar.jpg")
	assert.False(t, IsAlreadyConverted(src, "-resized"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bar-resized.jpg"), []byte("x"), 0644))
	assert.True(t, IsAlreadyConverted(src, "-resized"))

	// A different suffix does not match.
	assert.False(t, IsAlreadyConverted(src, "-wall"))
}

func TestListJPEGs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.jpg", "a.jpg", "b-resized.jpg", "d.png", "e.JPG", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.jpg"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.jpg"), []byte("x"), 0644))

	fm := NewFileManager("-resized", 95)
	files, err := fm.ListJPEGs(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b-resized.jpg"),
		filepath.Join(dir, "c.jpg"),
	}, files)
}

func TestListJPEGs_MissingDir(t *testing.T) {
	fm := NewFileManager("-resized", 95)
	_, err := fm.ListJPEGs(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager("-resized", 95)

	good := filepath.Join(dir, "good.jpg")
	writeJPEG(t, good, 64, 48)
	img, err := fm.Decode(good)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())

	corrupt := filepath.Join(dir, "corrupt.jpg")
	require.NoError(t, os.WriteFile(corrupt, []byte("definitely not a jpeg"), 0644))
	_, err = fm.Decode(corrupt)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = fm.Decode(filepath.Join(dir, "missing.jpg"))
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager("-resized", 95)

	dst := filepath.Join(dir, "out-resized.jpg")
	require.NoError(t, fm.Encode(imaging.New(32, 20, color.White), dst))

	img, err := imaging.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 20), img.Bounds())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be renamed away")
}

func TestEncode_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager("-resized", 95)

	err := fm.Encode(imaging.New(8, 8, color.White), filepath.Join(dir, "missing", "out.jpg"))
	assert.ErrorIs(t, err, ErrEncode)

	// Renaming onto a directory fails after the data has been written.
	target := filepath.Join(dir, "taken-resized.jpg")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0755))
	err = fm.Encode(imaging.New(8, 8, color.White), target)
	assert.ErrorIs(t, err, ErrEncode)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the pre-existing directory should remain")
}
