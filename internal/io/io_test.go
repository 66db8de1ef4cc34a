package ioutils

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	ctx := context.Background()

	t.Run("writes file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.pdf")

		require.NoError(t, WriteFileAtomic(ctx, path, []byte("%PDF-1.4")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file must not remain")
	})

	t.Run("cancelled context leaves nothing", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.pdf")
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := WriteFileAtomic(cancelled, path, []byte("data"))

		assert.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, path)
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.pdf")

		assert.Error(t, WriteFileAtomic(ctx, path, []byte("data")))
		assert.NoFileExists(t, path)
	})
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(path))
	assert.DirExists(t, path)
	assert.NoError(t, EnsureDir(path))
}

func TestRenderBitmap(t *testing.T) {
	svc := NewImageService()
	bitmap := [][]bool{
		{true, false},
		{false, true},
	}

	data, err := svc.RenderBitmap(context.Background(), bitmap, 10)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())

	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Zero(t, r, "top-left module is dark")
	r, _, _, _ = img.At(8, 1).RGBA()
	assert.Equal(t, uint32(0xFFFF), r, "top-right module is light")

	_, err = svc.RenderBitmap(context.Background(), nil, 10)
	assert.ErrorIs(t, err, ErrEmptyBitmap)
}
