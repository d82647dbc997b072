package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc_thumb.jpg", ThumbKey("abc.jpg"))
	assert.Equal(t, "abc.def_thumb.png", ThumbKey("abc.def.png"))
}

func TestWebpKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc.webp", WebpKey("abc.jpg"))
	assert.Equal(t, "abc.webp", WebpKey("abc.webp"))
}

func TestGenerateVariantsLeavesWebpOriginalAlone(t *testing.T) {
	t.Parallel()

	s := &MediaStore{baseDir: t.TempDir()}
	require.NoError(t, os.MkdirAll(filepath.Join(s.baseDir, newsSubdir), 0755))

	original := []byte("webp-bytes")
	require.NoError(t, os.WriteFile(s.Path("pic.webp"), original, 0644))

	require.NoError(t, s.generateVariants("pic.webp"))

	got, err := os.ReadFile(s.Path("pic.webp"))
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestDeleteNewsImageRemovesWebpOriginal(t *testing.T) {
	t.Parallel()

	s := &MediaStore{baseDir: t.TempDir()}
	require.NoError(t, os.MkdirAll(filepath.Join(s.baseDir, newsSubdir), 0755))
	require.NoError(t, os.WriteFile(s.Path("pic.webp"), []byte("webp-bytes"), 0644))

	require.NoError(t, s.DeleteNewsImage("pic.webp"))

	_, err := os.Stat(s.Path("pic.webp"))
	assert.True(t, os.IsNotExist(err))
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/uploads/news/abc.jpg", PublicURL("abc.jpg"))
	assert.Equal(t, "", PublicURL(""))
}
