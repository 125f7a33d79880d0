package imagestore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/internal/adapters/out/imagestore"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageStore_Store(t *testing.T) {
	dir := t.TempDir()
	store, err := imagestore.NewLocalImageStore(dir, "http://localhost:8080/images")
	require.NoError(t, err)

	ref, err := store.Store(t.Context(), strings.NewReader("jpeg bytes"), "photo.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	content, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))
}

func TestLocalImageStore_Store_UniqueRefs(t *testing.T) {
	store, err := imagestore.NewLocalImageStore(t.TempDir(), "http://localhost:8080/images")
	require.NoError(t, err)

	first, err := store.Store(t.Context(), strings.NewReader("a"), "a.png")
	require.NoError(t, err)
	second, err := store.Store(t.Context(), strings.NewReader("b"), "a.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalImageStore_Store_SuspiciousHintDropsExtension(t *testing.T) {
	store, err := imagestore.NewLocalImageStore(t.TempDir(), "http://localhost:8080/images")
	require.NoError(t, err)

	tests := []struct {
		name string
		hint string
	}{
		{name: "no extension", hint: "photo"},
		{name: "overlong extension", hint: "photo.superduperlong"},
		{name: "non alphanumeric extension", hint: "photo.p~g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, storeErr := store.Store(t.Context(), strings.NewReader("x"), tt.hint)
			require.NoError(t, storeErr)
			assert.NotContains(t, ref, ".")
		})
	}
}

func TestLocalImageStore_Delete(t *testing.T) {
	store, err := imagestore.NewLocalImageStore(t.TempDir(), "http://localhost:8080/images")
	require.NoError(t, err)

	ref, err := store.Store(t.Context(), strings.NewReader("bytes"), "pic.png")
	require.NoError(t, err)

	existed, err := store.Delete(t.Context(), ref)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = store.Delete(t.Context(), ref)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestLocalImageStore_Delete_RejectsPathTraversal(t *testing.T) {
	store, err := imagestore.NewLocalImageStore(t.TempDir(), "http://localhost:8080/images")
	require.NoError(t, err)

	_, err = store.Delete(t.Context(), "../../etc/passwd")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLocalImageStore_ResolveDisplayURL(t *testing.T) {
	store, err := imagestore.NewLocalImageStore(t.TempDir(), "http://localhost:8080/images/")
	require.NoError(t, err)

	url := store.ResolveDisplayURL("abc.png", ports.ImageOptions{Width: 300})
	assert.Equal(t, "http://localhost:8080/images/abc.png", url)

	assert.Empty(t, store.ResolveDisplayURL("", ports.ImageOptions{}))
}

func TestNewLocalImageStore_RequiresDir(t *testing.T) {
	_, err := imagestore.NewLocalImageStore("", "http://localhost:8080/images")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
