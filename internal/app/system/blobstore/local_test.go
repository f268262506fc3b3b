package blobstore_test

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/dalemusser/folio/internal/app/system/blobstore"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocal_PutGetWithInfo(t *testing.T) {
	store, err := blobstore.NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	body := `<svg xmlns="http://www.w3.org/2000/svg"/>`
	require.NoError(t, store.Put(ctx, "nested/logo.svg", strings.NewReader(body), &storage.PutOptions{
		ContentType: "image/svg+xml",
	}))

	rc, info, err := store.GetWithInfo(ctx, "nested/logo.svg")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
	assert.Equal(t, int64(len(body)), info.Size)
	assert.Equal(t, "image/svg+xml", info.ContentType)
	assert.NotEmpty(t, info.ETag)
	assert.False(t, info.LastModified.IsZero())
}

func TestNewLocal_FullPathServesFromRoot(t *testing.T) {
	root := t.TempDir()
	store, err := blobstore.NewLocal(root)
	require.NoError(t, err)
	require.NoError(t, store.PutBytes(context.Background(), "cv.pdf", []byte("%PDF-1.4"), nil))

	full, err := store.GetFullPath("cv.pdf")
	require.NoError(t, err)
	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestNewLocal_MissingIsNotFound(t *testing.T) {
	store, err := blobstore.NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = store.Head(context.Background(), "missing.jpg")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNewLocal_NoPublicURL(t *testing.T) {
	store, err := blobstore.NewLocal(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.URL("photo.jpg"))
	_, err = store.PresignedURL(context.Background(), "photo.jpg", nil)
	assert.ErrorIs(t, err, storage.ErrPresignNotSupported)
}

func TestNewLocal_RequiresDir(t *testing.T) {
	_, err := blobstore.NewLocal("")
	assert.Error(t, err)

	_, err = blobstore.NewLocal("   ")
	assert.Error(t, err)
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"photo.jpg", "photo.jpg", false},
		{"/photo.jpg", "photo.jpg", false},
		{"a//b/./c.jpg", "a/b/c.jpg", false},
		{`a\b.jpg`, "a/b.jpg", false},
		{"", "", true},
		{"   ", "", true},
		{"/", "", true},
		{"../x", "", true},
		{"a/../../x", "", true},
		{"nul\x00.jpg", "", true},
	}
	for _, tt := range tests {
		got, err := blobstore.CleanKey(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, storage.ErrInvalidPath, "CleanKey(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "CleanKey(%q)", tt.in)
		assert.Equal(t, tt.want, got, "CleanKey(%q)", tt.in)
	}
}
