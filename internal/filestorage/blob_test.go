package filestorage

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/places/internal/errors"
)

func testStorage(t *testing.T) *BlobStorage {
	t.Helper()

	storage, err := OpenBucket(context.Background(), "mem://", "https://cdn.example.com")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, storage.Close())
	})

	return storage
}

func TestBlobStorage_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		storage := testStorage(t)

		res := storage.Upload(ctx, "uploads/u1/photo.jpg", []byte("jpeg-bytes"), "image/jpeg")

		require.True(t, res.Success())
		assert.Equal(t, "https://cdn.example.com/uploads/u1/photo.jpg", res.Data())

		data, err := storage.bucket.ReadAll(ctx, "uploads/u1/photo.jpg")
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), data)
	})
}

func TestBlobStorage_UploadBase64(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RawBase64", func(t *testing.T) {
		storage := testStorage(t)
		encoded := base64.StdEncoding.EncodeToString([]byte("png-bytes"))

		res := storage.UploadBase64(ctx, "uploads/u1/photo.png", encoded)

		require.True(t, res.Success())

		data, err := storage.bucket.ReadAll(ctx, "uploads/u1/photo.png")
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("Success_DataURI", func(t *testing.T) {
		storage := testStorage(t)
		encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

		res := storage.UploadBase64(ctx, "uploads/u1/photo.png", encoded)

		require.True(t, res.Success())

		attrs, err := storage.bucket.Attributes(ctx, "uploads/u1/photo.png")
		require.NoError(t, err)
		assert.Equal(t, "image/png", attrs.ContentType)
	})

	t.Run("Error_MalformedDataURI", func(t *testing.T) {
		storage := testStorage(t)

		res := storage.UploadBase64(ctx, "uploads/u1/photo.png", "data:image/png,no-marker")

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeUploadFailed, res.Code())
	})

	t.Run("Error_InvalidBase64", func(t *testing.T) {
		storage := testStorage(t)

		res := storage.UploadBase64(ctx, "uploads/u1/photo.png", "!!not-base64!!")

		require.False(t, res.Success())
		assert.Equal(t, apperrors.CodeUploadFailed, res.Code())
	})
}

func TestBlobStorage_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		storage := testStorage(t)

		require.True(t, storage.Upload(ctx, "uploads/u1/photo.jpg", []byte("x"), "image/jpeg").Success())
		assert.True(t, storage.Delete(ctx, "uploads/u1/photo.jpg").Success())
	})

	t.Run("Success_AbsentObject", func(t *testing.T) {
		storage := testStorage(t)

		assert.True(t, storage.Delete(ctx, "uploads/u1/missing.jpg").Success())
	})
}

func TestBlobStorage_PublicURL(t *testing.T) {
	storage := NewBlobStorage(nil, "https://cdn.example.com/")

	assert.Equal(t, "https://cdn.example.com/uploads/a.jpg", storage.PublicURL("uploads/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/uploads/a.jpg", storage.PublicURL("/uploads/a.jpg"))
}

func TestGeneratePath(t *testing.T) {
	userID := uuid.New()

	t.Run("Success_GroupsByUser", func(t *testing.T) {
		p := GeneratePath(userID, "My Photo.JPG")

		assert.True(t, strings.HasPrefix(p, "uploads/"+userID.String()+"/"))
		assert.True(t, strings.HasSuffix(p, "-My-Photo.JPG"))
	})

	t.Run("Success_StripsDirectories", func(t *testing.T) {
		p := GeneratePath(userID, "../../etc/passwd")

		assert.NotContains(t, p, "..")
		assert.True(t, strings.HasSuffix(p, "-passwd"))
	})

	t.Run("Success_EmptyFilenameFallsBack", func(t *testing.T) {
		p := GeneratePath(userID, "")

		assert.True(t, strings.HasSuffix(p, "-file"))
	})

	t.Run("Success_UniquePaths", func(t *testing.T) {
		assert.NotEqual(t, GeneratePath(userID, "a.jpg"), GeneratePath(userID, "a.jpg"))
	})
}
