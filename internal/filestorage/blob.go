package filestorage

import (
	"context"
	"encoding/base64"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	apperrors "github.com/allisson/places/internal/errors"
	"github.com/allisson/places/internal/result"

	// Register blob bucket drivers.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// dataURIMarker separates the media-type header from the payload in a data URI.
const dataURIMarker = ";base64,"

// BlobStorage implements FileStorage on a gocloud.dev bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// OpenBucket opens the bucket named by bucketURL (mem://, file:///...,
// gs://..., s3://...). The returned storage derives public URLs by joining
// publicBaseURL with the object path.
func OpenBucket(ctx context.Context, bucketURL, publicBaseURL string) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open blob bucket")
	}
	return NewBlobStorage(bucket, publicBaseURL), nil
}

// NewBlobStorage wraps an already-open bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) *BlobStorage {
	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload writes data under objectPath and returns the public URL.
func (s *BlobStorage) Upload(
	ctx context.Context,
	objectPath string,
	data []byte,
	contentType string,
) result.Result[string] {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, objectPath, data, opts); err != nil {
		return result.Fail[string](
			apperrors.Infrastructure(apperrors.CodeUploadFailed, err.Error()),
		)
	}
	return result.Ok(s.PublicURL(objectPath))
}

// UploadBase64 decodes a raw base64 payload or a data URI and uploads it.
// The content type comes from the data URI header when present, otherwise
// application/octet-stream.
func (s *BlobStorage) UploadBase64(
	ctx context.Context,
	objectPath, encoded string,
) result.Result[string] {
	contentType := "application/octet-stream"
	payload := encoded

	if strings.HasPrefix(encoded, "data:") {
		marker := strings.Index(encoded, dataURIMarker)
		if marker < 0 {
			return result.Fail[string](apperrors.Validation(
				apperrors.CodeUploadFailed, "malformed data URI",
			))
		}
		contentType = encoded[len("data:"):marker]
		payload = encoded[marker+len(dataURIMarker):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return result.Fail[string](apperrors.Validation(
			apperrors.CodeUploadFailed, "invalid base64 payload",
		))
	}

	return s.Upload(ctx, objectPath, data, contentType)
}

// Delete removes the object. Deleting an absent object succeeds.
func (s *BlobStorage) Delete(ctx context.Context, objectPath string) result.Result[bool] {
	if err := s.bucket.Delete(ctx, objectPath); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return result.Ok(true)
		}
		return result.Fail[bool](
			apperrors.Infrastructure(apperrors.CodeStorageError, err.Error()),
		)
	}
	return result.Ok(true)
}

// PublicURL joins the configured base URL with the object path.
func (s *BlobStorage) PublicURL(objectPath string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(objectPath, "/")
}

// Close releases the underlying bucket.
func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}

var _ FileStorage = (*BlobStorage)(nil)
