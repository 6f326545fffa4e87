// Package filestorage provides the file storage port for user-uploaded
// images, backed by gocloud.dev blob buckets so local disk, GCS, S3 and
// in-memory buckets are interchangeable through a URL.
package filestorage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/places/internal/result"
)

// FileStorage uploads, deletes, and addresses user files. Upload results
// carry the public URL of the stored object.
type FileStorage interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) result.Result[string]
	// UploadBase64 accepts raw base64 or a data URI
	// ("data:image/png;base64,....") as produced by mobile clients.
	UploadBase64(ctx context.Context, objectPath, encoded string) result.Result[string]
	Delete(ctx context.Context, objectPath string) result.Result[bool]
	PublicURL(objectPath string) string
}

// GeneratePath builds a collision-free object path for a user upload,
// grouping objects per user: uploads/<user-id>/<timestamp>-<safe-filename>.
func GeneratePath(userID uuid.UUID, filename string) string {
	base := path.Base(strings.TrimSpace(filename))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '-'
	}, base)

	return fmt.Sprintf("uploads/%s/%d-%s", userID, time.Now().UTC().UnixNano(), base)
}
