// Package storage abstracts where evidence uploads live: a local directory
// in development, an S3-compatible bucket in production.
package storage

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound indicates the object key does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectStore stores and retrieves uploaded evidence blobs.
type ObjectStore interface {
	// Put writes the object under key, replacing any previous content.
	Put(ctx context.Context, key, contentType string, r io.Reader) error
	// Open returns a reader for the object. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]+`)

// ObjectKey derives a collision-free storage key from an uploaded filename.
// The base name is sanitized so no path component survives.
func ObjectKey(filename string) string {
	base := filename
	if idx := strings.LastIndexAny(base, `/\`); idx >= 0 {
		base = base[idx+1:]
	}
	base = unsafeKeyChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "_")
	if base == "" || base == "." || base == ".." {
		base = "upload"
	}
	return uuid.NewString() + "-" + base
}
