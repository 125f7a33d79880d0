package ports

import (
	"context"
	"io"
)

// ImageOptions tunes display URL resolution. Zero values mean "as stored".
type ImageOptions struct {
	Width  int
	Height int
}

// ImageStore is the image lifecycle contract. Implementations store binary
// content outside the database and hand back a stable reference (a
// filename or a provider public id) that rows persist. Storage is not
// transactional: callers that upload before a database transaction must
// compensate by deleting the uploaded references when the transaction
// fails.
type ImageStore interface {
	// Store uploads the content and returns its stable reference.
	// The hint is an original filename used to derive the extension.
	// Failures surface as StorageFailureError.
	Store(ctx context.Context, content io.Reader, hint string) (string, error)

	// Delete removes a stored image. Returns false without error when the
	// reference is already gone, so deletes are idempotent.
	Delete(ctx context.Context, ref string) (bool, error)

	// ResolveDisplayURL converts a stable reference to a URL the frontend
	// can serve, applying the given options where the backend supports
	// transformations.
	ResolveDisplayURL(ref string, opts ImageOptions) string
}
