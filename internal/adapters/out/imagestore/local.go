// Package imagestore provides ImageStore implementations: a local-disk
// store for development and a Cloudinary-backed store for production.
package imagestore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// LocalImageStore keeps images as files in one directory. References are
// uuid-derived filenames so concurrent uploads never collide. Display URLs
// are the base URL joined with the reference; width and height options are
// ignored because plain files cannot transform.
type LocalImageStore struct {
	dir     string
	baseURL string
}

// NewLocalImageStore creates a store rooted at dir, creating it when
// missing. baseURL is the public prefix the files are served under.
func NewLocalImageStore(dir, baseURL string) (*LocalImageStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.NewStorageFailureError(dir, err)
	}

	return &LocalImageStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Store writes the content to a new uuid-named file. The extension comes
// from the hint so browsers keep sniffing the right content type.
func (s *LocalImageStore) Store(ctx context.Context, content io.Reader, hint string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := uuid.NewString() + sanitizeExt(hint)
	path := filepath.Join(s.dir, ref)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errs.NewStorageFailureError(ref, err)
	}

	if _, err = io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", errs.NewStorageFailureError(ref, err)
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", errs.NewStorageFailureError(ref, err)
	}

	return ref, nil
}

// Delete removes the file for the reference. A reference that is already
// gone reports false without error.
func (s *LocalImageStore) Delete(ctx context.Context, ref string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Refs are bare filenames; reject anything trying to walk out of dir.
	if ref == "" || ref != filepath.Base(ref) {
		return false, errs.NewValueIsInvalidError("ref")
	}

	err := os.Remove(filepath.Join(s.dir, ref))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errs.NewStorageFailureError(ref, err)
	}

	return true, nil
}

// ResolveDisplayURL joins the base URL with the reference. Options are
// ignored, local files are served as stored.
func (s *LocalImageStore) ResolveDisplayURL(ref string, _ ports.ImageOptions) string {
	if ref == "" {
		return ""
	}
	return s.baseURL + "/" + ref
}

// sanitizeExt extracts a usable extension from the upload hint. Anything
// suspicious collapses to no extension rather than failing the upload.
func sanitizeExt(hint string) string {
	ext := strings.ToLower(filepath.Ext(hint))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
