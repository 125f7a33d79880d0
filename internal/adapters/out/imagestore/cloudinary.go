package imagestore

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryImageStore stores images in Cloudinary. References are the
// public ids of the uploaded assets, so rows stay valid even when display
// URL parameters change.
type CloudinaryImageStore struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryImageStore creates a store from a cloudinary:// URL.
// Uploads land in the given folder, which may be empty.
func NewCloudinaryImageStore(cloudinaryURL, folder string) (*CloudinaryImageStore, error) {
	if cloudinaryURL == "" {
		return nil, errs.NewValueIsRequiredError("cloudinaryUrl")
	}

	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("cloudinaryUrl", err)
	}

	return &CloudinaryImageStore{client: client, folder: folder}, nil
}

// Store uploads the content under a fresh public id. The hint is unused:
// Cloudinary detects the format from the bytes.
func (s *CloudinaryImageStore) Store(ctx context.Context, content io.Reader, _ string) (string, error) {
	publicID := uuid.NewString()
	if s.folder != "" {
		publicID = s.folder + "/" + publicID
	}

	result, err := s.client.Upload.Upload(ctx, content, uploader.UploadParams{
		PublicID:  publicID,
		Overwrite: api.Bool(false),
	})
	if err != nil {
		return "", errs.NewStorageFailureError(publicID, err)
	}

	return result.PublicID, nil
}

// Delete destroys the asset for the reference. Cloudinary reports deletes
// of unknown ids as "not found", which maps to the idempotent false.
func (s *CloudinaryImageStore) Delete(ctx context.Context, ref string) (bool, error) {
	if ref == "" {
		return false, errs.NewValueIsInvalidError("ref")
	}

	result, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: ref})
	if err != nil {
		return false, errs.NewStorageFailureError(ref, err)
	}

	switch strings.ToLower(result.Result) {
	case "ok":
		return true, nil
	case "not found":
		return false, nil
	default:
		return false, errs.NewStorageFailureError(ref, errors.New(result.Result))
	}
}

// ResolveDisplayURL builds a delivery URL for the asset, applying fill
// scaling when width or height is set.
func (s *CloudinaryImageStore) ResolveDisplayURL(ref string, opts ports.ImageOptions) string {
	if ref == "" {
		return ""
	}

	asset, err := s.client.Image(ref)
	if err != nil {
		return ""
	}

	if t := transformationFor(opts); t != "" {
		asset.Transformation = t
	}

	url, err := asset.String()
	if err != nil {
		return ""
	}
	return url
}

func transformationFor(opts ports.ImageOptions) string {
	parts := make([]string, 0, 3)
	if opts.Width > 0 {
		parts = append(parts, "w_"+strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		parts = append(parts, "h_"+strconv.Itoa(opts.Height))
	}
	if len(parts) == 0 {
		return ""
	}
	parts = append(parts, "c_fill")
	return strings.Join(parts, ",")
}
