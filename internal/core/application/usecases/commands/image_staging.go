package commands

import (
	"bytes"
	"context"
	"log/slog"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ImageUpload is binary image content addressed to one of the product's
// image slots (1-based).
type ImageUpload struct {
	Slot    int
	Name    string
	Content []byte
}

func validateUploads(uploads []ImageUpload) error {
	seen := make(map[int]bool, len(uploads))
	for _, up := range uploads {
		if up.Slot < 1 || up.Slot > 4 {
			return errs.NewValueIsInvalidError("imageSlot")
		}
		if seen[up.Slot] {
			return errs.NewValueIsInvalidError("imageSlot")
		}
		if len(up.Content) == 0 {
			return errs.NewValueIsRequiredError("imageContent")
		}
		seen[up.Slot] = true
	}
	return nil
}

// stageUploads stores every upload and returns slot to stable reference.
// Storage happens before the database transaction; when one upload fails,
// the references stored so far are released and the failure is returned.
func stageUploads(
	ctx context.Context,
	store ports.ImageStore,
	ledger ports.OrphanImageLedger,
	logger *slog.Logger,
	uploads []ImageUpload,
) (map[int]string, error) {
	staged := make(map[int]string, len(uploads))

	for _, up := range uploads {
		ref, err := store.Store(ctx, bytes.NewReader(up.Content), up.Name)
		if err != nil {
			releaseImages(ctx, store, ledger, logger, "staging aborted", stagedRefs(staged))
			return nil, err
		}
		staged[up.Slot] = ref
	}

	return staged, nil
}

func stagedRefs(staged map[int]string) []string {
	refs := make([]string, 0, len(staged))
	for _, ref := range staged {
		refs = append(refs, ref)
	}
	return refs
}

// releaseImages deletes stored references best-effort. Each reference is
// tried once; a failed delete is logged and parked in the orphan ledger
// so the sweeper can retry it later. Errors never propagate: release runs
// on compensation and cleanup paths where the original error must win.
func releaseImages(
	ctx context.Context,
	store ports.ImageStore,
	ledger ports.OrphanImageLedger,
	logger *slog.Logger,
	reason string,
	refs []string,
) {
	for _, ref := range refs {
		if _, err := store.Delete(ctx, ref); err != nil {
			logger.ErrorContext(ctx, "image release failed",
				"ref", ref, "reason", reason, "error", err)
			if ledger != nil {
				if parkErr := ledger.Park(ctx, ref, reason); parkErr != nil {
					logger.ErrorContext(ctx, "orphan image parking failed",
						"ref", ref, "error", parkErr)
				}
			}
		}
	}
}
