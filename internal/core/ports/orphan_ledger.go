package ports

import (
	"context"
	"time"
)

// OrphanImage is a stored image reference whose compensating delete
// failed. The sweeper retries these until storage lets go of them.
type OrphanImage struct {
	ID       int64
	Ref      string
	Reason   string
	ParkedAt time.Time
}

// OrphanImageLedger records image references that could not be deleted
// when compensating a failed operation. It runs outside the unit of work:
// parking must survive the very rollback it compensates for.
type OrphanImageLedger interface {
	// Park records a reference for later deletion retries.
	Park(ctx context.Context, ref, reason string) error

	// List returns up to limit parked references, oldest first.
	List(ctx context.Context, limit int) ([]OrphanImage, error)

	// Remove drops a ledger entry after a successful delete.
	Remove(ctx context.Context, id int64) error
}
