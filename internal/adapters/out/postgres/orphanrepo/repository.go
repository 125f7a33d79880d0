// Package orphanrepo persists image references whose compensating delete
// failed, so the sweeper can retry them.
package orphanrepo

import (
	"context"
	"time"

	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// OrphanImageDTO is one parked image reference.
type OrphanImageDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Ref      string    `gorm:"size:512;not null"`
	Reason   string    `gorm:"size:255"`
	ParkedAt time.Time `gorm:"autoCreateTime;index"`
}

// TableName overrides GORM's default to "orphan_images".
func (OrphanImageDTO) TableName() string {
	return "orphan_images"
}

// GormOrphanLedger implements ports.OrphanImageLedger using GORM. It runs
// on the base connection, never inside a unit of work: a parked reference
// must survive the rollback it compensates for.
type GormOrphanLedger struct {
	db *gorm.DB
}

// NewGormOrphanLedger creates the ledger on the base connection.
func NewGormOrphanLedger(db *gorm.DB) *GormOrphanLedger {
	return &GormOrphanLedger{db: db}
}

// Park records a reference for later deletion retries.
func (l *GormOrphanLedger) Park(ctx context.Context, ref, reason string) error {
	dto := OrphanImageDTO{Ref: ref, Reason: reason}
	return l.db.WithContext(ctx).Create(&dto).Error
}

// List returns up to limit parked references, oldest first.
func (l *GormOrphanLedger) List(ctx context.Context, limit int) ([]ports.OrphanImage, error) {
	var dtos []OrphanImageDTO
	err := l.db.WithContext(ctx).
		Order("parked_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orphans := make([]ports.OrphanImage, 0, len(dtos))
	for _, dto := range dtos {
		orphans = append(orphans, ports.OrphanImage{
			ID:       dto.ID,
			Ref:      dto.Ref,
			Reason:   dto.Reason,
			ParkedAt: dto.ParkedAt,
		})
	}

	return orphans, nil
}

// Remove drops a ledger entry after a successful delete.
func (l *GormOrphanLedger) Remove(ctx context.Context, id int64) error {
	return l.db.WithContext(ctx).Delete(&OrphanImageDTO{}, "id = ?", id).Error
}
