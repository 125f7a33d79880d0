// Package grouprepo persists product groups.
package grouprepo

import "storefront/internal/core/domain/model/group"

// GroupDTO is the database row for a product group.
type GroupDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:255;not null;index"`
	Active bool
}

// TableName overrides GORM's default to "product_groups".
func (GroupDTO) TableName() string {
	return "product_groups"
}

func fromDomain(g *group.Group) GroupDTO {
	return GroupDTO{
		ID:     g.ID(),
		Name:   g.Name(),
		Active: g.Active(),
	}
}

func toDomain(dto GroupDTO) (*group.Group, error) {
	return group.RestoreGroup(dto.ID, dto.Name, dto.Active)
}
