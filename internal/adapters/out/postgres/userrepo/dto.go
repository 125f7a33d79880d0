// Package userrepo persists user accounts.
package userrepo

import (
	"time"

	"storefront/internal/core/domain/model/user"
)

// UserDTO is the database row for a user account. Email carries a unique
// index; registration conflicts surface through error translation.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Age          int
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName overrides GORM's default to "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Age:          u.Age(),
		PasswordHash: u.PasswordHash(),
		Active:       u.Active(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.Name, dto.Email, dto.Age, dto.PasswordHash, dto.Active)
}
