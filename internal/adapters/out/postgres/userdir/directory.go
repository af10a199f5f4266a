// Package userdir provides the GORM-backed user directory adapter.
// Order placement consults it to reject orders for unknown accounts.
package userdir

import (
	"context"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the database structure for user accounts.
// The order engine only ever checks existence; account management itself
// lives outside this service.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	CreatedAt time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements ports.UserDirectory against the users table.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM user directory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// Exists reports whether a user account with the given ID exists.
func (d *GormUserDirectory) Exists(ctx context.Context, userID kernel.UUID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := d.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", userID.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
