package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/shared/constants"
)

// UserModel represents the database persistence model for accounts.
type UserModel struct {
	ID          uint   `gorm:"primarykey"`
	Email       string `gorm:"uniqueIndex;not null;size:255"`
	Role        string `gorm:"not null;size:20;default:member"`
	CurrentPlan string `gorm:"size:50"` // denormalized resolver fallback
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
