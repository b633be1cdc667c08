package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions.
type SubscriptionModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	UserID    uint   `gorm:"index;not null"`
	PlanSlug  string `gorm:"index;not null;size:50"`
	Status    string `gorm:"index;not null;size:20;default:pending"`
	StartDate time.Time
	EndDate   *time.Time `gorm:"index"`
	PaymentID *uint      `gorm:"index"`
	Version   int        `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
