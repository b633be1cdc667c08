package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/shared/constants"
)

// PaymentModel represents the database persistence model for payment
// proofs.
type PaymentModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	UserID       uint   `gorm:"index;not null"`
	PlanSlug     string `gorm:"not null;size:50"`
	AmountCents  int64  `gorm:"not null"`
	Currency     string `gorm:"not null;size:3"`
	ProofURL     string `gorm:"not null;size:500"`
	Status       string `gorm:"index;not null;size:20;default:submitted"`
	ReviewerID   *uint
	ReviewerNote string `gorm:"size:500"`
	ReviewedAt   *time.Time
	Version      int `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return constants.TablePayments
}
