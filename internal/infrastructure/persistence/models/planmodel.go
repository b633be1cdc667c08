package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/shared/constants"
)

// PlanModel represents the database persistence model for catalog plans.
type PlanModel struct {
	ID           uint   `gorm:"primarykey"`
	Slug         string `gorm:"uniqueIndex;not null;size:50"`
	Name         string `gorm:"not null;size:100"`
	BasePriority int    `gorm:"not null"`
	ShowContact  bool   `gorm:"default:false"`
	PriceCents   int64  `gorm:"not null;default:0"`
	Currency     string `gorm:"not null;size:3;default:EUR"`
	DurationDays int    `gorm:"default:0"`
	SortOrder    int    `gorm:"default:0"`
	Active       bool   `gorm:"index;default:true"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}

// BeforeCreate hook for GORM
func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.Currency == "" {
		p.Currency = "EUR"
	}
	return nil
}
