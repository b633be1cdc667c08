package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/shared/constants"
)

// ProfileModel represents the database persistence model for profiles.
// This is the anti-corruption layer between domain and database.
type ProfileModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	DisplayName  string `gorm:"not null;size:100"`
	Slug         string `gorm:"index;not null;size:120"`
	Bio          string `gorm:"type:text"`
	BioHTML      string `gorm:"type:text"`
	City         string `gorm:"index;size:100"`
	Contact      string `gorm:"size:255"`
	Age          int    `gorm:"default:0"`
	Images       datatypes.JSON
	AvailableNow bool   `gorm:"default:false"`
	Status       string `gorm:"index;not null;size:20;default:pending"`

	ManualPlanID      *string `gorm:"size:50"`
	RankingSuspended  bool    `gorm:"default:false"`
	RankingBoostUntil *time.Time
	LastActiveAt      *time.Time `gorm:"index"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return constants.TableProfiles
}
