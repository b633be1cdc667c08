package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.PlanModel{},
		&models.ProfileModel{},
		&models.PaymentModel{},
		&models.SubscriptionModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the model structs.
// Development only; versioned SQL scripts own the schema elsewhere.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting GORM auto-migration", "models", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
