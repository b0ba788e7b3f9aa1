package database

import (
	"studiofit_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model. The unique
// indexes on members.account_id, trainers.account_id and the
// (session_id, member_id) pair back the exclusivity invariants; migration
// must run before the server accepts traffic.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Member{},
		&models.Trainer{},
		&models.Onboarding{},
		&models.Terms{},
		&models.AuditLog{},
		&models.ClassSession{},
		&models.Registration{},
		&models.PaymentTransaction{},
	)
}
