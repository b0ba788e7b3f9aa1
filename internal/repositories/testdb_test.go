package repositories

import (
	"testing"

	"studiofit_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.Member{},
		&models.Trainer{},
		&models.Onboarding{},
		&models.Terms{},
		&models.AuditLog{},
		&models.ClassSession{},
		&models.Registration{},
		&models.PaymentTransaction{},
	))
	return db
}

func createTestAccount(t *testing.T, db *gorm.DB, email string) *models.Account {
	t.Helper()
	account := &models.Account{
		Email:        email,
		PasswordHash: "x",
		Status:       models.AccountStatusPending,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func createTestMember(t *testing.T, db *gorm.DB, firstName string) *models.Member {
	t.Helper()
	member := &models.Member{
		FirstName: firstName,
		LastName:  "Tester",
		Status:    models.MemberStatusInactive,
	}
	require.NoError(t, db.Create(member).Error)
	return member
}
