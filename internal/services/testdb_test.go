package services

import (
	"testing"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
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

type repoBundle struct {
	accounts   repositories.AccountRepository
	members    repositories.MemberRepository
	trainers   repositories.TrainerRepository
	onboarding repositories.OnboardingRepository
	terms      repositories.TermsRepository
	audit      repositories.AuditRepository
	classes    repositories.ClassRepository
	payments   repositories.PaymentRepository
}

func newRepoBundle(db *gorm.DB) *repoBundle {
	return &repoBundle{
		accounts:   repositories.NewAccountRepository(db),
		members:    repositories.NewMemberRepository(db),
		trainers:   repositories.NewTrainerRepository(db),
		onboarding: repositories.NewOnboardingRepository(db),
		terms:      repositories.NewTermsRepository(db),
		audit:      repositories.NewAuditRepository(db),
		classes:    repositories.NewClassRepository(db),
		payments:   repositories.NewPaymentRepository(db),
	}
}

func seedAccount(t *testing.T, db *gorm.DB, email string, status models.AccountStatus) *models.Account {
	t.Helper()
	account := &models.Account{
		Email:        email,
		PasswordHash: "x",
		Status:       status,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func seedMember(t *testing.T, db *gorm.DB, name string, status models.MemberStatus) *models.Member {
	t.Helper()
	member := &models.Member{FirstName: name, LastName: "Tester", Status: status}
	require.NoError(t, db.Create(member).Error)
	require.NoError(t, db.Create(&models.Onboarding{MemberID: member.ID}).Error)
	return member
}

func seedTrainer(t *testing.T, db *gorm.DB, name string) *models.Trainer {
	t.Helper()
	trainer := &models.Trainer{FirstName: name, LastName: "Coach", Status: models.TrainerStatusActive}
	require.NoError(t, db.Create(trainer).Error)
	return trainer
}

func assertCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected *apperrors.AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
