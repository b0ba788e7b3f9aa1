package repositories

import (
	"errors"
	"time"

	"studiofit_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOnboardingNotFound = errors.New("onboarding record not found")

type OnboardingRepository interface {
	FindByMemberID(memberID string) (*models.Onboarding, error)
	Create(onboarding *models.Onboarding) error
	Update(onboarding *models.Onboarding) error
}

type OnboardingRepositoryImpl struct {
	db *gorm.DB
}

func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &OnboardingRepositoryImpl{db: db}
}

func (r *OnboardingRepositoryImpl) FindByMemberID(memberID string) (*models.Onboarding, error) {
	var onboarding models.Onboarding
	err := r.db.First(&onboarding, "member_id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOnboardingNotFound
		}
		return nil, err
	}
	return &onboarding, nil
}

func (r *OnboardingRepositoryImpl) Create(onboarding *models.Onboarding) error {
	return r.db.Create(onboarding).Error
}

func (r *OnboardingRepositoryImpl) Update(onboarding *models.Onboarding) error {
	result := r.db.Model(onboarding).Updates(map[string]interface{}{
		"personal_info_completed": onboarding.PersonalInfoCompleted,
		"terms_accepted":          onboarding.TermsAccepted,
		"terms_accepted_at":       onboarding.TermsAcceptedAt,
		"terms_version_id":        onboarding.TermsVersionID,
		"onboarding_completed":    onboarding.OnboardingCompleted,
		"onboarding_completed_at": onboarding.OnboardingCompletedAt,
		"updated_at":              time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOnboardingNotFound
	}
	return nil
}
