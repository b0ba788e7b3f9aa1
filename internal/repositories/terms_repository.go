package repositories

import (
	"errors"
	"time"

	"studiofit_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTermsNotFound = errors.New("terms version not found")
	ErrNoActiveTerms = errors.New("no active terms version")
)

type TermsRepository interface {
	FindByID(id string) (*models.Terms, error)
	FindActiveByType(termType models.TermType) (*models.Terms, error)
	Create(terms *models.Terms) error
	FindAll(limit, offset int) ([]models.Terms, error)

	// ActivateExclusive deactivates every sibling of the target's term type
	// and activates the target in one transaction, so the one-active-per-type
	// invariant holds even across a crash mid-operation.
	ActivateExclusive(termsID string) (*models.Terms, error)
}

type TermsRepositoryImpl struct {
	db *gorm.DB
}

func NewTermsRepository(db *gorm.DB) TermsRepository {
	return &TermsRepositoryImpl{db: db}
}

func (r *TermsRepositoryImpl) FindByID(id string) (*models.Terms, error) {
	var terms models.Terms
	err := r.db.First(&terms, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermsNotFound
		}
		return nil, err
	}
	return &terms, nil
}

func (r *TermsRepositoryImpl) FindActiveByType(termType models.TermType) (*models.Terms, error) {
	var terms models.Terms
	err := r.db.Where("term_type = ? AND is_active = ?", termType, true).First(&terms).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveTerms
		}
		return nil, err
	}
	return &terms, nil
}

func (r *TermsRepositoryImpl) Create(terms *models.Terms) error {
	return r.db.Create(terms).Error
}

func (r *TermsRepositoryImpl) FindAll(limit, offset int) ([]models.Terms, error) {
	var versions []models.Terms
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&versions).Error
	return versions, err
}

func (r *TermsRepositoryImpl) ActivateExclusive(termsID string) (*models.Terms, error) {
	var activated models.Terms

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var target models.Terms
		if err := tx.First(&target, "id = ?", termsID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTermsNotFound
			}
			return err
		}

		if err := tx.Model(&models.Terms{}).
			Where("term_type = ? AND id <> ?", target.TermType, target.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&target).Updates(map[string]interface{}{
			"is_active":      true,
			"effective_date": now,
			"updated_at":     now,
		}).Error; err != nil {
			return err
		}

		target.IsActive = true
		target.EffectiveDate = now
		activated = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &activated, nil
}
