package repositories

import (
	"errors"
	"time"

	"studiofit_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyLinked = errors.New("member is already linked to an account")
	ErrMemberNotLinked     = errors.New("member is not linked to an account")
)

type MemberRepository interface {
	FindByID(id string) (*models.Member, error)
	FindByAccountID(accountID string) (*models.Member, error)
	CreateWithOnboarding(member *models.Member, onboarding *models.Onboarding) error
	Update(member *models.Member) error
	UpdateStatus(memberID string, status models.MemberStatus) error
	AddCredit(memberID string, delta float64) error

	// LinkAccount sets the back-reference with a conditional update so two
	// concurrent links cannot both win; the unique index on account_id is the
	// store-side backstop for the account-side invariant.
	LinkAccount(memberID string, accountID string) error
	UnlinkAccount(memberID string) error

	FindAll(limit, offset int) ([]models.Member, error)
	CountAll() (int64, error)
}

type MemberRepositoryImpl struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &MemberRepositoryImpl{db: db}
}

func (r *MemberRepositoryImpl) FindByID(id string) (*models.Member, error) {
	var member models.Member
	err := r.db.Preload("Onboarding").First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) FindByAccountID(accountID string) (*models.Member, error) {
	var member models.Member
	err := r.db.Preload("Onboarding").First(&member, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// CreateWithOnboarding inserts the member and its onboarding row together; a
// member without onboarding state is invalid.
func (r *MemberRepositoryImpl) CreateWithOnboarding(member *models.Member, onboarding *models.Onboarding) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		onboarding.MemberID = member.ID
		return tx.Create(onboarding).Error
	})
}

func (r *MemberRepositoryImpl) Update(member *models.Member) error {
	result := r.db.Model(member).Updates(map[string]interface{}{
		"first_name":   member.FirstName,
		"last_name":    member.LastName,
		"status":       member.Status,
		"member_notes": member.MemberNotes,
		"updated_at":   time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepositoryImpl) UpdateStatus(memberID string, status models.MemberStatus) error {
	result := r.db.Model(&models.Member{}).Where("id = ?", memberID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepositoryImpl) AddCredit(memberID string, delta float64) error {
	result := r.db.Model(&models.Member{}).Where("id = ?", memberID).
		Update("credit", gorm.Expr("credit + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepositoryImpl) LinkAccount(memberID string, accountID string) error {
	result := r.db.Model(&models.Member{}).
		Where("id = ? AND account_id IS NULL", memberID).
		Updates(map[string]interface{}{
			"account_id": accountID,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish missing from already-linked for the caller.
		if _, err := r.FindByID(memberID); err != nil {
			return err
		}
		return ErrMemberAlreadyLinked
	}
	return nil
}

func (r *MemberRepositoryImpl) UnlinkAccount(memberID string) error {
	result := r.db.Model(&models.Member{}).
		Where("id = ? AND account_id IS NOT NULL", memberID).
		Updates(map[string]interface{}{
			"account_id": nil,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(memberID); err != nil {
			return err
		}
		return ErrMemberNotLinked
	}
	return nil
}

func (r *MemberRepositoryImpl) FindAll(limit, offset int) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Preload("Onboarding").Order("created_at DESC").Limit(limit).Offset(offset).Find(&members).Error
	return members, err
}

func (r *MemberRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Member{}).Count(&count).Error
	return count, err
}
