package repositories

import (
	"errors"
	"time"

	"studiofit_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

type AccountRepository interface {
	FindByID(id string) (*models.Account, error)
	FindByEmail(email string) (*models.Account, error)
	Create(account *models.Account) error
	Update(account *models.Account) error
	UpdateStatus(accountID string, status models.AccountStatus) error
	UpdatePassword(accountID string, passwordHash string) error
	UpdateResetToken(accountID string, token string) error
	FindByResetToken(token string) (*models.Account, error)
	FindAll(limit, offset int) ([]models.Account, error)
	CountAll() (int64, error)
}

type AccountRepositoryImpl struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

func (r *AccountRepositoryImpl) FindByID(id string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) Create(account *models.Account) error {
	var existing models.Account
	if err := r.db.Where("email = ?", account.Email).First(&existing).Error; err == nil {
		return ErrAccountAlreadyExists
	}

	return r.db.Create(account).Error
}

func (r *AccountRepositoryImpl) Update(account *models.Account) error {
	result := r.db.Model(account).Updates(map[string]interface{}{
		"email":              account.Email,
		"is_admin":           account.IsAdmin,
		"accessible_portals": account.AccessiblePortals,
		"status":             account.Status,
		"auth_identity_ref":  account.AuthIdentityRef,
		"updated_at":         time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) UpdateStatus(accountID string, status models.AccountStatus) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", accountID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) UpdatePassword(accountID string, passwordHash string) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", accountID).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"reset_token":   "",
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) UpdateResetToken(accountID string, token string) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", accountID).Update("reset_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) FindByResetToken(token string) (*models.Account, error) {
	var account models.Account
	err := r.db.Where("reset_token = ? AND reset_token != ''", token).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindAll(limit, offset int) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Count(&count).Error
	return count, err
}
