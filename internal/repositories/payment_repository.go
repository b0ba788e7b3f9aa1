package repositories

import (
	"errors"
	"time"

	"studiofit_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment transaction not found")

type PaymentRepository interface {
	Create(tx *models.PaymentTransaction) error
	FindByID(id string) (*models.PaymentTransaction, error)
	FindByMemberID(memberID string, limit, offset int) ([]models.PaymentTransaction, error)
	UpdateStatus(id string, status models.PaymentStatus) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(tx *models.PaymentTransaction) error {
	return r.db.Create(tx).Error
}

func (r *PaymentRepositoryImpl) FindByID(id string) (*models.PaymentTransaction, error) {
	var payment models.PaymentTransaction
	err := r.db.First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByMemberID(memberID string, limit, offset int) ([]models.PaymentTransaction, error) {
	var payments []models.PaymentTransaction
	err := r.db.Where("member_id = ?", memberID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) UpdateStatus(id string, status models.PaymentStatus) error {
	result := r.db.Model(&models.PaymentTransaction{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
