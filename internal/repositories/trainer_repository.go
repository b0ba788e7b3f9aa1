package repositories

import (
	"errors"
	"time"

	"studiofit_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrTrainerAlreadyLinked = errors.New("trainer is already linked to an account")
	ErrTrainerNotLinked     = errors.New("trainer is not linked to an account")
)

type TrainerRepository interface {
	FindByID(id string) (*models.Trainer, error)
	FindByAccountID(accountID string) (*models.Trainer, error)
	Create(trainer *models.Trainer) error
	Update(trainer *models.Trainer) error
	LinkAccount(trainerID string, accountID string) error
	UnlinkAccount(trainerID string) error
	FindAll(limit, offset int) ([]models.Trainer, error)
	CountAll() (int64, error)
}

type TrainerRepositoryImpl struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &TrainerRepositoryImpl{db: db}
}

func (r *TrainerRepositoryImpl) FindByID(id string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := r.db.First(&trainer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepositoryImpl) FindByAccountID(accountID string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := r.db.First(&trainer, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepositoryImpl) Create(trainer *models.Trainer) error {
	return r.db.Create(trainer).Error
}

func (r *TrainerRepositoryImpl) Update(trainer *models.Trainer) error {
	result := r.db.Model(trainer).Updates(map[string]interface{}{
		"first_name":     trainer.FirstName,
		"last_name":      trainer.LastName,
		"specialization": trainer.Specialization,
		"bio":            trainer.Bio,
		"hourly_rate":    trainer.HourlyRate,
		"status":         trainer.Status,
		"updated_at":     time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTrainerNotFound
	}
	return nil
}

func (r *TrainerRepositoryImpl) LinkAccount(trainerID string, accountID string) error {
	result := r.db.Model(&models.Trainer{}).
		Where("id = ? AND account_id IS NULL", trainerID).
		Updates(map[string]interface{}{
			"account_id": accountID,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(trainerID); err != nil {
			return err
		}
		return ErrTrainerAlreadyLinked
	}
	return nil
}

func (r *TrainerRepositoryImpl) UnlinkAccount(trainerID string) error {
	result := r.db.Model(&models.Trainer{}).
		Where("id = ? AND account_id IS NOT NULL", trainerID).
		Updates(map[string]interface{}{
			"account_id": nil,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(trainerID); err != nil {
			return err
		}
		return ErrTrainerNotLinked
	}
	return nil
}

func (r *TrainerRepositoryImpl) FindAll(limit, offset int) ([]models.Trainer, error) {
	var trainers []models.Trainer
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&trainers).Error
	return trainers, err
}

func (r *TrainerRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Trainer{}).Count(&count).Error
	return count, err
}
