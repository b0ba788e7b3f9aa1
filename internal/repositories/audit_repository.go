package repositories

import (
	"studiofit_backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(entry *models.AuditLog) error
	FindByRecordID(recordID string) ([]models.AuditLog, error)
	FindAll(limit, offset int) ([]models.AuditLog, error)
}

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &AuditRepositoryImpl{db: db}
}

func (r *AuditRepositoryImpl) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *AuditRepositoryImpl) FindByRecordID(recordID string) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Where("record_id = ?", recordID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *AuditRepositoryImpl) FindAll(limit, offset int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, err
}
