package services

import (
	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"
)

// AuditService exposes read access to the audit trail. Writes happen inside
// the services that own the audited operations.
type AuditService struct {
	audit repositories.AuditRepository
}

func NewAuditService(audit repositories.AuditRepository) *AuditService {
	return &AuditService{audit: audit}
}

func (s *AuditService) List(limit, offset int) ([]models.AuditLog, error) {
	entries, err := s.audit.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

func (s *AuditService) ForRecord(recordID string) ([]models.AuditLog, error) {
	entries, err := s.audit.FindByRecordID(recordID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}
