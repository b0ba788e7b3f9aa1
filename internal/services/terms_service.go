package services

import (
	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"
)

type TermsService struct {
	terms repositories.TermsRepository
}

func NewTermsService(terms repositories.TermsRepository) *TermsService {
	return &TermsService{terms: terms}
}

// CreateVersion inserts a new, inactive version. Activation is always a
// separate explicit step.
func (s *TermsService) CreateVersion(version string, termType models.TermType, content string) (*models.Terms, error) {
	t := &models.Terms{
		Version:  version,
		TermType: termType,
		Content:  content,
		IsActive: false,
	}
	if err := s.terms.Create(t); err != nil {
		logger.Error("store operation failed", "operation", "create_terms", "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return t, nil
}

// ActivateVersion makes the target the single active version of its term
// type and refreshes its effective date. Deactivation and activation happen
// in one transaction.
func (s *TermsService) ActivateVersion(termsID string) (*models.Terms, error) {
	activated, err := s.terms.ActivateExclusive(termsID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTermsNotFound) {
			return nil, apperrors.NotFound("Terms version")
		}
		logger.Error("store operation failed", "operation", "activate_terms", "terms_id", termsID, "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return activated, nil
}

// ActiveVersion returns the active version of the given type, or NotFound.
func (s *TermsService) ActiveVersion(termType models.TermType) (*models.Terms, error) {
	active, err := s.terms.FindActiveByType(termType)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNoActiveTerms) {
			return nil, apperrors.NotFound("Active terms version")
		}
		logger.Error("store operation failed", "operation", "active_terms", "term_type", string(termType), "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return active, nil
}

func (s *TermsService) ListVersions(limit, offset int) ([]models.Terms, error) {
	versions, err := s.terms.FindAll(limit, offset)
	if err != nil {
		logger.Error("store operation failed", "operation", "list_terms", "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return versions, nil
}
