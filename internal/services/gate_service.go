package services

import (
	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/auth"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"
)

// GateService is the single authorization gate. Every mutating admin
// operation goes through AuthorizeAdmin; member-facing reads go through the
// weaker AuthorizeProfile. Both are read-only.
type GateService struct {
	accounts  repositories.AccountRepository
	jwtSecret string
}

func NewGateService(accounts repositories.AccountRepository, jwtSecret string) *GateService {
	return &GateService{accounts: accounts, jwtSecret: jwtSecret}
}

// AuthorizeProfile resolves the bearer token to an account. The token is
// verified first, then the profile is looked up by the verified email.
func (s *GateService) AuthorizeProfile(token string) (*models.Account, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, err := auth.ParseToken(s.jwtSecret, token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	account, err := s.accounts.FindByEmail(claims.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NewUnauthenticatedError("No profile found for authenticated identity")
		}
		return nil, apperrors.InternalError(err)
	}

	return account, nil
}

// AuthorizeAdmin additionally requires the admin flag and the admin portal
// grant. Authenticated non-admins get Forbidden, not Unauthenticated.
func (s *GateService) AuthorizeAdmin(token string) (*models.Account, error) {
	account, err := s.AuthorizeProfile(token)
	if err != nil {
		return nil, err
	}

	if !account.IsAdmin || !account.HasPortal(models.PortalAdmin) {
		return nil, apperrors.NewForbiddenError("Admin portal access required")
	}

	return account, nil
}
