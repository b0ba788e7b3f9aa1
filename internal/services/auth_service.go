package services

import (
	"time"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/auth"
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/email"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuthService handles signup, login and the password flows. It doubles as the
// local identity provider: tokens it issues are what the gate later verifies.
type AuthService struct {
	accounts  repositories.AccountRepository
	mailer    email.Provider
	jwtSecret string
	tokenTTL  time.Duration
	resetURL  string
}

func NewAuthService(
	accounts repositories.AccountRepository,
	mailer email.Provider,
	jwtSecret string,
	tokenTTL time.Duration,
	resetURL string,
) *AuthService {
	return &AuthService{
		accounts:  accounts,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		resetURL:  resetURL,
	}
}

// Register creates a self-service account in pending status with member
// portal access. Linking to a member record stays a separate admin action.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.Account, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	account := &models.Account{
		Email:             req.Email,
		PasswordHash:      hash,
		IsAdmin:           false,
		AccessiblePortals: datatypes.NewJSONSlice([]string{models.PortalMember}),
		Status:            models.AccountStatusPending,
	}

	if err := s.accounts.Create(account); err != nil {
		if apperrors.Is(err, repositories.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		logger.Error("store operation failed", "operation", "register", "email", req.Email, "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return account, nil
}

// Login verifies credentials and issues an access token. Suspended and
// archived accounts cannot sign in; pending ones can, so new members can
// complete onboarding while awaiting approval.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := s.accounts.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if account.Status == models.AccountStatusSuspended || account.Status == models.AccountStatusArchived {
		return nil, apperrors.NewForbiddenError("Account is not allowed to sign in")
	}

	token, err := auth.GenerateToken(s.jwtSecret, s.tokenTTL, account.ID, account.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokenTTL.Seconds()),
		Account:     account,
	}, nil
}

// RequestPasswordReset issues a reset token and mails the link. Whether the
// email exists is never revealed to the caller.
func (s *AuthService) RequestPasswordReset(emailAddr string) error {
	account, err := s.accounts.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return apperrors.NotFound("Account")
		}
		return apperrors.InternalError(err)
	}

	token := uuid.NewString()
	if err := s.accounts.UpdateResetToken(account.ID, token); err != nil {
		return apperrors.InternalError(err)
	}

	resetLink := s.resetURL + "?token=" + token
	if err := s.mailer.SendPasswordReset(account.Email, resetLink); err != nil {
		logger.Error("failed to send password reset email", "account_id", account.ID, "error", err.Error())
		return apperrors.InternalError(err)
	}
	return nil
}

// ResetPassword consumes a reset token and sets the new password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	account, err := s.accounts.FindByResetToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.accounts.UpdatePassword(account.ID, hash); err != nil {
		logger.Error("store operation failed", "operation", "reset_password", "account_id", account.ID, "error", err.Error())
		return apperrors.InternalError(err)
	}
	return nil
}

// SetPassword sets a password directly on a known account (admin
// provisioning path).
func (s *AuthService) SetPassword(accountID, password string) error {
	if err := auth.ValidatePassword(password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.accounts.UpdatePassword(accountID, hash); err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return apperrors.NotFound("Account")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
