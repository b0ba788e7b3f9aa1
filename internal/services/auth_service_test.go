package services

import (
	"testing"
	"time"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/auth"
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/email"
	"studiofit_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*AuthService, *repoBundle, *gorm.DB, *email.MockProvider) {
	t.Helper()
	db := newTestDB(t)
	repos := newRepoBundle(db)
	mailer := &email.MockProvider{}
	svc := NewAuthService(repos.accounts, mailer, testJWTSecret, time.Hour, "http://localhost/reset")
	return svc, repos, db, mailer
}

func TestAuthService_Register(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	account, err := svc.Register(&dto.RegisterRequest{Email: "new@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	assert.Equal(t, models.AccountStatusPending, account.Status)
	assert.False(t, account.IsAdmin)
	assert.True(t, account.HasPortal(models.PortalMember))
	assert.NotEqual(t, "correct-horse", account.PasswordHash)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "weak@example.com", Password: "short"})
	assertCode(t, err, apperrors.CodeWeakPassword)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "dup@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "dup@example.com", Password: "correct-horse"})
	assertCode(t, err, apperrors.CodeEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "login@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)

	claims, err := auth.ParseToken(testJWTSecret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", claims.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "victim@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "victim@example.com", Password: "wrong-horse"})
	assertCode(t, err, apperrors.CodeUnauthenticated)
}

func TestAuthService_Login_SuspendedForbidden(t *testing.T) {
	svc, repos, _, _ := newAuthFixture(t)

	account, err := svc.Register(&dto.RegisterRequest{Email: "suspended@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.NoError(t, repos.accounts.UpdateStatus(account.ID, models.AccountStatusSuspended))

	_, err = svc.Login(&dto.LoginRequest{Email: "suspended@example.com", Password: "correct-horse"})
	assertCode(t, err, apperrors.CodeForbidden)
}

func TestAuthService_Login_PendingAllowed(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	// Pending accounts sign in so new members can run through onboarding
	// while approval is outstanding.
	_, err := svc.Register(&dto.RegisterRequest{Email: "pending@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "pending@example.com", Password: "correct-horse"})
	require.NoError(t, err)
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	svc, repos, _, mailer := newAuthFixture(t)

	account, err := svc.Register(&dto.RegisterRequest{Email: "reset@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset("reset@example.com"))
	assert.Contains(t, mailer.ResetEmails, "reset@example.com")

	stored, err := repos.accounts.FindByID(account.ID)
	require.NoError(t, err)
	require.NotEmpty(t, stored.ResetToken)

	require.NoError(t, svc.ResetPassword(stored.ResetToken, "brand-new-pass"))

	_, err = svc.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "brand-new-pass"})
	require.NoError(t, err)
}

func TestAuthService_ResetPassword_BadToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	err := svc.ResetPassword("no-such-token", "brand-new-pass")
	assertCode(t, err, apperrors.CodeInvalidToken)
}
