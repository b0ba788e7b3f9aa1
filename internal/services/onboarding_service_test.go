package services

import (
	"testing"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOnboardingFixture(t *testing.T) (*OnboardingService, *TermsService, *repoBundle, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	repos := newRepoBundle(db)
	onboarding := NewOnboardingService(repos.onboarding, repos.members, repos.terms)
	terms := NewTermsService(repos.terms)
	return onboarding, terms, repos, db
}

func activateNewTerms(t *testing.T, terms *TermsService, version string) *models.Terms {
	t.Helper()
	created, err := terms.CreateVersion(version, models.TermTypeTerms, "body "+version)
	require.NoError(t, err)
	activated, err := terms.ActivateVersion(created.ID)
	require.NoError(t, err)
	return activated
}

func TestOnboardingService_AcceptTerms_NoActiveVersion(t *testing.T) {
	svc, _, _, db := newOnboardingFixture(t)
	member := seedMember(t, db, "Early", models.MemberStatusInactive)

	_, err := svc.AcceptTerms(member.ID)
	assertCode(t, err, apperrors.CodeConflict)
}

func TestOnboardingService_AcceptTerms_RecordsVersion(t *testing.T) {
	svc, terms, _, db := newOnboardingFixture(t)
	member := seedMember(t, db, "Accepting", models.MemberStatusInactive)
	active := activateNewTerms(t, terms, "1.0")

	onboarding, err := svc.AcceptTerms(member.ID)
	require.NoError(t, err)

	assert.True(t, onboarding.TermsAccepted)
	require.NotNil(t, onboarding.TermsVersionID)
	assert.Equal(t, active.ID, *onboarding.TermsVersionID)
	assert.NotNil(t, onboarding.TermsAcceptedAt)
	assert.False(t, onboarding.OnboardingCompleted)
}

func TestOnboardingService_CompletesAfterBothSteps(t *testing.T) {
	svc, terms, _, db := newOnboardingFixture(t)
	member := seedMember(t, db, "Finishing", models.MemberStatusInactive)
	activateNewTerms(t, terms, "1.0")

	_, err := svc.AcceptTerms(member.ID)
	require.NoError(t, err)

	onboarding, err := svc.CompletePersonalInfo(member.ID)
	require.NoError(t, err)

	assert.True(t, onboarding.OnboardingCompleted)
	assert.NotNil(t, onboarding.OnboardingCompletedAt)
}

func TestOnboardingService_Status_NeedsReAcceptanceAfterNewVersion(t *testing.T) {
	svc, terms, _, db := newOnboardingFixture(t)
	member := seedMember(t, db, "Stale", models.MemberStatusActive)
	activateNewTerms(t, terms, "1.0")

	_, err := svc.AcceptTerms(member.ID)
	require.NoError(t, err)

	status, err := svc.Status(member.ID)
	require.NoError(t, err)
	assert.False(t, status.NeedsReAccept)

	// Activating a new version invalidates the recorded acceptance.
	v2 := activateNewTerms(t, terms, "2.0")

	status, err = svc.Status(member.ID)
	require.NoError(t, err)
	assert.True(t, status.NeedsReAccept)
	assert.Equal(t, v2.ID, status.ActiveTermsID)

	// Re-accepting records the new version and clears the flag.
	_, err = svc.AcceptTerms(member.ID)
	require.NoError(t, err)

	status, err = svc.Status(member.ID)
	require.NoError(t, err)
	assert.False(t, status.NeedsReAccept)
}

func TestOnboardingService_Status_NoActiveTerms(t *testing.T) {
	svc, _, _, db := newOnboardingFixture(t)
	member := seedMember(t, db, "Fresh", models.MemberStatusInactive)

	status, err := svc.Status(member.ID)
	require.NoError(t, err)
	assert.False(t, status.NeedsReAccept)
	assert.Empty(t, status.ActiveTermsID)
}

func TestOnboardingService_MemberForAccount(t *testing.T) {
	svc, _, repos, db := newOnboardingFixture(t)

	account := seedAccount(t, db, "member@example.com", models.AccountStatusActive)
	member := seedMember(t, db, "Owner", models.MemberStatusActive)
	require.NoError(t, repos.members.LinkAccount(member.ID, account.ID))

	got, err := svc.MemberForAccount(account.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, got.ID)

	orphan := seedAccount(t, db, "orphan@example.com", models.AccountStatusActive)
	_, err = svc.MemberForAccount(orphan.ID)
	assertCode(t, err, apperrors.CodeNotFound)
}
