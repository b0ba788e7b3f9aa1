package services

import (
	"testing"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/email"
	"studiofit_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLinkingFixture(t *testing.T) (*LinkingService, *repoBundle, *gorm.DB, *email.MockProvider) {
	t.Helper()
	db := newTestDB(t)
	repos := newRepoBundle(db)
	mailer := &email.MockProvider{}
	svc := NewLinkingService(repos.accounts, repos.members, repos.trainers, repos.audit, mailer)
	return svc, repos, db, mailer
}

func TestLinkingService_LinkAccountToMember(t *testing.T) {
	svc, repos, db, _ := newLinkingFixture(t)

	account := seedAccount(t, db, "member@example.com", models.AccountStatusPending)
	member := seedMember(t, db, "Linked", models.MemberStatusInactive)

	require.NoError(t, svc.LinkAccountToMember(account.ID, member.ID))

	got, err := repos.members.FindByID(member.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AccountID)
	assert.Equal(t, account.ID, *got.AccountID)
}

func TestLinkingService_LinkAccountToMember_MemberTaken(t *testing.T) {
	svc, _, db, _ := newLinkingFixture(t)

	first := seedAccount(t, db, "first@example.com", models.AccountStatusPending)
	second := seedAccount(t, db, "second@example.com", models.AccountStatusPending)
	member := seedMember(t, db, "Taken", models.MemberStatusInactive)

	require.NoError(t, svc.LinkAccountToMember(first.ID, member.ID))

	err := svc.LinkAccountToMember(second.ID, member.ID)
	assertCode(t, err, apperrors.CodeConflict)
}

func TestLinkingService_LinkAccountToMember_AccountTaken(t *testing.T) {
	svc, _, db, _ := newLinkingFixture(t)

	account := seedAccount(t, db, "busy@example.com", models.AccountStatusPending)
	memberA := seedMember(t, db, "First", models.MemberStatusInactive)
	memberB := seedMember(t, db, "Second", models.MemberStatusInactive)

	require.NoError(t, svc.LinkAccountToMember(account.ID, memberA.ID))

	// One account backs at most one member.
	err := svc.LinkAccountToMember(account.ID, memberB.ID)
	assertCode(t, err, apperrors.CodeConflict)
}

func TestLinkingService_LinkAccountToMember_MissingParties(t *testing.T) {
	svc, _, db, _ := newLinkingFixture(t)

	account := seedAccount(t, db, "exists@example.com", models.AccountStatusPending)
	member := seedMember(t, db, "Exists", models.MemberStatusInactive)
	const ghost = "00000000-0000-0000-0000-000000000000"

	assertCode(t, svc.LinkAccountToMember(ghost, member.ID), apperrors.CodeNotFound)
	assertCode(t, svc.LinkAccountToMember(account.ID, ghost), apperrors.CodeNotFound)
}

func TestLinkingService_UnlinkAccountFromMember_WritesAudit(t *testing.T) {
	svc, repos, db, _ := newLinkingFixture(t)

	admin := seedAccount(t, db, "admin@example.com", models.AccountStatusActive)
	account := seedAccount(t, db, "linked@example.com", models.AccountStatusActive)
	member := seedMember(t, db, "Audited", models.MemberStatusActive)
	require.NoError(t, svc.LinkAccountToMember(account.ID, member.ID))

	require.NoError(t, svc.UnlinkAccountFromMember(admin.ID, member.ID))

	got, err := repos.members.FindByID(member.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AccountID)

	entries, err := repos.audit.FindByRecordID(member.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ActionUnlinkAccount, entries[0].Action)
	assert.Equal(t, "members", entries[0].TableName)
	assert.Equal(t, admin.ID, entries[0].ActorID)
	assert.Equal(t, account.ID, entries[0].OldValues["account_id"])
}

func TestLinkingService_UnlinkAccountFromMember_NotLinked(t *testing.T) {
	svc, _, db, _ := newLinkingFixture(t)

	admin := seedAccount(t, db, "admin@example.com", models.AccountStatusActive)
	member := seedMember(t, db, "Loose", models.MemberStatusInactive)

	err := svc.UnlinkAccountFromMember(admin.ID, member.ID)
	assertCode(t, err, apperrors.CodeConflict)
}

func TestLinkingService_UnlinkAccountFromTrainer_WritesAudit(t *testing.T) {
	svc, repos, db, _ := newLinkingFixture(t)

	admin := seedAccount(t, db, "admin@example.com", models.AccountStatusActive)
	account := seedAccount(t, db, "coach@example.com", models.AccountStatusActive)
	trainer := seedTrainer(t, db, "Coach")
	require.NoError(t, svc.LinkAccountToTrainer(account.ID, trainer.ID))

	require.NoError(t, svc.UnlinkAccountFromTrainer(admin.ID, trainer.ID))

	// Unlink auditing is uniform across members and trainers.
	entries, err := repos.audit.FindByRecordID(trainer.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "trainers", entries[0].TableName)
	assert.Equal(t, account.ID, entries[0].OldValues["account_id"])
}

func TestLinkingService_ApproveAccount(t *testing.T) {
	svc, repos, db, mailer := newLinkingFixture(t)

	account := seedAccount(t, db, "pending@example.com", models.AccountStatusPending)
	member := seedMember(t, db, "Pending", models.MemberStatusInactive)
	require.NoError(t, svc.LinkAccountToMember(account.ID, member.ID))

	require.NoError(t, svc.ApproveAccount(account.ID))

	got, err := repos.accounts.FindByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, got.Status)

	// The linked member follows the account as source of truth.
	syncedMember, err := repos.members.FindByID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MemberStatusActive, syncedMember.Status)

	assert.Contains(t, mailer.ApprovedEmails, account.Email)
}

func TestLinkingService_ApproveAccount_Archived(t *testing.T) {
	svc, repos, db, _ := newLinkingFixture(t)

	account := seedAccount(t, db, "revived@example.com", models.AccountStatusArchived)

	require.NoError(t, svc.ApproveAccount(account.ID))

	got, err := repos.accounts.FindByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, got.Status)
}

func TestLinkingService_ApproveAccount_AlreadyActive(t *testing.T) {
	svc, _, db, _ := newLinkingFixture(t)

	account := seedAccount(t, db, "active@example.com", models.AccountStatusActive)

	err := svc.ApproveAccount(account.ID)
	assertCode(t, err, apperrors.CodeConflict)
}

func TestLinkingService_DisapproveAccount(t *testing.T) {
	svc, repos, db, _ := newLinkingFixture(t)

	account := seedAccount(t, db, "reject@example.com", models.AccountStatusPending)
	member := seedMember(t, db, "Reject", models.MemberStatusActive)
	require.NoError(t, svc.LinkAccountToMember(account.ID, member.ID))

	require.NoError(t, svc.DisapproveAccount(account.ID))

	got, err := repos.accounts.FindByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusArchived, got.Status)

	syncedMember, err := repos.members.FindByID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MemberStatusInactive, syncedMember.Status)
}

func TestLinkingService_DisapproveAccount_NotPending(t *testing.T) {
	svc, _, db, _ := newLinkingFixture(t)

	account := seedAccount(t, db, "stale@example.com", models.AccountStatusActive)

	err := svc.DisapproveAccount(account.ID)
	assertCode(t, err, apperrors.CodeConflict)
}
