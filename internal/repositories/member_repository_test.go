package repositories

import (
	"testing"

	"studiofit_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepository_LinkAccount(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)

	account := createTestAccount(t, db, "link@example.com")
	member := createTestMember(t, db, "Link")

	require.NoError(t, repo.LinkAccount(member.ID, account.ID))

	linked, err := repo.FindByID(member.ID)
	require.NoError(t, err)
	require.NotNil(t, linked.AccountID)
	assert.Equal(t, account.ID, *linked.AccountID)
}

func TestMemberRepository_LinkAccount_AlreadyLinked(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)

	first := createTestAccount(t, db, "first@example.com")
	second := createTestAccount(t, db, "second@example.com")
	member := createTestMember(t, db, "Taken")

	require.NoError(t, repo.LinkAccount(member.ID, first.ID))

	// The conditional update refuses to overwrite an existing link.
	err := repo.LinkAccount(member.ID, second.ID)
	assert.ErrorIs(t, err, ErrMemberAlreadyLinked)

	linked, err := repo.FindByID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, *linked.AccountID)
}

func TestMemberRepository_LinkAccount_MemberMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)

	account := createTestAccount(t, db, "ghost@example.com")

	err := repo.LinkAccount("00000000-0000-0000-0000-000000000000", account.ID)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMemberRepository_UnlinkAccount(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)

	account := createTestAccount(t, db, "unlink@example.com")
	member := createTestMember(t, db, "Unlink")
	require.NoError(t, repo.LinkAccount(member.ID, account.ID))

	require.NoError(t, repo.UnlinkAccount(member.ID))

	unlinked, err := repo.FindByID(member.ID)
	require.NoError(t, err)
	assert.Nil(t, unlinked.AccountID)

	// A second unlink finds nothing to clear.
	err = repo.UnlinkAccount(member.ID)
	assert.ErrorIs(t, err, ErrMemberNotLinked)
}

func TestMemberRepository_CreateWithOnboarding(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)

	member := &models.Member{FirstName: "Onboard", LastName: "Tester", Status: models.MemberStatusInactive}
	onboarding := &models.Onboarding{}

	require.NoError(t, repo.CreateWithOnboarding(member, onboarding))
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, member.ID, onboarding.MemberID)

	var count int64
	require.NoError(t, db.Model(&models.Onboarding{}).Where("member_id = ?", member.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMemberRepository_AddCredit(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)

	member := createTestMember(t, db, "Credit")

	require.NoError(t, repo.AddCredit(member.ID, 25.5))
	require.NoError(t, repo.AddCredit(member.ID, 10))

	got, err := repo.FindByID(member.ID)
	require.NoError(t, err)
	assert.InDelta(t, 35.5, got.Credit, 0.001)
}

func TestMemberRepository_FindByAccountID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)

	_, err := repo.FindByAccountID("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
