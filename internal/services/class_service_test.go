package services

import (
	"testing"
	"time"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newClassFixture(t *testing.T) (*ClassService, *repoBundle, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	repos := newRepoBundle(db)
	svc := NewClassService(repos.classes, repos.members, repos.trainers)
	return svc, repos, db
}

func seedSession(t *testing.T, svc *ClassService, capacity int, startsAt time.Time) *models.ClassSession {
	t.Helper()
	session, err := svc.CreateSession(&dto.CreateSessionRequest{
		Title:           "Evening Strength",
		StartsAt:        startsAt,
		DurationMinutes: 60,
		Capacity:        capacity,
	})
	require.NoError(t, err)
	return session
}

func TestClassService_CreateSession_UnknownTrainer(t *testing.T) {
	svc, _, _ := newClassFixture(t)

	ghost := "00000000-0000-0000-0000-000000000000"
	_, err := svc.CreateSession(&dto.CreateSessionRequest{
		Title:     "Ghost Class",
		TrainerID: &ghost,
		StartsAt:  time.Now().Add(time.Hour),
	})
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestClassService_Register_CapacityEnforced(t *testing.T) {
	svc, _, db := newClassFixture(t)
	session := seedSession(t, svc, 1, time.Now().Add(time.Hour))

	first := seedMember(t, db, "Fast", models.MemberStatusActive)
	second := seedMember(t, db, "Late", models.MemberStatusActive)

	_, err := svc.Register(first.ID, session.ID)
	require.NoError(t, err)

	_, err = svc.Register(second.ID, session.ID)
	assertCode(t, err, apperrors.CodeConflict)
}

func TestClassService_Register_Duplicate(t *testing.T) {
	svc, _, db := newClassFixture(t)
	session := seedSession(t, svc, 0, time.Now().Add(time.Hour))
	member := seedMember(t, db, "Eager", models.MemberStatusActive)

	_, err := svc.Register(member.ID, session.ID)
	require.NoError(t, err)

	_, err = svc.Register(member.ID, session.ID)
	assertCode(t, err, apperrors.CodeConflict)
}

func TestClassService_Cancel_FreesSeat(t *testing.T) {
	svc, repos, db := newClassFixture(t)
	session := seedSession(t, svc, 1, time.Now().Add(time.Hour))
	member := seedMember(t, db, "Flaky", models.MemberStatusActive)
	replacement := seedMember(t, db, "Ready", models.MemberStatusActive)

	_, err := svc.Register(member.ID, session.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(member.ID, session.ID))

	got, err := repos.classes.FindSessionByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ParticipantCount)

	// The freed seat is usable again.
	_, err = svc.Register(replacement.ID, session.ID)
	require.NoError(t, err)
}

func TestClassService_Cancel_NotRegistered(t *testing.T) {
	svc, _, db := newClassFixture(t)
	session := seedSession(t, svc, 0, time.Now().Add(time.Hour))
	member := seedMember(t, db, "Absent", models.MemberStatusActive)

	err := svc.Cancel(member.ID, session.ID)
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestClassService_CheckIn(t *testing.T) {
	svc, _, db := newClassFixture(t)
	session := seedSession(t, svc, 0, time.Now().Add(time.Hour))
	member := seedMember(t, db, "OnTime", models.MemberStatusActive)

	_, err := svc.Register(member.ID, session.ID)
	require.NoError(t, err)

	reg, err := svc.CheckIn(member.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusCheckedIn, reg.Status)
	assert.NotNil(t, reg.CheckedInAt)

	// Checking in twice is a conflict, not a silent no-op.
	_, err = svc.CheckIn(member.ID, session.ID)
	assertCode(t, err, apperrors.CodeConflict)
}

func TestClassService_MarkAbsentees(t *testing.T) {
	svc, _, db := newClassFixture(t)
	now := time.Now()

	// Ended two hours ago: past the grace window.
	ended := seedSession(t, svc, 0, now.Add(-3*time.Hour))
	// Ended ten minutes ago: still within grace.
	recent := seedSession(t, svc, 0, now.Add(-70*time.Minute))

	noShow := seedMember(t, db, "NoShow", models.MemberStatusActive)
	inGrace := seedMember(t, db, "InGrace", models.MemberStatusActive)
	present := seedMember(t, db, "Present", models.MemberStatusActive)

	_, err := svc.Register(noShow.ID, ended.ID)
	require.NoError(t, err)
	_, err = svc.Register(present.ID, ended.ID)
	require.NoError(t, err)
	_, err = svc.CheckIn(present.ID, ended.ID)
	require.NoError(t, err)
	_, err = svc.Register(inGrace.ID, recent.ID)
	require.NoError(t, err)

	marked, err := svc.MarkAbsentees(now, 30*time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 1, marked)

	reg, err := svc.classes.FindRegistration(ended.ID, noShow.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusAbsent, reg.Status)

	reg, err = svc.classes.FindRegistration(ended.ID, present.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusCheckedIn, reg.Status)

	reg, err = svc.classes.FindRegistration(recent.ID, inGrace.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusRegistered, reg.Status)
}
