package services

import (
	"testing"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPaymentFixture(t *testing.T) (*PaymentService, *repoBundle, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	repos := newRepoBundle(db)
	return NewPaymentService(repos.payments, repos.members), repos, db
}

func TestPaymentService_Record_PaidCreditsMember(t *testing.T) {
	svc, repos, db := newPaymentFixture(t)
	member := seedMember(t, db, "Payer", models.MemberStatusActive)

	payment, err := svc.Record(member.ID, &dto.RecordPaymentRequest{
		Amount: 49.90,
		Status: string(models.PaymentStatusPaid),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
	assert.Equal(t, "EUR", payment.Currency)

	credited, err := repos.members.FindByID(member.ID)
	require.NoError(t, err)
	assert.InDelta(t, 49.90, credited.Credit, 0.001)
}

func TestPaymentService_Record_PendingDoesNotCredit(t *testing.T) {
	svc, repos, db := newPaymentFixture(t)
	member := seedMember(t, db, "Waiting", models.MemberStatusActive)

	payment, err := svc.Record(member.ID, &dto.RecordPaymentRequest{Amount: 20})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)

	stored, err := repos.members.FindByID(member.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.Credit)
}

func TestPaymentService_Record_UnknownMember(t *testing.T) {
	svc, _, _ := newPaymentFixture(t)

	_, err := svc.Record("00000000-0000-0000-0000-000000000000", &dto.RecordPaymentRequest{Amount: 10})
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestPaymentService_ListForMember(t *testing.T) {
	svc, _, db := newPaymentFixture(t)
	member := seedMember(t, db, "History", models.MemberStatusActive)

	for i := 0; i < 3; i++ {
		_, err := svc.Record(member.ID, &dto.RecordPaymentRequest{Amount: float64(10 + i)})
		require.NoError(t, err)
	}

	payments, err := svc.ListForMember(member.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, payments, 3)
}
