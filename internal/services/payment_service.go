package services

import (
	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"
)

type PaymentService struct {
	payments repositories.PaymentRepository
	members  repositories.MemberRepository
}

func NewPaymentService(payments repositories.PaymentRepository, members repositories.MemberRepository) *PaymentService {
	return &PaymentService{payments: payments, members: members}
}

// Record stores a payment for the member. A paid transaction credits the
// member balance as a second independent write; a failed credit is logged,
// the transaction row stands (documented best-effort).
func (s *PaymentService) Record(memberID string, req *dto.RecordPaymentRequest) (*models.PaymentTransaction, error) {
	if _, err := s.members.FindByID(memberID); err != nil {
		if apperrors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.NotFound("Member")
		}
		return nil, apperrors.InternalError(err)
	}

	status := models.PaymentStatusPending
	if req.Status != "" {
		status = models.PaymentStatus(req.Status)
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}

	payment := &models.PaymentTransaction{
		MemberID:    memberID,
		Amount:      req.Amount,
		Currency:    currency,
		Description: req.Description,
		Status:      status,
	}

	if err := s.payments.Create(payment); err != nil {
		logger.Error("store operation failed", "operation", "record_payment", "member_id", memberID, "error", err.Error())
		return nil, apperrors.InternalError(err)
	}

	if status == models.PaymentStatusPaid {
		if err := s.members.AddCredit(memberID, req.Amount); err != nil {
			logger.Error("member credit update failed after payment",
				"member_id", memberID, "payment_id", payment.ID, "error", err.Error())
		}
	}
	return payment, nil
}

func (s *PaymentService) ListForMember(memberID string, limit, offset int) ([]models.PaymentTransaction, error) {
	payments, err := s.payments.FindByMemberID(memberID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}
