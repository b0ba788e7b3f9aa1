package services

import (
	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/dto"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"
)

type MemberService struct {
	members  repositories.MemberRepository
	accounts repositories.AccountRepository
}

func NewMemberService(members repositories.MemberRepository, accounts repositories.AccountRepository) *MemberService {
	return &MemberService{members: members, accounts: accounts}
}

// Create inserts a member together with its onboarding record. When an
// account id is supplied the account-side exclusivity invariant is checked
// and the account status is derived from the member status (member is the
// source of truth on creation).
func (s *MemberService) Create(req *dto.CreateMemberRequest) (*models.Member, error) {
	status := models.MemberStatusInactive
	if req.Status != "" {
		status = models.MemberStatus(req.Status)
	}

	member := &models.Member{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Status:      status,
		MemberNotes: req.MemberNotes,
	}

	if req.AccountID != nil && *req.AccountID != "" {
		if _, err := s.accounts.FindByID(*req.AccountID); err != nil {
			if apperrors.Is(err, repositories.ErrAccountNotFound) {
				return nil, apperrors.NotFound("Account")
			}
			return nil, apperrors.InternalError(err)
		}
		if _, err := s.members.FindByAccountID(*req.AccountID); err == nil {
			return nil, apperrors.Conflict("Account is already linked to another member")
		} else if !apperrors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.InternalError(err)
		}
		member.AccountID = req.AccountID
	}

	onboarding := &models.Onboarding{}
	if err := s.members.CreateWithOnboarding(member, onboarding); err != nil {
		logger.Error("store operation failed", "operation", "create_member", "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	member.Onboarding = onboarding

	if member.IsLinked() {
		s.syncAccountStatus(member)
	}
	return member, nil
}

// UpdateStatus changes the member status and, when linked, syncs the account
// with the member as source of truth. Exactly one mapping direction per flow.
func (s *MemberService) UpdateStatus(memberID string, status models.MemberStatus) (*models.Member, error) {
	member, err := s.members.FindByID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.NotFound("Member")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.members.UpdateStatus(memberID, status); err != nil {
		logger.Error("store operation failed", "operation", "update_member_status", "member_id", memberID, "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	member.Status = status

	if member.IsLinked() {
		s.syncAccountStatus(member)
	}
	return member, nil
}

func (s *MemberService) FindByID(memberID string) (*models.Member, error) {
	member, err := s.members.FindByID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.NotFound("Member")
		}
		return nil, apperrors.InternalError(err)
	}
	return member, nil
}

func (s *MemberService) List(limit, offset int) ([]models.Member, int64, error) {
	members, err := s.members.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.members.CountAll()
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return members, total, nil
}

// syncAccountStatus applies the member-driven mapping to the linked account.
// Best-effort second step: a failure is logged, the member update stands.
func (s *MemberService) syncAccountStatus(member *models.Member) {
	mapped := MapMemberStatusToAccountStatus(member.Status)
	if err := s.accounts.UpdateStatus(*member.AccountID, mapped); err != nil {
		logger.Warn("account status sync failed",
			"member_id", member.ID, "account_id", *member.AccountID, "error", err.Error())
	}
}
