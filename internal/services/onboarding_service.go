package services

import (
	"time"

	"studiofit_backend/internal/apperrors"
	"studiofit_backend/internal/logger"
	"studiofit_backend/internal/models"
	"studiofit_backend/internal/repositories"
)

// OnboardingStatus is what the member portal renders: the raw workflow state
// plus the derived re-acceptance flag.
type OnboardingStatus struct {
	Onboarding       *models.Onboarding `json:"onboarding"`
	NeedsReAccept    bool               `json:"needs_re_acceptance"`
	ActiveTermsID    string             `json:"active_terms_id,omitempty"`
	ActiveTermsBody  string             `json:"active_terms_body,omitempty"`
	ActiveTermsLabel string             `json:"active_terms_version,omitempty"`
}

type OnboardingService struct {
	onboarding repositories.OnboardingRepository
	members    repositories.MemberRepository
	terms      repositories.TermsRepository
}

func NewOnboardingService(
	onboarding repositories.OnboardingRepository,
	members repositories.MemberRepository,
	terms repositories.TermsRepository,
) *OnboardingService {
	return &OnboardingService{onboarding: onboarding, members: members, terms: terms}
}

// MemberForAccount resolves the member record behind an authenticated
// account. Accounts without a linked member have no onboarding to show.
func (s *OnboardingService) MemberForAccount(accountID string) (*models.Member, error) {
	member, err := s.members.FindByAccountID(accountID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.NotFound("Member profile for this account")
		}
		return nil, apperrors.InternalError(err)
	}
	return member, nil
}

// Status returns the onboarding state and whether the member must re-accept
// the currently active terms. No active terms, or no previously recorded
// version, both mean no re-acceptance.
func (s *OnboardingService) Status(memberID string) (*OnboardingStatus, error) {
	onboarding, err := s.onboarding.FindByMemberID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOnboardingNotFound) {
			return nil, apperrors.NotFound("Onboarding record")
		}
		return nil, apperrors.InternalError(err)
	}

	status := &OnboardingStatus{Onboarding: onboarding}

	active, err := s.terms.FindActiveByType(models.TermTypeTerms)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrNoActiveTerms) {
			return nil, apperrors.InternalError(err)
		}
		return status, nil
	}

	status.NeedsReAccept = NeedsReAcceptance(onboarding, active)
	status.ActiveTermsID = active.ID
	status.ActiveTermsBody = active.Content
	status.ActiveTermsLabel = active.Version
	return status, nil
}

// CompletePersonalInfo marks the profile step done and completes onboarding
// when terms were already accepted.
func (s *OnboardingService) CompletePersonalInfo(memberID string) (*models.Onboarding, error) {
	onboarding, err := s.onboarding.FindByMemberID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOnboardingNotFound) {
			return nil, apperrors.NotFound("Onboarding record")
		}
		return nil, apperrors.InternalError(err)
	}

	onboarding.PersonalInfoCompleted = true
	s.maybeComplete(onboarding)

	if err := s.onboarding.Update(onboarding); err != nil {
		logger.Error("store operation failed", "operation", "onboarding_personal_info", "member_id", memberID, "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return onboarding, nil
}

// AcceptTerms records acceptance of the currently active terms version.
// Accepting again after a version change simply re-records against the new
// version.
func (s *OnboardingService) AcceptTerms(memberID string) (*models.Onboarding, error) {
	onboarding, err := s.onboarding.FindByMemberID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOnboardingNotFound) {
			return nil, apperrors.NotFound("Onboarding record")
		}
		return nil, apperrors.InternalError(err)
	}

	active, err := s.terms.FindActiveByType(models.TermTypeTerms)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNoActiveTerms) {
			return nil, apperrors.Conflict("No active terms version to accept")
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	onboarding.TermsAccepted = true
	onboarding.TermsAcceptedAt = &now
	onboarding.TermsVersionID = &active.ID
	s.maybeComplete(onboarding)

	if err := s.onboarding.Update(onboarding); err != nil {
		logger.Error("store operation failed", "operation", "onboarding_accept_terms", "member_id", memberID, "error", err.Error())
		return nil, apperrors.InternalError(err)
	}
	return onboarding, nil
}

func (s *OnboardingService) maybeComplete(onboarding *models.Onboarding) {
	if onboarding.OnboardingCompleted {
		return
	}
	if onboarding.PersonalInfoCompleted && onboarding.TermsAccepted {
		now := time.Now()
		onboarding.OnboardingCompleted = true
		onboarding.OnboardingCompletedAt = &now
	}
}
