package services

import "studiofit_backend/internal/models"

// The two status mappings are intentionally lossy and NOT inverses of each
// other: callers pick exactly one direction per update, depending on whether
// the member or the account is the source of truth, and never apply both in
// the same flow (that would oscillate between pending and inactive).

// MapMemberStatusToAccountStatus derives an account status when the member
// record drives the update. Inactive members are awaiting reactivation
// review, hence pending.
func MapMemberStatusToAccountStatus(status models.MemberStatus) models.AccountStatus {
	switch status {
	case models.MemberStatusActive:
		return models.AccountStatusActive
	case models.MemberStatusInactive:
		return models.AccountStatusPending
	case models.MemberStatusSuspended:
		return models.AccountStatusSuspended
	default:
		return models.AccountStatusPending
	}
}

// MapAccountStatusToMemberStatus derives a member status when the account
// record drives the update.
func MapAccountStatusToMemberStatus(status models.AccountStatus) models.MemberStatus {
	switch status {
	case models.AccountStatusActive:
		return models.MemberStatusActive
	case models.AccountStatusPending:
		return models.MemberStatusInactive
	case models.AccountStatusSuspended:
		return models.MemberStatusSuspended
	case models.AccountStatusArchived:
		return models.MemberStatusInactive
	default:
		return models.MemberStatusInactive
	}
}

// NeedsReAcceptance reports whether the member must re-accept the current
// terms. Only a member with a recorded prior acceptance of a DIFFERENT
// version needs to re-accept; a member with no recorded version goes through
// first-time acceptance instead.
func NeedsReAcceptance(onboarding *models.Onboarding, activeTerms *models.Terms) bool {
	if onboarding == nil || activeTerms == nil {
		return false
	}
	if onboarding.TermsVersionID == nil {
		return false
	}
	return *onboarding.TermsVersionID != activeTerms.ID
}
