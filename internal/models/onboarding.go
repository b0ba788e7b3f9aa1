package models

import "time"

// Onboarding tracks per-member workflow state. It is created together with
// the member and only ever updated, never deleted. TermsVersionID records the
// Terms row the member agreed to; a nil value means no acceptance has been
// recorded yet.
type Onboarding struct {
	BaseModel
	MemberID              string     `gorm:"type:uuid;uniqueIndex;not null" json:"member_id"`
	PersonalInfoCompleted bool       `gorm:"default:false" json:"personal_info_completed"`
	TermsAccepted         bool       `gorm:"default:false" json:"terms_accepted"`
	TermsAcceptedAt       *time.Time `json:"terms_accepted_at,omitempty"`
	TermsVersionID        *string    `gorm:"type:uuid" json:"terms_version_id,omitempty"`
	OnboardingCompleted   bool       `gorm:"default:false" json:"onboarding_completed"`
	OnboardingCompletedAt *time.Time `json:"onboarding_completed_at,omitempty"`
}
