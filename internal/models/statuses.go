package models

type AccountStatus string
type MemberStatus string
type TrainerStatus string
type SessionStatus string
type RegistrationStatus string
type PaymentStatus string
type TermType string

const (
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusArchived  AccountStatus = "archived"

	MemberStatusActive    MemberStatus = "active"
	MemberStatusInactive  MemberStatus = "inactive"
	MemberStatusSuspended MemberStatus = "suspended"

	TrainerStatusActive   TrainerStatus = "active"
	TrainerStatusInactive TrainerStatus = "inactive"

	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCancelled SessionStatus = "cancelled"
	SessionStatusCompleted SessionStatus = "completed"

	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCheckedIn  RegistrationStatus = "checked_in"
	RegistrationStatusAbsent     RegistrationStatus = "absent"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	TermTypeTerms              TermType = "terms"
	TermTypeInteriorRegulation TermType = "interior_regulation"
)

// Portal tags an account may be granted access to.
const (
	PortalAdmin   = "admin"
	PortalMember  = "member"
	PortalTrainer = "trainer"
)
