package services

// ServiceContainer groups every service for wiring in internal/app.
type ServiceContainer struct {
	GateService       *GateService
	AuthService       *AuthService
	AccountService    *AccountService
	LinkingService    *LinkingService
	MemberService     *MemberService
	TrainerService    *TrainerService
	TermsService      *TermsService
	OnboardingService *OnboardingService
	ClassService      *ClassService
	PaymentService    *PaymentService
	AuditService      *AuditService
}
