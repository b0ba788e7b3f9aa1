package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	AccountHandler    *AccountHandler
	MemberHandler     *MemberHandler
	TrainerHandler    *TrainerHandler
	TermsHandler      *TermsHandler
	OnboardingHandler *OnboardingHandler
	ClassHandler      *ClassHandler
	PaymentHandler    *PaymentHandler
	AuditHandler      *AuditHandler
}
