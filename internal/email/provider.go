package email

// Provider sends the few transactional emails the flows need.
type Provider interface {
	// SendPasswordReset mails a reset link for the account email.
	SendPasswordReset(to string, resetURL string) error

	// SendAccountApproved tells the account holder their access is live.
	SendAccountApproved(to string) error
}
