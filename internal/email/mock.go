package email

import "studiofit_backend/internal/logger"

// MockProvider logs instead of sending. Used when email is disabled in config
// and in tests.
type MockProvider struct {
	ResetEmails    []string
	ApprovedEmails []string
}

func (m *MockProvider) SendPasswordReset(to string, resetURL string) error {
	m.ResetEmails = append(m.ResetEmails, to)
	logger.Info("mock email: password reset", "to", to, "url", resetURL)
	return nil
}

func (m *MockProvider) SendAccountApproved(to string) error {
	m.ApprovedEmails = append(m.ApprovedEmails, to)
	logger.Info("mock email: account approved", "to", to)
	return nil
}
