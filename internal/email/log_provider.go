package email

import "jobboard_backend/internal/logger"

// LogProvider only logs outgoing mail. Used in development and tests.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) SendPasswordReset(to, resetURL string) error {
	logger.Info("password reset email (not sent)", "to", to, "url", resetURL)
	return nil
}
