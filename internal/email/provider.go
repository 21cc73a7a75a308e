package email

import "recruivo_backend/internal/logger"

// Provider sends transactional email.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// SendTemplate renders a named template and delivers it.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// SendWelcome greets a newly registered user.
	SendWelcome(to, name string) error

	// SendApplicationStatusUpdate notifies a student that a recruiter
	// moved their application to a new status.
	SendApplicationStatusUpdate(to, studentName, jobTitle, companyName, status string) error
}

// NoopProvider logs instead of sending. Used in tests and when email is
// disabled in config.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(email *Email) error {
	logger.Debug("email suppressed", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	logger.Debug("email suppressed", "to", to, "subject", subject, "template", templateName)
	return nil
}

func (p *NoopProvider) SendWelcome(to, name string) error {
	logger.Debug("welcome email suppressed", "to", to)
	return nil
}

func (p *NoopProvider) SendApplicationStatusUpdate(to, studentName, jobTitle, companyName, status string) error {
	logger.Debug("status email suppressed", "to", to, "status", status)
	return nil
}
