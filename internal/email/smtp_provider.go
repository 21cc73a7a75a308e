package email

import (
	"fmt"

	"recruivo_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through an SMTP relay via gomail.
type SMTPProvider struct {
	cfg      *config.Config
	dialer   *gomail.Dialer
	renderer *templateRenderer
}

func NewSMTPProvider(cfg *config.Config) (*SMTPProvider, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}

	renderer, err := newTemplateRenderer()
	if err != nil {
		return nil, err
	}

	dialer := gomail.NewDialer(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername,
		cfg.Email.SMTPPassword,
	)

	return &SMTPProvider{
		cfg:      cfg,
		dialer:   dialer,
		renderer: renderer,
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	html, err := p.renderer.Render(templateName, data)
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: html,
	})
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	return p.SendTemplate(
		[]string{to},
		"Welcome to Recruivo",
		"welcome",
		TemplateData{"Name": name},
	)
}

func (p *SMTPProvider) SendApplicationStatusUpdate(to, studentName, jobTitle, companyName, status string) error {
	return p.SendTemplate(
		[]string{to},
		fmt.Sprintf("Your application for %s was updated", jobTitle),
		"application_status",
		TemplateData{
			"StudentName": studentName,
			"JobTitle":    jobTitle,
			"CompanyName": companyName,
			"Status":      status,
		},
	)
}
