package mailer

import (
	"crypto/tls"
	"fmt"
	"tickl-backend/models"
	"tickl-backend/utils/logger"

	mail "github.com/go-mail/mail"
)

// Sender defines the contract for outgoing workflow email. A transport
// failure surfaces as an explicit error; callers decide whether it aborts
// the workflow or is reported as partial success. Nothing here ever rolls
// back database writes already committed.
type Sender interface {
	SendVerificationEmail(to, otp, organizationName string) error
	SendCredentialsEmail(to, password, organizationName, dashboardURL string) error
	SendApprovalEmail(to, organizationName, dashboardURL string) error
}

// SMTPMailer sends workflow email through a configured SMTP transport with a
// fixed sender identity.
type SMTPMailer struct {
	host   string
	port   int
	from   string
	pass   string
	logger logger.Logger
}

// NewSMTPMailer creates a new mailer from config. Constructed once in main
// and injected into the services that send mail.
func NewSMTPMailer(cfg *models.Config, log logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		from:   cfg.EmailUser,
		pass:   cfg.EmailPass,
		logger: log,
	}
}

// SendVerificationEmail delivers the 4-digit domain-verification code.
func (m *SMTPMailer) SendVerificationEmail(to, otp, organizationName string) error {
	body, err := renderVerificationEmail(otp, organizationName)
	if err != nil {
		return fmt.Errorf("render verification email: %w", err)
	}
	return m.send(to, "Verify your work email", body)
}

// SendCredentialsEmail delivers initial admin credentials and the dashboard URL.
func (m *SMTPMailer) SendCredentialsEmail(to, password, organizationName, dashboardURL string) error {
	body, err := renderCredentialsEmail(to, password, organizationName, dashboardURL)
	if err != nil {
		return fmt.Errorf("render credentials email: %w", err)
	}
	return m.send(to, "Your Tickl admin account", body)
}

// SendApprovalEmail notifies an organization admin that the organization was approved.
func (m *SMTPMailer) SendApprovalEmail(to, organizationName, dashboardURL string) error {
	body, err := renderApprovalEmail(organizationName, dashboardURL)
	if err != nil {
		return fmt.Errorf("render approval email: %w", err)
	}
	return m.send(to, fmt.Sprintf("%s is approved on Tickl", organizationName), body)
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := mail.NewDialer(m.host, m.port, m.from, m.pass)
	d.TLSConfig = &tls.Config{ServerName: m.host}

	if err := d.DialAndSend(msg); err != nil {
		m.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("smtp send: %w", err)
	}

	m.logger.Infof("Email sent to %s: %s", to, subject)
	return nil
}
