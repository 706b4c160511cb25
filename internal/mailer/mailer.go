package mailer

import (
	"fmt"

	"esports-club-backend/internal/config"
	"esports-club-backend/internal/logger"

	gomail "github.com/wneessen/go-mail"
)

// Mailer sends transactional mail
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

// SMTPMailer sends mail through a configured SMTP relay
type SMTPMailer struct {
	cfg *config.Config
	log *logger.Logger
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		cfg: cfg,
		log: logger.New().WithField("component", "mailer"),
	}
}

// SendPasswordReset delivers the password reset link to a user
func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	if m.cfg.SMTPHost == "" {
		// No relay configured in development; the link is still usable from logs
		m.log.WithField("to", to).Infof("SMTP not configured, reset link: %s", resetURL)
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Reset your password")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Open the link below to choose a new password. The link expires in one hour.\n\n"+
			"%s\n\n"+
			"If you did not request this, you can ignore this email.\n", resetURL))

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.SMTPUser),
		gomail.WithPassword(m.cfg.SMTPPassword),
	}
	client, err := gomail.NewClient(m.cfg.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}
	return nil
}
