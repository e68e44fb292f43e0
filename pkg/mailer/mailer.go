package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/hamyaran/admin-api/config"
)

// Mailer delivers operational notifications to the admin inbox.
type Mailer interface {
	Notify(subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func New(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.AdminTo,
	}
}

func (m *smtpMailer) Notify(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
