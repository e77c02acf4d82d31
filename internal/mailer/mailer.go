// Package mailer sends password-reset email via SMTP.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/config"
)

// Mailer sends transactional email. In dev mode (no SMTP host configured)
// messages are logged instead of sent so local flows stay testable.
type Mailer struct {
	cfg  *config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates a Mailer from SMTP configuration.
func New(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// SendPasswordReset mails a reset token to the given address.
func (m *Mailer) SendPasswordReset(to, token string) error {
	subject := "Password reset request"
	body := fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Reset token: %s\n\n"+
			"If you did not request this, you can ignore this message.\n", token)

	return m.sendMail(to, subject, body)
}

func (m *Mailer) sendMail(to, subject, body string) error {
	if m.cfg.DevMode() {
		log.Printf("[mailer] dev mode, would send to %s: %s", to, subject)
		return nil
	}

	msg := buildMessage(m.cfg.From, to, subject, body)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := m.send(m.cfg.Addr(), auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return []byte(sb.String())
}
