// Package mail delivers transactional mail over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"tablenow/config"
	"tablenow/internal/domain/service"

	"github.com/pkg/errors"
)

type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer creates a CodeMailer backed by a plain SMTP relay.
func NewSMTPMailer(cfg *config.Config) (service.CodeMailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail configuration must be provided")
	}

	var auth smtp.Auth
	if cfg.Mail.Username != "" {
		auth = smtp.PlainAuth("", cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.Host)
	}

	return &smtpMailer{
		addr: cfg.Mail.Host + ":" + cfg.Mail.Port,
		auth: auth,
		from: cfg.Mail.From,
	}, nil
}

// SendVerificationCode sends the numeric code to the given address.
func (m *smtpMailer) SendVerificationCode(ctx context.Context, email, name, code string, ttlMinutes int) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail delivery canceled")
	}

	msg := buildVerificationMessage(m.from, email, name, code, ttlMinutes)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{email}, []byte(msg)); err != nil {
		return errors.Wrap(err, "failed to send verification mail")
	}

	return nil
}

func buildVerificationMessage(from, to, name, code string, ttlMinutes int) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: Your password change verification code\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hello %s,\r\n\r\n", name)
	fmt.Fprintf(&b, "Your verification code is %s.\r\n", code)
	fmt.Fprintf(&b, "It expires in %d minutes.\r\n\r\n", ttlMinutes)
	b.WriteString("If you did not request a password change, you can ignore this mail.\r\n")

	return b.String()
}
