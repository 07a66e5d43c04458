package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPEmail sends plain-text mail through a single SMTP relay.
type SMTPEmail struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPEmail(host string, port int, user, pass string) *SMTPEmail {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}
	return &SMTPEmail{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: auth,
		from: user,
	}
}

func (m *SMTPEmail) Send(_ context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}
