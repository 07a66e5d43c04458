// Package notifier delivers email and SMS. The auth service treats
// every send as best-effort: a failed delivery is logged and never
// changes the outcome of the operation that triggered it.
package notifier

import (
	"context"
	"log"
)

type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ConsoleEmail logs outbound mail instead of delivering it. Used in
// dev and tests, and whenever EMAIL_DISABLED is set.
type ConsoleEmail struct {
	enabled bool
}

func NewConsoleEmail(enabled bool) *ConsoleEmail {
	return &ConsoleEmail{enabled: enabled}
}

func (m *ConsoleEmail) Send(_ context.Context, to, subject, body string) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] to=%s subject=%q body=%q", to, subject, body)
	}
	return nil
}

// ConsoleSMS logs outbound SMS. No SMS gateway is wired in dev.
type ConsoleSMS struct {
	enabled bool
}

func NewConsoleSMS(enabled bool) *ConsoleSMS {
	return &ConsoleSMS{enabled: enabled}
}

func (m *ConsoleSMS) Send(_ context.Context, to, _ /* subject */, body string) error {
	if m.enabled {
		log.Printf("[DEV-SMS] to=%s body=%q", to, body)
	}
	return nil
}
