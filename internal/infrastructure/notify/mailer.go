// Package notify implements the booking notification sender. The SMTP
// mailer delivers a confirmation to the guest with a copy to the front desk
// inbox; the log notifier stands in when SMTP is not configured.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// SMTPConfig carries the mail relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Inbox    string
}

// Mailer sends booking notifications over SMTP.
type Mailer struct {
	cfg SMTPConfig
	log zerolog.Logger
}

func NewMailer(cfg SMTPConfig, log zerolog.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// Send delivers the booking confirmation. The returned bool reports whether
// the relay accepted the message.
func (m *Mailer) Send(ctx context.Context, booking *domain.Booking) (bool, error) {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	to := []string{booking.GuestEmail}
	if m.cfg.Inbox != "" {
		to = append(to, m.cfg.Inbox)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, to, m.message(booking, to)); err != nil {
		return false, fmt.Errorf("send mail: %w", err)
	}

	m.log.Info().Str("booking_id", booking.ID).Str("guest_email", booking.GuestEmail).Msg("notification delivered")
	return true, nil
}

func (m *Mailer) message(b *domain.Booking, to []string) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&sb, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&sb, "Subject: Booking request %s\r\n", b.ID)
	sb.WriteString("\r\n")
	fmt.Fprintf(&sb, "Dear %s,\r\n\r\n", b.GuestName)
	fmt.Fprintf(&sb, "We received your booking request for a %s room.\r\n", b.RoomType)
	fmt.Fprintf(&sb, "Check-in:  %s\r\n", b.CheckIn.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Check-out: %s\r\n", b.CheckOut.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Guests:    %d\r\n", b.Guests)
	if b.Requests != "" {
		fmt.Fprintf(&sb, "Requests:  %s\r\n", b.Requests)
	}
	fmt.Fprintf(&sb, "\r\nCurrent status: %s\r\n", b.Status)
	sb.WriteString("\r\nPalm Bay Resort\r\n")
	return []byte(sb.String())
}

// LogNotifier records the booking instead of mailing it. Used when no SMTP
// host is configured.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Send logs the booking and reports it as not delivered.
func (n *LogNotifier) Send(ctx context.Context, booking *domain.Booking) (bool, error) {
	n.log.Info().
		Str("booking_id", booking.ID).
		Str("guest_email", booking.GuestEmail).
		Str("room_type", booking.RoomType).
		Msg("notification skipped: smtp not configured")
	return false, nil
}
