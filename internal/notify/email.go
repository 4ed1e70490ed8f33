package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// Email sends the cycle report over plain SMTP with STARTTLS. Credentials
// come from the scheduler environment (SENDER_EMAIL / SENDER_PASSWORD /
// RECIPIENT_EMAIL); the transport itself never reads the environment.
type Email struct {
	Addr      string // host:port, e.g. smtp.gmail.com:587
	Sender    string
	Password  string
	Recipient string
}

// NewEmail returns nil when credentials are incomplete, which Multi treats
// as a disabled transport.
func NewEmail(addr, sender, password, recipient string) *Email {
	if sender == "" || password == "" || recipient == "" {
		return nil
	}
	if addr == "" {
		addr = "smtp.gmail.com:587"
	}
	return &Email{Addr: addr, Sender: sender, Password: password, Recipient: recipient}
}

func (e *Email) Send(ctx context.Context, subject, body string) error {
	if e == nil {
		return errors.New("email disabled")
	}
	host, _, err := net.SplitHostPort(e.Addr)
	if err != nil {
		return fmt.Errorf("smtp addr %q: %w", e.Addr, err)
	}

	msg := buildMessage(e.Sender, e.Recipient, subject, body)
	auth := smtp.PlainAuth("", e.Sender, e.Password, host)
	if err := smtp.SendMail(e.Addr, auth, e.Sender, []string{e.Recipient}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// buildMessage assembles a minimal ASCII-safe RFC 5322 message. Some relays
// reject bare non-ASCII in headers, so anything outside ASCII is dropped.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", asciiOnly(from))
	fmt.Fprintf(&b, "To: %s\r\n", asciiOnly(to))
	fmt.Fprintf(&b, "Subject: %s\r\n", asciiOnly(subject))
	b.WriteString("\r\n")
	b.WriteString(asciiOnly(body))
	return []byte(b.String())
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 127 {
			return -1
		}
		return r
	}, s)
}
