package notify

import (
	"strings"
	"testing"
)

func TestNewEmail_DisabledWithoutCredentials(t *testing.T) {
	if e := NewEmail("", "", "", ""); e != nil {
		t.Fatalf("expected nil email notifier without credentials")
	}
	if e := NewEmail("", "me@example.com", "", "you@example.com"); e != nil {
		t.Fatalf("expected nil when password missing")
	}
}

func TestNewEmail_DefaultsSMTPAddr(t *testing.T) {
	e := NewEmail("", "me@example.com", "secret", "you@example.com")
	if e == nil {
		t.Fatal("expected notifier")
	}
	if e.Addr != "smtp.gmail.com:587" {
		t.Fatalf("unexpected default addr %q", e.Addr)
	}
}

func TestBuildMessage_HeadersAndASCIISafety(t *testing.T) {
	msg := string(buildMessage("me@example.com", "you@example.com", "URGENT: café.com status change", "body 🔴 text"))

	for _, want := range []string{
		"From: me@example.com\r\n",
		"To: you@example.com\r\n",
		"Subject: URGENT: caf.com status change\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.ContainsAny(msg, "é🔴") {
		t.Fatalf("non-ASCII survived sanitization:\n%s", msg)
	}
	if !strings.Contains(msg, "\r\n\r\nbody  text") {
		t.Fatalf("body not separated from headers:\n%s", msg)
	}
}
