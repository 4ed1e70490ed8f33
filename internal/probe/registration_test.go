package probe

import (
	"context"
	"testing"

	"github.com/bensethbell/domainwatch/internal/domain"
)

type staticProber struct {
	out   Outcome
	calls int
}

func (s *staticProber) Probe(ctx context.Context, name string) Outcome {
	s.calls++
	return s.out
}

func TestRegistrationProber_ResolvingNameIsRegistered(t *testing.T) {
	dns := &staticProber{out: Outcome{Status: domain.StatusUp, Message: "resolves"}}
	who := &staticProber{out: Outcome{Status: domain.StatusUnregistered}}

	p := NewRegistrationProber(dns, who)
	out := p.Probe(context.Background(), "example.com")
	if out.Status != domain.StatusRegistered {
		t.Fatalf("want REGISTERED, got %+v", out)
	}
	if who.calls != 0 {
		t.Fatalf("whois should not be consulted when DNS resolves")
	}
}

func TestRegistrationProber_NXDOMAINConfirmedByWhois(t *testing.T) {
	dns := &staticProber{out: Outcome{Status: domain.StatusDown, Message: "NXDOMAIN"}}
	who := &staticProber{out: Outcome{Status: domain.StatusUnregistered, Message: "whois: no match for"}}

	p := NewRegistrationProber(dns, who)
	out := p.Probe(context.Background(), "free-name.com")
	if out.Status != domain.StatusUnregistered {
		t.Fatalf("want UNREGISTERED, got %+v", out)
	}
	if who.calls != 1 {
		t.Fatalf("whois should confirm NXDOMAIN, calls=%d", who.calls)
	}
}

func TestRegistrationProber_TransientDNSStaysUnknown(t *testing.T) {
	dns := &staticProber{out: Outcome{Status: domain.StatusUnknown, Message: "servfail"}}
	who := &staticProber{out: Outcome{Status: domain.StatusRegistered}}

	p := NewRegistrationProber(dns, who)
	out := p.Probe(context.Background(), "example.com")
	if out.Status != domain.StatusUnknown {
		t.Fatalf("want UNKNOWN, got %+v", out)
	}
	if who.calls != 0 {
		t.Fatalf("whois should not run on a transient DNS failure")
	}
}
