package probe

import (
	"context"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// RegistrationProber is the default mode: a cheap DNS lookup first, with a
// WHOIS confirmation only when DNS suggests the name may be unregistered.
// A name that resolves is certainly registered; an NXDOMAIN is merely a
// hint, since parked and lapsing domains often drop their records long
// before the registration does.
type RegistrationProber struct {
	DNS   Prober
	Whois Prober
}

func NewRegistrationProber(dns, whois Prober) *RegistrationProber {
	return &RegistrationProber{DNS: dns, Whois: whois}
}

func (p *RegistrationProber) Probe(ctx context.Context, name string) Outcome {
	dns := p.DNS.Probe(ctx, name)
	switch dns.Status {
	case domain.StatusUp:
		return Outcome{Status: domain.StatusRegistered, Message: dns.Message, LatencyMS: dns.LatencyMS}
	case domain.StatusUnknown:
		return dns
	}
	// NXDOMAIN or no records: ask the registry.
	return p.Whois.Probe(ctx, name)
}
