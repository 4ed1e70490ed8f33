package probe

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// DNSProber resolves a name with the OS resolver and classifies the answer.
// RESOLVES -> UP, NXDOMAIN -> DOWN, transient resolver failure -> UNKNOWN.
type DNSProber struct {
	Resolver *net.Resolver
	Timeout  time.Duration
}

func NewDNSProber(timeout time.Duration) *DNSProber {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &DNSProber{Resolver: &net.Resolver{}, Timeout: timeout}
}

func (p *DNSProber) Probe(ctx context.Context, name string) Outcome {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "://") {
		return Outcome{Status: domain.StatusUnknown, Message: "invalid domain name"}
	}

	start := time.Now()
	cctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	ips, err := p.Resolver.LookupIP(cctx, "ip", name)
	latency := time.Since(start).Seconds() * 1000

	if err == nil && len(ips) > 0 {
		return Outcome{Status: domain.StatusUp, Message: "resolves", LatencyMS: latency}
	}

	var de *net.DNSError
	if errors.As(err, &de) {
		if de.IsNotFound {
			return Outcome{Status: domain.StatusDown, Message: "NXDOMAIN", LatencyMS: latency}
		}
		if de.IsTemporary || de.Timeout() {
			return Outcome{Status: domain.StatusUnknown, Message: "resolver: " + de.Err, LatencyMS: latency}
		}
	}
	if err != nil {
		return Outcome{Status: domain.StatusUnknown, Message: err.Error(), LatencyMS: latency}
	}
	return Outcome{Status: domain.StatusDown, Message: "no A/AAAA records", LatencyMS: latency}
}
