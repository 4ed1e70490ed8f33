package probe

import (
	"context"
	"strings"
	"time"

	"github.com/likexian/whois"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// Patterns that indicate the domain IS registered. Checked first because
// registry responses are far more consistent about these than about
// availability wording.
var registeredPatterns = []string{
	"registrar:",
	"registrant:",
	"creation date:",
	"created:",
	"registry expiry date:",
	"expiration date:",
	"name server:",
	"nameserver:",
	"nserver:",
	"domain status:",
	"dnssec:",
}

// Patterns that indicate the domain is NOT registered.
var unregisteredPatterns = []string{
	"no match for",
	"not found",
	"no entries found",
	"domain not found",
	"no data found",
	"status: free",
	"status: available",
	"no object found",
	"object does not exist",
	"the queried object does not exist",
	"no such domain",
	"domain name has not been registered",
	"no matching record",
	"is available for registration",
}

// WhoisProber classifies a domain's registration state from its WHOIS text.
// Lookup failures degrade to UNKNOWN; ambiguous responses count as
// REGISTERED so a flaky registry never fires a false availability alert.
type WhoisProber struct {
	client *whois.Client
}

func NewWhoisProber(timeout time.Duration) *WhoisProber {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WhoisProber{client: whois.NewClient().SetTimeout(timeout)}
}

func (p *WhoisProber) Probe(ctx context.Context, name string) Outcome {
	start := time.Now()
	text, err := p.client.Whois(name)
	latency := time.Since(start).Seconds() * 1000
	if err != nil {
		return Outcome{Status: domain.StatusUnknown, Message: "whois: " + err.Error(), LatencyMS: latency}
	}

	status, reason := classifyWhois(text)
	return Outcome{Status: status, Message: "whois: " + reason, LatencyMS: latency}
}

func classifyWhois(text string) (domain.Status, string) {
	lower := strings.ToLower(text)

	for _, pat := range registeredPatterns {
		if strings.Contains(lower, pat) {
			return domain.StatusRegistered, strings.TrimSuffix(pat, ":")
		}
	}

	// Premium/reserved names have no registrant but are not obtainable
	// either; treat them as registered.
	if strings.Contains(lower, "premium") || strings.Contains(lower, "reserved") {
		return domain.StatusRegistered, "reserved or premium"
	}

	for _, pat := range unregisteredPatterns {
		if strings.Contains(lower, pat) {
			return domain.StatusUnregistered, pat
		}
	}

	return domain.StatusRegistered, "unrecognized response"
}
