package probe

import (
	"context"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// Outcome is the unified result of probing a single domain.
//
// A probe never fails with an error: anything that prevents a definite
// answer degrades to StatusUnknown so one bad domain cannot abort a cycle.
type Outcome struct {
	Status    domain.Status
	Message   string
	LatencyMS float64
}

// Prober performs a single availability check for a domain name.
type Prober interface {
	Probe(ctx context.Context, name string) Outcome
}
