package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// RetryProber re-probes while the inner outcome is UNKNOWN, up to a fixed
// bound. Definite answers (including DOWN and UNREGISTERED) return
// immediately; only transient failures earn another attempt.
type RetryProber struct {
	Inner    Prober
	Attempts int
	Backoff  time.Duration
}

func (r *RetryProber) Probe(ctx context.Context, name string) Outcome {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var last Outcome
	for i := 0; i < attempts; i++ {
		last = r.Inner.Probe(ctx, name)
		if last.Status != domain.StatusUnknown {
			return last
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return last
			case <-time.After(r.Backoff):
			}
		}
	}
	last.Message = fmt.Sprintf("%s (after %d attempts)", last.Message, attempts)
	return last
}
