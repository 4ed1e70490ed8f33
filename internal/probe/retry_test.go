package probe

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// fake prober you can control
type fakeProber struct {
	outcomes []Outcome
	i        int
}

func (f *fakeProber) Probe(ctx context.Context, name string) Outcome {
	if f.i >= len(f.outcomes) {
		return Outcome{Status: domain.StatusUnknown, Message: "no more"}
	}
	o := f.outcomes[f.i]
	f.i++
	return o
}

func TestRetryProber_RecoversFromTransientFailure(t *testing.T) {
	f := &fakeProber{outcomes: []Outcome{
		{Status: domain.StatusUnknown, Message: "timeout"},
		{Status: domain.StatusUp, Message: "resolves"},
	}}
	rp := &RetryProber{Inner: f, Attempts: 3, Backoff: time.Millisecond}

	out := rp.Probe(context.Background(), "example.com")
	if out.Status != domain.StatusUp {
		t.Fatalf("expected UP after retry, got %+v", out)
	}
	if f.i != 2 {
		t.Fatalf("expected 2 probes, got %d", f.i)
	}
}

func TestRetryProber_ExhaustedAnnotatesAndStaysUnknown(t *testing.T) {
	f := &fakeProber{outcomes: []Outcome{
		{Status: domain.StatusUnknown, Message: "servfail"},
		{Status: domain.StatusUnknown, Message: "servfail"},
		{Status: domain.StatusUnknown, Message: "servfail"},
	}}
	rp := &RetryProber{Inner: f, Attempts: 3, Backoff: 0}

	out := rp.Probe(context.Background(), "example.com")
	if out.Status != domain.StatusUnknown {
		t.Fatalf("expected UNKNOWN, got %+v", out)
	}
	if !strings.Contains(out.Message, "after 3 attempts") {
		t.Fatalf("expected annotation, got %q", out.Message)
	}
}

func TestRetryProber_DefiniteAnswerShortCircuits(t *testing.T) {
	f := &fakeProber{outcomes: []Outcome{
		{Status: domain.StatusDown, Message: "NXDOMAIN"},
		{Status: domain.StatusUp, Message: "should not be reached"},
	}}
	rp := &RetryProber{Inner: f, Attempts: 3, Backoff: 0}

	out := rp.Probe(context.Background(), "example.com")
	if out.Status != domain.StatusDown {
		t.Fatalf("expected DOWN, got %+v", out)
	}
	if f.i != 1 {
		t.Fatalf("DOWN is definite; expected a single probe, got %d", f.i)
	}
}
