package probe

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bensethbell/domainwatch/internal/domain"
)

// HTTPProber checks liveness with a GET against the domain's root URL.
// 2xx/3xx -> UP, other status codes -> DOWN, timeouts -> UNKNOWN.
type HTTPProber struct {
	Client *http.Client
}

func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProber{Client: &http.Client{Timeout: timeout}}
}

func (p *HTTPProber) Probe(ctx context.Context, name string) Outcome {
	target := name
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Outcome{Status: domain.StatusUnknown, Message: err.Error()}
	}

	resp, err := p.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return Outcome{Status: domain.StatusUnknown, Message: "timeout", LatencyMS: latency}
		}
		return Outcome{Status: domain.StatusDown, Message: err.Error(), LatencyMS: latency}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return Outcome{Status: domain.StatusUp, Message: resp.Status, LatencyMS: latency}
	}
	return Outcome{Status: domain.StatusDown, Message: resp.Status, LatencyMS: latency}
}
