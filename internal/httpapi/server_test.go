package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/bensethbell/domainwatch/internal/domain"
	"github.com/bensethbell/domainwatch/internal/metrics"
	"github.com/bensethbell/domainwatch/internal/store"
)

type fakeReader struct {
	set domain.StatusSet
	err error
}

func (f *fakeReader) Load() (domain.StatusSet, error) { return f.set, f.err }

func newTestServer(sr StatusReader, reg *prometheus.Registry) *httptest.Server {
	s := NewServer(zap.NewNop(), sr, reg)
	return httptest.NewServer(s.Router())
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(&fakeReader{set: domain.StatusSet{}}, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
}

func TestStatusListsAllDomains(t *testing.T) {
	now := time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC)
	ts := newTestServer(&fakeReader{set: domain.StatusSet{
		"a.com": {Status: domain.StatusUp, LastChecked: now},
		"b.com": {Status: domain.StatusDown, LastChecked: now},
	}}, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/status")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var got domain.StatusSet
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got["a.com"].Status != domain.StatusUp {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestDomainStatus_FoundAndNotFound(t *testing.T) {
	ts := newTestServer(&fakeReader{set: domain.StatusSet{
		"a.com": {Status: domain.StatusRegistered},
	}}, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/status/a.com")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var got map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["domain"] != "a.com" || got["status"] != "REGISTERED" {
		t.Fatalf("unexpected payload: %+v", got)
	}

	resp2, err := http.Get(ts.URL + "/api/status/missing.com")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != 404 {
		t.Fatalf("want 404, got %d", resp2.StatusCode)
	}
}

func TestStatus_CorruptStoreReports500(t *testing.T) {
	ts := newTestServer(&fakeReader{err: fmt.Errorf("%w: bad json", store.ErrCorruptStore)}, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/status")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 500 {
		t.Fatalf("want 500, got %d", resp.StatusCode)
	}
}

func TestMetricsEndpointServed(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = metrics.New(reg)

	ts := newTestServer(&fakeReader{set: domain.StatusSet{}}, reg)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
}
