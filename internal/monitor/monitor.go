package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bensethbell/domainwatch/internal/diff"
	"github.com/bensethbell/domainwatch/internal/domain"
	"github.com/bensethbell/domainwatch/internal/metrics"
	"github.com/bensethbell/domainwatch/internal/notify"
	"github.com/bensethbell/domainwatch/internal/probe"
)

// Store is the persistence port for the status artifact.
type Store interface {
	Load() (domain.StatusSet, error)
	Save(domain.StatusSet) error
}

// Summary is the result of one cycle. NotifyErr is a warning, not a
// failure: the cycle still persisted its store.
type Summary struct {
	CycleID   string
	Started   time.Time
	Duration  time.Duration
	Checked   int
	Unknown   int
	Events    []domain.ChangeEvent
	NotifyErr error
}

// Monitor runs the cycle pipeline: load store, probe all domains with a
// bounded worker pool, diff against the baseline, notify on changes,
// persist the updated store.
type Monitor struct {
	Logger      *zap.Logger
	Store       Store
	Prober      probe.Prober
	Notifier    notify.Notifier
	Domains     []string
	Concurrency int
	Metrics     *metrics.Metrics

	now func() time.Time
}

func New(logger *zap.Logger, store Store, prober probe.Prober, notifier notify.Notifier, domains []string, concurrency int) *Monitor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Monitor{
		Logger:      logger,
		Store:       store,
		Prober:      prober,
		Notifier:    notifier,
		Domains:     domains,
		Concurrency: concurrency,
		now:         time.Now,
	}
}

// RunCycle executes one full cycle. A load or save error is returned and
// the prior artifact is left untouched; everything in between is
// best-effort (probe failures degrade the domain to UNKNOWN, notify
// failures are surfaced in the Summary only).
func (m *Monitor) RunCycle(ctx context.Context) (Summary, error) {
	start := m.now().UTC()
	sum := Summary{CycleID: uuid.NewString(), Started: start}

	log := m.Logger.With(zap.String("cycle_id", sum.CycleID))
	log.Info("cycle_start", zap.Int("domains", len(m.Domains)))

	old, err := m.Store.Load()
	if err != nil {
		if m.Metrics != nil {
			m.Metrics.CycleFailuresTotal.Inc()
		}
		log.Error("store_load_failed", zap.Error(err))
		return sum, err
	}

	probed := m.probeAll(ctx, log)
	sum.Checked = len(probed)
	for _, s := range probed {
		if s == domain.StatusUnknown {
			sum.Unknown++
		}
	}

	now := m.now().UTC()
	sum.Events = diff.Changes(old, probed, now)
	next := diff.Apply(old, probed, now)

	if len(sum.Events) > 0 && m.Notifier != nil {
		subject, body := notify.Format(sum.Events)
		if err := m.Notifier.Send(ctx, subject, body); err != nil {
			sum.NotifyErr = err
			if m.Metrics != nil {
				m.Metrics.NotifyFailures.Inc()
			}
			log.Warn("notify_failed", zap.Error(err))
		} else {
			log.Info("notify_sent", zap.Int("events", len(sum.Events)), zap.String("subject", subject))
		}
	}

	if err := m.Store.Save(next); err != nil {
		if m.Metrics != nil {
			m.Metrics.CycleFailuresTotal.Inc()
		}
		log.Error("store_save_failed", zap.Error(err))
		return sum, err
	}

	sum.Duration = m.now().UTC().Sub(start)
	if m.Metrics != nil {
		m.Metrics.CyclesTotal.Inc()
		m.Metrics.ChangesTotal.Add(float64(len(sum.Events)))
		m.Metrics.ProbeUnknownTotal.Add(float64(sum.Unknown))
		m.Metrics.LastCycleUnixTime.Set(float64(now.Unix()))
		m.Metrics.DomainsMonitored.Set(float64(sum.Checked))
	}
	log.Info("cycle_done",
		zap.Int("checked", sum.Checked),
		zap.Int("unknown", sum.Unknown),
		zap.Int("changes", len(sum.Events)),
		zap.Duration("took", sum.Duration),
	)
	return sum, nil
}

// probeAll fans domains out over a bounded pool and joins before returning,
// so diff and persist always see the complete cycle.
func (m *Monitor) probeAll(ctx context.Context, log *zap.Logger) map[string]domain.Status {
	results := make([]probe.Outcome, len(m.Domains))

	sem := make(chan struct{}, m.Concurrency)
	var wg sync.WaitGroup
	for i, d := range m.Domains {
		sem <- struct{}{}
		wg.Add(1)
		go func(idx int, name string) {
			defer func() { <-sem }()
			defer wg.Done()
			results[idx] = m.Prober.Probe(ctx, name)
		}(i, d)
	}
	wg.Wait()

	probed := make(map[string]domain.Status, len(m.Domains))
	for i, d := range m.Domains {
		out := results[i]
		probed[d] = out.Status
		log.Debug("probed",
			zap.String("domain", d),
			zap.String("status", string(out.Status)),
			zap.String("message", out.Message),
			zap.Float64("latency_ms", out.LatencyMS),
		)
	}
	return probed
}

// Run is the daemon loop for serve mode: an immediate cycle, then one per
// tick until the context is cancelled. Cycle errors are logged, not fatal;
// the next tick retries.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		m.Logger.Info("monitor_loop_disabled")
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	if _, err := m.RunCycle(ctx); err != nil {
		m.Logger.Warn("cycle_error", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			m.Logger.Info("monitor_loop_stopped")
			return
		case <-t.C:
			if _, err := m.RunCycle(ctx); err != nil {
				m.Logger.Warn("cycle_error", zap.Error(err))
			}
		}
	}
}
