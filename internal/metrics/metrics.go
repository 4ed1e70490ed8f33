package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CyclesTotal        prometheus.Counter
	CycleFailuresTotal prometheus.Counter
	ChangesTotal       prometheus.Counter
	ProbeUnknownTotal  prometheus.Counter
	NotifyFailures     prometheus.Counter
	LastCycleUnixTime  prometheus.Gauge
	DomainsMonitored   prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "domainwatch_cycles_total",
			Help: "Total number of completed monitoring cycles",
		}),
		CycleFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "domainwatch_cycle_failures_total",
			Help: "Total number of cycles aborted by a fatal error",
		}),
		ChangesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "domainwatch_status_changes_total",
			Help: "Total number of domain status transitions detected",
		}),
		ProbeUnknownTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "domainwatch_probe_unknown_total",
			Help: "Total number of probes that degraded to UNKNOWN",
		}),
		NotifyFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "domainwatch_notify_failures_total",
			Help: "Total number of failed notification sends",
		}),
		LastCycleUnixTime: factory.NewGauge(prometheus.GaugeOpts{
			Name: "domainwatch_last_cycle_timestamp_seconds",
			Help: "Unix time of the last completed cycle",
		}),
		DomainsMonitored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "domainwatch_domains_monitored",
			Help: "Number of domains probed in the last cycle",
		}),
	}
}
