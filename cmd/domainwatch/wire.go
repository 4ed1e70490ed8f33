package main

import (
	"github.com/bensethbell/domainwatch/internal/config"
	"github.com/bensethbell/domainwatch/internal/notify"
	"github.com/bensethbell/domainwatch/internal/probe"
)

// buildProber assembles the probe chain for the configured mode. Every mode
// is wrapped in the retry prober so transient failures get their bounded
// second chances before settling on UNKNOWN.
func buildProber(mode string, cfg config.Config) probe.Prober {
	var inner probe.Prober
	switch mode {
	case "dns":
		inner = probe.NewDNSProber(cfg.ProbeTimeout)
	case "http":
		inner = probe.NewHTTPProber(cfg.ProbeTimeout)
	default: // registration
		inner = probe.NewRegistrationProber(
			probe.NewDNSProber(cfg.ProbeTimeout),
			probe.NewWhoisProber(cfg.ProbeTimeout),
		)
	}
	return &probe.RetryProber{Inner: inner, Attempts: cfg.RetryAttempts, Backoff: cfg.RetryBackoff}
}

// buildNotifier wires every transport with credentials present. Returns nil
// when none are configured, which the monitor treats as notify disabled.
func buildNotifier(cfg config.Config) notify.Notifier {
	var m notify.Multi
	if e := notify.NewEmail(cfg.SMTPAddr, cfg.SenderEmail, cfg.SenderPassword, cfg.RecipientEmail); e != nil {
		m = append(m, e)
	}
	if s := notify.NewSlack(cfg.SlackWebhook); s != nil {
		m = append(m, s)
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
