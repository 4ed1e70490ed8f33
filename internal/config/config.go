package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DomainsFile   string        // YAML domain list, used when DOMAINS is unset
	Domains       []string      // comma-separated DOMAINS env override
	StatusFile    string        // path of the persisted status artifact
	ProbeMode     string        // registration | dns | http
	ProbeTimeout  time.Duration // per-probe timeout
	RetryAttempts int           // probe attempts before settling on UNKNOWN
	RetryBackoff  time.Duration // backoff between attempts
	Concurrency   int           // max in-flight probes per cycle
	CheckInterval time.Duration // serve-mode cycle interval; 0 disables the loop
	Addr          string        // serve-mode bind address
	LogDir        string        // logs directory
	LogLevel      string        // zap level name; empty means info

	// Notification transports. Opaque pass-through from the scheduler.
	SenderEmail    string
	SenderPassword string
	RecipientEmail string
	SMTPAddr       string
	SlackWebhook   string
}

func FromEnv() Config {
	cfg := Config{
		DomainsFile:   envOr("DOMAINS_FILE", "domains.yaml"),
		StatusFile:    envOr("STATUS_FILE", "domain_status.json"),
		ProbeMode:     envOr("PROBE_MODE", "registration"),
		ProbeTimeout:  envMS("PROBE_TIMEOUT_MS", 10*time.Second),
		RetryAttempts: envInt("RETRY_ATTEMPTS", 3),
		RetryBackoff:  envMS("RETRY_BACKOFF_MS", 500*time.Millisecond),
		Concurrency:   envInt("MAX_CONCURRENT_PROBES", 5),
		CheckInterval: envMS("CHECK_INTERVAL_MS", 0),
		Addr:          envOr("ADDR", "127.0.0.1:8080"),
		LogDir:        envOr("LOG_DIR", "logs"),
		LogLevel:      os.Getenv("LOG_LEVEL"),

		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("SENDER_PASSWORD"),
		RecipientEmail: os.Getenv("RECIPIENT_EMAIL"),
		SMTPAddr:       os.Getenv("SMTP_ADDR"),
		SlackWebhook:   os.Getenv("SLACK_WEBHOOK"),
	}

	if v := os.Getenv("DOMAINS"); v != "" {
		for _, d := range strings.Split(v, ",") {
			if d = strings.TrimSpace(d); d != "" {
				cfg.Domains = append(cfg.Domains, d)
			}
		}
	}
	return cfg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envMS(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

// DomainList is the YAML domain-list file.
//
//	probe_mode: registration
//	domains:
//	  - writeup.ai
//	  - example.com
type DomainList struct {
	ProbeMode string   `yaml:"probe_mode"`
	Domains   []string `yaml:"domains"`
}

// LoadDomainList parses and validates the YAML domain list.
func LoadDomainList(path string) (*DomainList, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read domain list: %w", err)
	}
	var dl DomainList
	if err := yaml.Unmarshal(b, &dl); err != nil {
		return nil, fmt.Errorf("parse domain list %s: %w", path, err)
	}
	if err := dl.validate(); err != nil {
		return nil, fmt.Errorf("domain list %s: %w", path, err)
	}
	return &dl, nil
}

func (dl *DomainList) validate() error {
	if len(dl.Domains) == 0 {
		return fmt.Errorf("no domains configured")
	}
	seen := make(map[string]bool, len(dl.Domains))
	for i, d := range dl.Domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			return fmt.Errorf("empty domain at index %d", i)
		}
		if strings.Contains(d, "://") || strings.Contains(d, "/") {
			return fmt.Errorf("%q is a URL, expected a bare domain name", d)
		}
		if !strings.Contains(d, ".") {
			return fmt.Errorf("%q does not look like a domain name", d)
		}
		if seen[d] {
			return fmt.Errorf("duplicate domain %q", d)
		}
		seen[d] = true
		dl.Domains[i] = d
	}
	switch dl.ProbeMode {
	case "", "registration", "dns", "http":
	default:
		return fmt.Errorf("unknown probe_mode %q (expected registration, dns, or http)", dl.ProbeMode)
	}
	return nil
}

// ResolveDomains returns the monitored domains and probe mode, preferring
// the DOMAINS env override and falling back to the YAML file.
func (c Config) ResolveDomains() ([]string, string, error) {
	if len(c.Domains) > 0 {
		return c.Domains, c.ProbeMode, nil
	}
	dl, err := LoadDomainList(c.DomainsFile)
	if err != nil {
		return nil, "", err
	}
	mode := c.ProbeMode
	if dl.ProbeMode != "" {
		mode = dl.ProbeMode
	}
	return dl.Domains, mode, nil
}
