package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bensethbell/domainwatch/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the domain list and environment",
	Long: `Validate the domain list file and notification environment without
probing anything. Useful as a pre-deploy check in CI.

Exit codes:
  0 - configuration is usable
  1 - configuration is invalid (details printed to stderr)`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to the domain list file (overrides DOMAINS_FILE)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "warning:", msg) }

	cfg := config.FromEnv()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg.DomainsFile = path
	}

	domains, mode, err := cfg.ResolveDomains()
	if err != nil {
		return err
	}

	if buildNotifier(cfg) == nil {
		warn("no notification transport configured (set SENDER_EMAIL/SENDER_PASSWORD/RECIPIENT_EMAIL or SLACK_WEBHOOK); changes will only be logged")
	}
	if cfg.SenderEmail != "" && cfg.SenderPassword == "" {
		warn("SENDER_EMAIL is set but SENDER_PASSWORD is empty; email is disabled")
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Domains:      %d\n", len(domains))
	fmt.Printf("  Probe mode:   %s\n", mode)
	fmt.Printf("  Status file:  %s\n", cfg.StatusFile)
	fmt.Printf("  Retries:      %d x %s backoff\n", cfg.RetryAttempts, cfg.RetryBackoff)
	fmt.Printf("  Concurrency:  %d\n", cfg.Concurrency)
	return nil
}
