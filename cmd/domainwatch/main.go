// Package main is the entry point for the domainwatch CLI.
//
// The normal deployment is a CI cron job: the scheduler calls
// `domainwatch run` once per cadence, commits the updated
// domain_status.json, and passes notification credentials through the
// environment. `domainwatch serve` runs the same cycle on an internal
// ticker and exposes a read-only status API instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "domainwatch",
	Short: "Domain availability monitor",
	Long: `domainwatch probes a set of domains, diffs the result against the
previously persisted status, and sends one batched notification when
anything changed.

Quick start:
  1. Create a domain list (domains.yaml):
       domains:
         - writeup.ai
  2. Run one cycle: domainwatch run
  3. The updated domain_status.json is ready to commit.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("domainwatch %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
