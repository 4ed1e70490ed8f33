package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bensethbell/domainwatch/internal/config"
	"github.com/bensethbell/domainwatch/internal/logging"
	"github.com/bensethbell/domainwatch/internal/monitor"
	"github.com/bensethbell/domainwatch/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one monitoring cycle and exit",
	Long: `Run a single cycle: load the status artifact, probe every configured
domain, diff against the stored baseline, notify on changes, and
atomically rewrite the artifact.

Exit codes:
  0 - cycle completed (including degraded probes or a failed notification)
  1 - fatal: the status artifact is corrupt or could not be read/written`,
	RunE: runOnce,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()

	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	domains, mode, err := cfg.ResolveDomains()
	if err != nil {
		logger.Error("config_error", zap.Error(err))
		return err
	}

	mon := monitor.New(
		logger,
		store.NewFileStore(cfg.StatusFile),
		buildProber(mode, cfg),
		buildNotifier(cfg),
		domains,
		cfg.Concurrency,
	)

	sum, err := mon.RunCycle(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("checked %d domains, %d unknown, %d changes (cycle %s)\n",
		sum.Checked, sum.Unknown, len(sum.Events), sum.CycleID)
	if sum.NotifyErr != nil {
		// Warning only: the store persisted, the next cycle diffs correctly.
		fmt.Printf("warning: notification failed: %v\n", sum.NotifyErr)
	}
	return nil
}
