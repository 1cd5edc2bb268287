package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Abeljo/ECO-SCHEDULER/app"
	"github.com/Abeljo/ECO-SCHEDULER/config"
	"github.com/Abeljo/ECO-SCHEDULER/infra/logger"
)

var (
	planYear   int
	planMonth  int
	planSeed   int64
	planFormat string
	planOutput string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the visit schedule for the configured month",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().IntVar(&planYear, "year", 0, "target year (overrides config)")
	planCmd.Flags().IntVar(&planMonth, "month", 0, "target month 1-12 (overrides config)")
	planCmd.Flags().Int64Var(&planSeed, "seed", 0, "monthly shuffle seed (overrides config)")
	planCmd.Flags().StringVar(&planFormat, "format", "", "report format: text|json|csv (overrides config)")
	planCmd.Flags().StringVar(&planOutput, "output", "", "report destination, - for stdout (overrides config)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if planYear != 0 {
		cfg.Plan.Year = planYear
	}
	if planMonth != 0 {
		cfg.Plan.Month = planMonth
	}
	if planSeed != 0 {
		cfg.Plan.Seed = planSeed
	}
	if planFormat != "" {
		cfg.Report.Format = planFormat
	}
	if planOutput != "" {
		cfg.Report.Output = planOutput
	}
	if err := cfg.Plan.Validate(); err != nil {
		return err
	}
	if err := cfg.Report.Validate(); err != nil {
		return err
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("plan-command").Errorf("service close: %v", err)
		}
	}()
	_, err = svc.Plan(ctx)
	return err
}
