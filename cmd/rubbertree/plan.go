package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jihwankim/rubbertree/pkg/metrics"
	"github.com/jihwankim/rubbertree/pkg/planner"
	"github.com/jihwankim/rubbertree/pkg/reporting"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Args:  cobra.NoArgs,
	Short: "Vulcanize a population document into a DNS record set",
	Long:  `Loads a population YAML file and precomputes its weighted answer topology.`,
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().String("population", "", "path to population YAML file")
	planCmd.Flags().Int("k", 0, "override records_per_entry from the population document")
	planCmd.Flags().String("format", "text", "output format (text, json)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	populationPath, _ := cmd.Flags().GetString("population")
	if populationPath == "" {
		return fmt.Errorf("--population flag is required")
	}
	k, _ := cmd.Flags().GetInt("k")
	outputFormat, _ := cmd.Flags().GetString("format")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logLevel := reporting.LogLevelInfo
	if verbose {
		logLevel = reporting.LogLevelDebug
	}
	logger := reporting.NewLogger(reporting.LoggerConfig{
		Level:  logLevel,
		Format: reporting.LogFormat(cfg.Framework.LogFormat),
		Output: os.Stdout,
	})

	logger.Info("rubbertree starting", "version", version)

	data, err := os.ReadFile(populationPath)
	if err != nil {
		return fmt.Errorf("failed to read population file: %w", err)
	}

	storage, err := reporting.NewStorage(cfg.Reporting.OutputDir, cfg.Reporting.KeepLastN, logger)
	if err != nil {
		return fmt.Errorf("failed to create report storage: %w", err)
	}

	if k == 0 {
		k = cfg.Planner.RecordsPerEntry
	}

	m := metrics.NewPlanner()
	records, report, err := planner.Plan(context.Background(), data, planner.Options{
		K:       k,
		Metrics: m,
		Storage: storage,
	})
	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	logger.Info("plan completed", "records", report.RecordCounts.Total, "run_id", report.RunID)

	switch outputFormat {
	case "text":
		printer := reporting.NewPrinter()
		printer.Print(os.Stdout, records)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
	}

	return nil
}
