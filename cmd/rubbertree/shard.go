package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jihwankim/rubbertree/pkg/metrics"
	"github.com/jihwankim/rubbertree/pkg/planner"
	"github.com/jihwankim/rubbertree/pkg/reporting"
	"github.com/jihwankim/rubbertree/pkg/shard/ledger"
	"github.com/spf13/cobra"
)

var shardCmd = &cobra.Command{
	Use:   "shard",
	Args:  cobra.NoArgs,
	Short: "Select a bounded-overlap subset of a population",
	Long:  `Loads a population YAML file and selects k endpoints per cell using a simple or randomized-search strategy.`,
	RunE:  runShard,
}

func init() {
	shardCmd.Flags().String("population", "", "path to population YAML file")
	shardCmd.Flags().String("id", "", "shard identity (used by the simple strategy's hash)")
	shardCmd.Flags().String("strategy", "", "sharding strategy: simple or search (overrides config)")
	shardCmd.Flags().Int64("seed", 0, "RNG/hash seed (overrides config)")
	shardCmd.Flags().Int("k", 0, "endpoints to select per cell (overrides config)")
	shardCmd.Flags().Int("m", 0, "max pairwise overlap for the search strategy (overrides config)")
}

func runShard(cmd *cobra.Command, args []string) error {
	populationPath, _ := cmd.Flags().GetString("population")
	if populationPath == "" {
		return fmt.Errorf("--population flag is required")
	}
	id, _ := cmd.Flags().GetString("id")
	strategy, _ := cmd.Flags().GetString("strategy")
	seed, _ := cmd.Flags().GetInt64("seed")
	k, _ := cmd.Flags().GetInt("k")
	m, _ := cmd.Flags().GetInt("m")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if strategy == "" {
		strategy = cfg.Shard.Strategy
	}
	if seed == 0 {
		seed = cfg.Shard.Seed
	}
	if k == 0 {
		k = cfg.Shard.K
	}
	if m == 0 {
		m = cfg.Shard.M
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

	data, err := os.ReadFile(populationPath)
	if err != nil {
		return fmt.Errorf("failed to read population file: %w", err)
	}

	opts := planner.ShardOptions{
		Strategy: strategy,
		Seed:     seed,
		K:        k,
		M:        m,
		Metrics:  metrics.NewPlanner(),
	}

	if strategy == "search" {
		store, err := ledger.NewFileStore(cfg.Shard.LedgerDir)
		if err != nil {
			return fmt.Errorf("failed to open fragment ledger: %w", err)
		}
		opts.Ledger = store
	}

	sub, err := planner.Shard(context.Background(), data, []byte(id), opts)
	if err != nil {
		return fmt.Errorf("shard failed: %w", err)
	}

	logger.Info("shard completed", "strategy", strategy, "endpoints", len(sub.GetAllEndpoints()))

	for _, coord := range sub.GetAllCoordinates() {
		endpoints, err := sub.GetEndpointsForSector(coord)
		if err != nil {
			continue
		}
		values := make([]string, len(endpoints))
		for i, e := range endpoints {
			values[i] = e.Value
		}
		fmt.Printf("%s: %s\n", strings.Join([]string(coord), "/"), strings.Join(values, ", "))
	}

	return nil
}
