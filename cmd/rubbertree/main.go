package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev" // set by build flags
)

var rootCmd = &cobra.Command{
	Use:   "rubbertree",
	Short: "Precompute weighted DNS answer topologies from labeled endpoint populations",
	Long: `rubbertree turns a population of service endpoints labeled along
fault-isolation dimensions into a DNS answer set: a flat or nested tree
of weighted records that, once published, survives the simultaneous
loss of any one dimension value without a live failover decision.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(shardCmd)
}

// Commands are defined in separate files:
// - planCmd in plan.go
// - shardCmd in shard.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
