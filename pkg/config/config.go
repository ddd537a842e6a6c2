package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the rubbertree planner's configuration.
type Config struct {
	Framework FrameworkConfig `yaml:"framework"`
	Planner   PlannerConfig   `yaml:"planner"`
	Shard     ShardConfig     `yaml:"shard"`
	Reporting ReportingConfig `yaml:"reporting"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// FrameworkConfig contains general framework settings.
type FrameworkConfig struct {
	Version   string `yaml:"version"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// PlannerConfig contains default vulcanization settings.
type PlannerConfig struct {
	// RecordsPerEntry overrides a population document's
	// plan.records_per_entry when nonzero.
	RecordsPerEntry int `yaml:"records_per_entry"`
}

// ShardConfig contains default sharding settings.
type ShardConfig struct {
	Strategy  string `yaml:"strategy"`
	Seed      int64  `yaml:"seed"`
	K         int    `yaml:"k"`
	M         int    `yaml:"m"`
	LedgerDir string `yaml:"ledger_dir"`
}

// ReportingConfig contains reporting and output settings.
type ReportingConfig struct {
	OutputDir string `yaml:"output_dir"`
	KeepLastN int    `yaml:"keep_last_n"`
	Format    string `yaml:"format"`
}

// MetricsConfig holds settings for a Prometheus scrape endpoint. Nothing
// in this repository reads them; no scrape endpoint is opened.
type MetricsConfig struct {
	Enabled bool          `yaml:"enabled"`
	Listen  string        `yaml:"listen"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Framework: FrameworkConfig{
			Version:   "v1",
			LogLevel:  "info",
			LogFormat: "text",
		},
		Planner: PlannerConfig{
			RecordsPerEntry: 0,
		},
		Shard: ShardConfig{
			Strategy:  "simple",
			Seed:      0,
			K:         1,
			M:         0,
			LedgerDir: "./ledger",
		},
		Reporting: ReportingConfig{
			OutputDir: "./plan-reports",
			KeepLastN: 50,
			Format:    "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Listen:  ":9100",
			Timeout: 5 * time.Second,
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// if path does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = "config.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(expandedData, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Reporting.OutputDir == "" {
		return fmt.Errorf("reporting.output_dir is required")
	}

	if c.Shard.Strategy != "simple" && c.Shard.Strategy != "search" {
		return fmt.Errorf("shard.strategy must be \"simple\" or \"search\", got %q", c.Shard.Strategy)
	}

	if c.Shard.K < 1 {
		return fmt.Errorf("shard.k must be at least 1")
	}

	if c.Shard.Strategy == "search" && c.Shard.LedgerDir == "" {
		return fmt.Errorf("shard.ledger_dir is required when shard.strategy is \"search\"")
	}

	return nil
}
