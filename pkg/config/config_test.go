package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jihwankim/rubbertree/pkg/config"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsUnknownStrategy(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Shard.Strategy = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an unknown shard strategy")
	}
}

func TestValidateRequiresLedgerDirForSearch(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Shard.Strategy = "search"
	cfg.Shard.LedgerDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a missing ledger directory")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shard.Strategy != "simple" {
		t.Fatalf("expected default strategy, got %q", cfg.Shard.Strategy)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Shard.Seed = 99
	cfg.Reporting.OutputDir = "/tmp/whatever"

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Shard.Seed != 99 {
		t.Fatalf("got seed %d, want 99", loaded.Shard.Seed)
	}
	if loaded.Reporting.OutputDir != "/tmp/whatever" {
		t.Fatalf("got output dir %q", loaded.Reporting.OutputDir)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}
