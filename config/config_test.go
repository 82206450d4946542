package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// run from an empty directory so no stray higgs-eda.yaml is picked up
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Input != "HIGGS.csv.gz" {
		t.Errorf("Input = %q, want HIGGS.csv.gz", c.Input)
	}
	if c.NRows != 500000 {
		t.Errorf("NRows = %d, want 500000", c.NRows)
	}
	if c.OutDir != "results/eda" {
		t.Errorf("OutDir = %q, want results/eda", c.OutDir)
	}
	if c.Seed != 42 {
		t.Errorf("Seed = %d, want 42", c.Seed)
	}
	if len(c.Features) != 7 {
		t.Errorf("Features length = %d, want 7", len(c.Features))
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := "input: small.csv\nnrows: 100\noutdir: out\nlog_level: debug\nseed: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Input != "small.csv" || c.NRows != 100 || c.OutDir != "out" {
		t.Errorf("Load() = %+v, want file values", c)
	}
	if c.LogLevel != "debug" || c.Seed != 7 {
		t.Errorf("Load() = %+v, want log_level debug, seed 7", c)
	}
	// unset keys keep their defaults
	if len(c.Features) != 7 {
		t.Errorf("Features length = %d, want default 7", len(c.Features))
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit config file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "negative nrows", mutate: func(c *Config) { c.NRows = -1 }, wantErr: true},
		{name: "empty input", mutate: func(c *Config) { c.Input = "" }, wantErr: true},
		{name: "empty outdir", mutate: func(c *Config) { c.OutDir = "" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Input:    "HIGGS.csv.gz",
				NRows:    1000,
				OutDir:   "results/eda",
				Seed:     42,
				LogLevel: "info",
			}
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	c := &Config{
		Input:    "HIGGS.csv.gz",
		NRows:    250,
		OutDir:   "results/eda",
		Features: []string{"m_jj"},
		Seed:     42,
		LogLevel: "warn",
	}
	if err := Save(c, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.NRows != 250 || loaded.LogLevel != "warn" || len(loaded.Features) != 1 {
		t.Errorf("round trip = %+v, want saved values", loaded)
	}
}
