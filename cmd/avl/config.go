package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type GenerateConfig struct {
	Operations  int     `yaml:"operations"`
	KeySpace    uint64  `yaml:"key_space"`
	RemoveRatio float64 `yaml:"remove_ratio"`
	FindRatio   float64 `yaml:"find_ratio"`
	Seed        int64   `yaml:"seed"`
}

type Config struct {
	LogLevel        string         `yaml:"log_level"`
	MetricsFile     string         `yaml:"metrics_file"`
	CheckInvariants bool           `yaml:"check_invariants"`
	VerifyContents  bool           `yaml:"verify_contents"`
	PrintTree       bool           `yaml:"print_tree"`
	Generate        GenerateConfig `yaml:"generate"`
}

var defaultConfig = Config{
	LogLevel: "info",
	Generate: GenerateConfig{
		Operations:  1000000,
		KeySpace:    100000,
		RemoveRatio: 0.3,
		FindRatio:   0.1,
		Seed:        1,
	},
}

// LoadConfig reads configuration file on top of defaults.
// Empty path means defaults only.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	if path == "" {
		return &config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Generate.Operations < 0 {
		return fmt.Errorf("negative amount of operations %d", c.Generate.Operations)
	}
	if c.Generate.KeySpace == 0 {
		return fmt.Errorf("key space must not be empty")
	}
	if c.Generate.RemoveRatio < 0 || c.Generate.FindRatio < 0 || c.Generate.RemoveRatio+c.Generate.FindRatio > 1 {
		return fmt.Errorf("invalid remove/find ratios %v/%v", c.Generate.RemoveRatio, c.Generate.FindRatio)
	}
	return nil
}

// loadConfig loads configuration file given by flags and overrides it with explicitly set flags.
func loadConfig(cctx *cli.Context) (*Config, error) {
	config, err := LoadConfig(cctx.String("config"))
	if err != nil {
		return nil, err
	}
	if cctx.IsSet("log-level") {
		config.LogLevel = cctx.String("log-level")
	}
	if cctx.IsSet("metrics-file") {
		config.MetricsFile = cctx.String("metrics-file")
	}
	if cctx.IsSet("check-invariants") {
		config.CheckInvariants = cctx.Bool("check-invariants")
	}
	if cctx.IsSet("verify-contents") {
		config.VerifyContents = cctx.Bool("verify-contents")
	}
	if cctx.IsSet("print-tree") {
		config.PrintTree = cctx.Bool("print-tree")
	}
	if cctx.IsSet("operations") {
		config.Generate.Operations = cctx.Int("operations")
	}
	if cctx.IsSet("key-space") {
		config.Generate.KeySpace = cctx.Uint64("key-space")
	}
	if cctx.IsSet("remove-ratio") {
		config.Generate.RemoveRatio = cctx.Float64("remove-ratio")
	}
	if cctx.IsSet("find-ratio") {
		config.Generate.FindRatio = cctx.Float64("find-ratio")
	}
	if cctx.IsSet("seed") {
		config.Generate.Seed = cctx.Int64("seed")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if lvl.Level() == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	return cfg.Build()
}
