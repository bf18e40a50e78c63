// Package config loads pipeline settings. The binary takes no flags: the
// values are read by viper from an optional routegen.yaml or ROUTEGEN_*
// environment variables, with defaults for everything.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all settings of the generation run.
type Config struct {
	// OutputPath is where the JSONL corpus is written.
	OutputPath string `mapstructure:"output_path"`
	// CatalogPath optionally overrides the embedded tool catalog.
	CatalogPath string `mapstructure:"catalog_path"`
	// Seed feeds the single random source used by every stage.
	Seed uint64 `mapstructure:"seed"`
	// TypoRate is the per-example typo augmentation probability.
	TypoRate float64 `mapstructure:"typo_rate"`
}

// Load reads the configuration. A missing config file is fine; a present
// but malformed one is not.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("output_path", "data/luna_routing_train.jsonl")
	v.SetDefault("catalog_path", "")
	v.SetDefault("seed", 42)
	v.SetDefault("typo_rate", 0.15)

	v.SetConfigName("routegen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("routegen")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.OutputPath == "" {
		return nil, fmt.Errorf("output_path must not be empty")
	}
	if cfg.TypoRate < 0 || cfg.TypoRate > 1 {
		return nil, fmt.Errorf("typo_rate %v out of range [0, 1]", cfg.TypoRate)
	}
	return &cfg, nil
}
