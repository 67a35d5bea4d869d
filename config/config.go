// Package config loads the application configuration from a yaml or json
// file with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/alibabarta/hotspot/core/analysis"
	"github.com/alibabarta/hotspot/core/metrics"
	"github.com/alibabarta/hotspot/jobs/hotspots"
)

type Config struct {
	Ledger   LedgerConfig    `json:"ledger"`
	Clusters ClustersConfig  `json:"clusters"`
	Analysis analysis.Config `json:"analysis"`
	Output   OutputConfig    `json:"output"`
	Metrics  metrics.Config  `json:"metrics"`
	Hotspots hotspots.Config `json:"hotspots"`
}

// LedgerConfig locates the trip ledger source.
type LedgerConfig struct {
	Path string `json:"path"`
	// TimeLayouts override the default StartDateTime layouts when set.
	TimeLayouts []string `json:"time_layouts"`
}

// Validate checks mandatory fields.
func (c LedgerConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("ledger.path is required")
	}
	return nil
}

// ClustersConfig locates the demand cluster source.
type ClustersConfig struct {
	Path string `json:"path"`
	// GeoIndex switches the demand index from a linear scan to a
	// geohash-cell grid. Query semantics are identical.
	GeoIndex bool `json:"geo_index"`
}

// Validate checks mandatory fields.
func (c ClustersConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("clusters.path is required")
	}
	return nil
}

// OutputConfig names the result tables written after a run.
type OutputConfig struct {
	BaselinePath string `json:"baseline_path"`
	PolicyPath   string `json:"policy_path"`
}

// SetDefaults applies the study's historical output names.
func (c *OutputConfig) SetDefaults() {
	if c.BaselinePath == "" {
		c.BaselinePath = "old-data-wt.csv"
	}
	if c.PolicyPath == "" {
		c.PolicyPath = "new-data-wt.csv"
	}
}

// Load reads the configuration file at path, applies HOTSPOT_-prefixed
// environment overrides (double underscore separates nesting levels),
// fills defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("HOTSPOT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "hotspot_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Analysis.SetDefaults()
	cfg.Output.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Hotspots.SetDefaults()
	if err := cfg.Ledger.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Clusters.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Analysis.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
