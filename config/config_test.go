package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
ledger:
  path: trips.csv
clusters:
  path: clusters.csv
  geo_index: true
analysis:
  workers: 3
  hotspot_radius_km: 0.5
  redirect_wait_minutes: 5
  average_speed_kmh: 30
metrics:
  prometheus_enabled: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "trips.csv", cfg.Ledger.Path)
	assert.True(t, cfg.Clusters.GeoIndex)
	assert.Equal(t, 3, cfg.Analysis.Workers)
	assert.True(t, cfg.Metrics.PrometheusEnabled)
	assert.Equal(t, "2112", cfg.Metrics.PrometheusPort)
	assert.Equal(t, "old-data-wt.csv", cfg.Output.BaselinePath)
	assert.Equal(t, "new-data-wt.csv", cfg.Output.PolicyPath)
	assert.Equal(t, 84, cfg.Hotspots.ClustersPerHour)
}

func TestLoadAppliesAnalysisDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
ledger:
  path: trips.csv
clusters:
  path: clusters.csv
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Analysis.HotspotRadiusKm)
	assert.Equal(t, 5.0, cfg.Analysis.RedirectWaitMinutes)
	assert.Equal(t, 30.0, cfg.Analysis.AverageSpeedKmh)
	assert.Greater(t, cfg.Analysis.Workers, 0)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json",
		`{"ledger":{"path":"trips.csv"},"clusters":{"path":"clusters.csv"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "clusters.csv", cfg.Clusters.Path)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", "x = 1")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRequiresLedgerPath(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
clusters:
  path: clusters.csv
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger.path")
}

func TestLoadRejectsInvalidAnalysis(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
ledger:
  path: trips.csv
clusters:
  path: clusters.csv
analysis:
  hotspot_radius_km: -1
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
ledger:
  path: trips.csv
clusters:
  path: clusters.csv
`)
	t.Setenv("HOTSPOT_LEDGER__PATH", "other.csv")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.csv", cfg.Ledger.Path)
}
