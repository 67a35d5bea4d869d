package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alibabarta/hotspot/config"
)

func TestServiceRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	trips := filepath.Join(dir, "trips.csv")
	clusters := filepath.Join(dir, "clusters.csv")
	baselineOut := filepath.Join(dir, "old-data-wt.csv")
	policyOut := filepath.Join(dir, "new-data-wt.csv")

	require.NoError(t, os.WriteFile(trips, []byte(
		`anonymized_vehicle_id,StartDateTime,EndLat,EndLon,Distance
a,2024-03-01 08:00:00,25.0,55.0,10
a,2024-03-01 08:10:00,25.0,55.0,10
a,2024-03-01 08:25:00,25.0,55.0,10
b,2024-03-01 09:00:00,26.0,56.0,15
b,2024-03-01 09:40:00,26.0,56.0,15
`), 0o600))
	require.NoError(t, os.WriteFile(clusters, []byte(
		`hour,StartLat,StartLon
8,25.0,55.0
`), 0o600))

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf(`
ledger:
  path: %s
clusters:
  path: %s
  geo_index: true
output:
  baseline_path: %s
  policy_path: %s
`, trips, clusters, baselineOut, policyOut)), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()

	require.NoError(t, svc.Run(context.Background()))

	baseline, err := os.ReadFile(baselineOut)
	require.NoError(t, err)
	assert.Equal(t, "driver_id,avg_wait_time\na,12.5\nb,40\n", string(baseline))

	policy, err := os.ReadFile(policyOut)
	require.NoError(t, err)
	assert.Equal(t, "driver_id,avg_wait_time\na,5\nb,40\n", string(policy))
}

func TestServiceRunMissingLedger(t *testing.T) {
	dir := t.TempDir()
	clusters := filepath.Join(dir, "clusters.csv")
	require.NoError(t, os.WriteFile(clusters, []byte("hour,StartLat,StartLon\n"), 0o600))

	cfg := &config.Config{}
	cfg.Ledger.Path = filepath.Join(dir, "missing.csv")
	cfg.Clusters.Path = clusters
	cfg.Analysis.SetDefaults()
	cfg.Output.SetDefaults()
	cfg.Output.BaselinePath = filepath.Join(dir, "old.csv")
	cfg.Output.PolicyPath = filepath.Join(dir, "new.csv")

	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()
	assert.Error(t, svc.Run(context.Background()))
}
