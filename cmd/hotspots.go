package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alibabarta/hotspot/config"
	"github.com/alibabarta/hotspot/infra/logger"
	"github.com/alibabarta/hotspot/jobs/hotspots"
)

var hotspotsCmd = &cobra.Command{
	Use:   "hotspots",
	Short: "Cluster trip starts into hourly demand centers",
	RunE:  runHotspots,
}

func init() {
	rootCmd.AddCommand(hotspotsCmd)
}

func runHotspots(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	job := hotspots.Job{
		Config:      cfg.Hotspots,
		TimeLayouts: cfg.Ledger.TimeLayouts,
		Log:         logger.New("hotspots"),
	}
	return job.RunFile(cfg.Ledger.Path, cfg.Clusters.Path)
}
