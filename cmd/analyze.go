package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alibabarta/hotspot/app"
	"github.com/alibabarta/hotspot/config"
	"github.com/alibabarta/hotspot/infra/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the wait-time comparison over a trip ledger",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}
