// Package cmd defines the command line interface.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "hotspot",
	Short: "Taxi relocation impact analyzer",
	Long: "hotspot estimates how much idle-taxi wait time a dispatch-to-nearest-hotspot\n" +
		"policy would save, by replaying a historical trip ledger against hour-bucketed\n" +
		"demand clusters.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// signalContext returns a context canceled on SIGINT/SIGTERM so an analysis
// run can be aborted cleanly.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
