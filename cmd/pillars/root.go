package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pillars/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pillars",
	Short: "Roll a die to reveal the four strategic pillars",
	Long: `Pillars rolls an animated die once per strategic pillar
(Government, Donor, Senior Management, Situation & Context) and keeps a trail
of what was revealed.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors")
}
