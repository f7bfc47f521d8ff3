package main

import (
	"github.com/aretw0/pillars/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive rolling session",
	Long: `Starts a session in full screen on a terminal, or with the plain line
renderer when input or output is redirected (or with --plain).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Execute(runOptions(cmd))
	},
}

func runOptions(cmd *cobra.Command) cli.RunOptions {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	logLevel, _ := flags.GetString("log-level")
	logFile, _ := flags.GetString("log-file")
	noColor, _ := flags.GetBool("no-color")
	plain, _ := flags.GetBool("plain")
	metricsAddr, _ := flags.GetString("metrics-addr")

	return cli.RunOptions{
		ConfigPath:     configPath,
		ConfigExplicit: flags.Changed("config"),
		LogLevel:       logLevel,
		LogFile:        logFile,
		Plain:          plain,
		NoColor:        noColor,
		MetricsAddr:    metricsAddr,
	}
}

func init() {
	rootCmd.AddCommand(playCmd)

	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().Bool("plain", false, "Use the line renderer instead of the full screen UI")
		c.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	}

	// 'play' is the default when no command is given.
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = playCmd.RunE
}
