package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/pillars"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pillars",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pillars version %s\n", strings.TrimSpace(pillars.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
