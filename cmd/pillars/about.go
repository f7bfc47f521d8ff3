package main

import (
	"os"

	"github.com/aretw0/pillars/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Describe the pillars and the rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		fd := int(os.Stdout.Fd())
		width := 0
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
		return cli.RunAbout(cmd.OutOrStdout(), noColor || !term.IsTerminal(fd), width)
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
