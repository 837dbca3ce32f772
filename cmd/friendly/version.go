package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/friendly"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of friendly",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "friendly version %s\n", strings.TrimSpace(friendly.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
