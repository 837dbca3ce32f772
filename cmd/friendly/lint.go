package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/friendly/pkg/docs"
)

var lintCmd = &cobra.Command{
	Use:   "lint [docs-file]",
	Short: "Check documentation for duplicate, unnamed and unrecognized entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := settings(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.Docs = args[0]
		}

		classes, err := loadDocs(cfg)
		if err != nil {
			return err
		}

		diags := docs.Lint(classes, cfg.Namespace)
		out := cmd.OutOrStdout()
		for _, d := range diags {
			fmt.Fprintln(out, d.String())
		}
		fmt.Fprintf(out, "%d classes, %d members, %d problems\n",
			len(classes.ClassNames()), len(classes.ClassItems()), len(diags))

		strict, _ := cmd.Flags().GetBool("strict")
		if strict && len(diags) > 0 {
			return fmt.Errorf("lint found %d problems", len(diags))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().Bool("strict", false, "Exit with an error when any problem is found")
}
