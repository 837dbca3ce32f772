package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/friendly/internal/presentation/tui"
	"github.com/aretw0/friendly/pkg/docs"
)

var refCmd = &cobra.Command{
	Use:   "ref <class> <member>",
	Short: "Show the reference entry for a documented member",
	Example: `  friendly ref p5 ellipse
  friendly ref p5.Vector add --plain`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := settings(cmd)
		if err != nil {
			return err
		}
		classes, err := loadDocs(cfg)
		if err != nil {
			return err
		}

		item, ok := classes.Lookup(args[0], args[1])
		if !ok {
			return fmt.Errorf("no reference for %s.%s", args[0], args[1])
		}

		ref := docs.Reference{BaseURL: cfg.ReferenceURL}
		plain, _ := cmd.Flags().GetBool("plain")
		out := cmd.OutOrStdout()

		// Help text is what a wrapped method shows; markdown is for terminals.
		if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(out, ref.Help(item))
			return nil
		}

		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		text, err := render(tui.ReferenceMarkdown(item, ref))
		if err != nil {
			return err
		}
		fmt.Fprint(out, text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refCmd)
	refCmd.Flags().Bool("plain", false, "Print the plain help text instead of rendered markdown")
}
