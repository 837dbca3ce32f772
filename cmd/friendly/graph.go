package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/friendly/internal/presentation/graph"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the proxied class hierarchy as a Mermaid diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := settings(cmd)
		if err != nil {
			return err
		}
		eng, err := buildEngine(cfg, logger, nil)
		if err != nil {
			return err
		}

		highlight, _ := cmd.Flags().GetStringSlice("highlight")
		var overlay *graph.GraphOverlay
		if len(highlight) > 0 {
			overlay = &graph.GraphOverlay{Highlight: highlight}
		}

		nodes := graph.Nodes(eng.Namespace(), eng.Registry())
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(nodes, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringSlice("highlight", nil, "Class names to highlight")
}
