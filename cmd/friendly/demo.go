package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/friendly"
	"github.com/aretw0/friendly/internal/presentation/tui"
	"github.com/aretw0/friendly/internal/sketch"
	"github.com/aretw0/friendly/pkg/check"
	"github.com/aretw0/friendly/pkg/host"
	"github.com/aretw0/friendly/pkg/intercept"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a short sketch against the bundled namespace",
	Long:  `Proxies the bundled sample namespace and makes a few valid and invalid calls, printing what the argument checker says about each.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := settings(cmd)
		if err != nil {
			return err
		}
		classes, err := sketch.Docs()
		if err != nil {
			return err
		}

		ns := sketch.New()
		eng, err := friendly.New(ns, classes, engineOptions(cfg, logger, nil)...)
		if err != nil {
			return err
		}
		if err := eng.Run(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			tui.PrintBanner(out)
		}
		return runDemo(out, eng)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolP("quiet", "q", false, "Skip the banner")
}

type demoCall struct {
	name string
	args []any
}

func runDemo(w io.Writer, eng *friendly.Engine) error {
	report := eng.Report()
	tui.PrintStep(w, tui.OutcomeInfo, "proxied %d classes, repaired %v, skipped %v",
		len(report.Proxied), report.Repaired, report.Skipped)

	ns := eng.Namespace()
	s, err := ns.Root().New()
	if err != nil {
		return err
	}

	calls := []demoCall{
		{"createCanvas", []any{400, 400}},
		{"background", []any{220}},
		{"fill", []any{"red"}},
		{"ellipse", []any{200, 200, 80}},
		{"ellipse", []any{200, "200", 80}},
		{"createVector", []any{3, 4}},
	}
	for _, c := range calls {
		invoke(w, s, c)
	}

	canvas, _ := s.Get("_renderer")
	if renderer, ok := ns.Class("Renderer"); ok {
		tui.PrintStep(w, tui.OutcomeInfo, "canvas is a p5.Renderer: %v", host.InstanceOf(canvas, renderer))
	}

	if v, ok := ns.Root().Behavior().Get("ellipse"); ok {
		if m, ok := v.(*intercept.Method); ok {
			fmt.Fprintf(w, "\n%s\n", m.Help())
		}
	}
	return nil
}

func invoke(w io.Writer, obj *host.Object, c demoCall) {
	call := fmt.Sprintf("%s(%s)", c.name, formatArgs(c.args))
	_, err := obj.Invoke(c.name, c.args...)

	var argErr *check.ArgumentError
	switch {
	case err == nil:
		tui.PrintStep(w, tui.OutcomeOK, "%s", call)
	case errors.As(err, &argErr):
		tui.PrintStep(w, tui.OutcomeBlocked, "%s: %v", call, err)
	default:
		tui.PrintStep(w, tui.OutcomeFailed, "%s: %v", call, err)
	}
}

func formatArgs(args []any) string {
	s := ""
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		if str, ok := a.(string); ok {
			s += fmt.Sprintf("%q", str)
			continue
		}
		s += fmt.Sprint(a)
	}
	return s
}
