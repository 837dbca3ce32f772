package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the friendly banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Same gradient for every line width (Indigo/Violet)
	lines := []struct {
		text  string
		color string
	}{
		{"   __      _                _ _       ", "#818cf8"},
		{"  / _|_ __(_) ___ _ __   __| | |_   _ ", "#a78bfa"},
		{" | |_| '__| |/ _ \\ '_ \\ / _` | | | | |", "#c084fc"},
		{" |  _| |  | |  __/ | | | (_| | | |_| |", "#e879f9"},
		{" |_| |_|  |_|\\___|_| |_|\\__,_|_|\\__, |", "#f472b6"},
		{"                                |___/ ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Outcome labels a demo step.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeBlocked
	OutcomeFailed
	OutcomeInfo
)

// PrintStep writes one demo line prefixed with a colored outcome label.
func PrintStep(w io.Writer, outcome Outcome, format string, args ...any) {
	p := termenv.ColorProfile()

	label, color := "info", "#94a3b8"
	switch outcome {
	case OutcomeOK:
		label, color = " ok ", "#4ade80"
	case OutcomeBlocked:
		label, color = "stop", "#facc15"
	case OutcomeFailed:
		label, color = "fail", "#f87171"
	}

	tag := termenv.String("[" + label + "]").Foreground(p.Color(color)).Bold()
	fmt.Fprintf(w, "%s %s\n", tag, fmt.Sprintf(format, args...))
}
