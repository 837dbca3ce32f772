package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/friendly/pkg/docs"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// ReferenceMarkdown formats a member record as a markdown reference page.
func ReferenceMarkdown(item docs.ClassItem, ref docs.Reference) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s.%s()\n\n", item.Class, item.Name)
	if item.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", item.Description)
	}

	sigs := item.Signatures()
	for i, params := range sigs {
		if len(sigs) > 1 {
			fmt.Fprintf(&sb, "## Syntax %d\n\n", i+1)
		} else {
			sb.WriteString("## Syntax\n\n")
		}
		fmt.Fprintf(&sb, "```\n%s(%s)\n```\n\n", item.Name, paramList(params))
		for _, p := range params {
			fmt.Fprintf(&sb, "- `%s` *%s*", p.Name, typeLabel(p))
			if p.Description != "" {
				fmt.Fprintf(&sb, ": %s", p.Description)
			}
			sb.WriteString("\n")
		}
		if len(params) > 0 {
			sb.WriteString("\n")
		}
	}

	if item.Return != nil && item.Return.Type != "" {
		fmt.Fprintf(&sb, "**Returns** *%s*\n\n", item.Return.Type)
	}
	fmt.Fprintf(&sb, "For more information, see: %s\n", ref.URL(item))
	return sb.String()
}

func paramList(params []docs.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		name := p.Name
		if p.Multiple {
			name += "..."
		}
		if p.Optional {
			name = "[" + name + "]"
		}
		names[i] = name
	}
	return strings.Join(names, ", ")
}

func typeLabel(p docs.Param) string {
	t := p.Type
	if t == "" {
		t = "any"
	}
	if p.Optional {
		t += ", optional"
	}
	return t
}
