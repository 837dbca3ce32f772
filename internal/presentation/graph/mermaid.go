package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/friendly/pkg/host"
	"github.com/aretw0/friendly/pkg/intercept"
)

// ClassKind describes what the proxying pass did to a class.
type ClassKind string

const (
	KindRoot     ClassKind = "root"
	KindProxied  ClassKind = "proxied"
	KindRepaired ClassKind = "repaired"
	KindPlain    ClassKind = "plain"
)

// ClassNode is one class of a namespace with its declared parent.
type ClassNode struct {
	Name   string
	Parent string
	Kind   ClassKind
	// Linked reports whether the observable parent link reaches the parent
	// class's current behavior, i.e. whether InstanceOf holds through it.
	Linked bool
}

// GraphOverlay marks classes to highlight.
type GraphOverlay struct {
	Highlight []string
}

// Nodes lists the classes of ns, the root first and the rest in key order.
func Nodes(ns *host.Namespace, reg *intercept.Registry) []ClassNode {
	type entry struct {
		name  string
		class *host.Class
	}
	entries := []entry{{ns.Name(), ns.Root()}}
	byProto := map[host.Behavior]*host.Class{ns.Root().Prototype(): ns.Root()}
	names := map[*host.Class]string{ns.Root(): ns.Name()}

	for _, key := range ns.Keys() {
		class, ok := ns.Class(key)
		if !ok {
			continue
		}
		if _, dup := names[class]; dup {
			continue
		}
		entries = append(entries, entry{key, class})
		byProto[class.Prototype()] = class
		names[class] = key
	}

	nodes := make([]ClassNode, 0, len(entries))
	for _, e := range entries {
		node := ClassNode{Name: e.name, Kind: kindOf(e.class, reg)}
		if e.class == ns.Root() {
			node.Kind = KindRoot
		}
		if parent, ok := byProto[e.class.Prototype().Parent()]; ok {
			node.Parent = names[parent]
			node.Linked = e.class.Behavior().Parent() == parent.Behavior()
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func kindOf(class *host.Class, reg *intercept.Registry) ClassKind {
	b := class.Behavior()
	if _, ok := b.(*intercept.PrototypeProxy); ok {
		return KindProxied
	}
	if reg != nil && reg.IsProxy(b) {
		return KindRepaired
	}
	return KindPlain
}

// GenerateMermaid produces a Mermaid flowchart of the class hierarchy.
// It applies semantic styling:
// - Root: ((Circle))
// - Proxied: [[Subroutine]]
// - Repaired: [/Parallelogram/]
// - Default: [Rectangle]
// Edges point from subclass to parent; a dotted "raw" edge means type
// checks do not reach the parent's current behavior.
func GenerateMermaid(nodes []ClassNode, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph BT\n")

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.Name)

		opener, closer := "[", "]"
		switch node.Kind {
		case KindRoot:
			opener, closer = "((", "))"
		case KindProxied:
			opener, closer = "[[", "]]"
		case KindRepaired:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, node.Name, closer))

		if node.Parent == "" {
			continue
		}
		arrow := "-->"
		if !node.Linked {
			arrow = "-. raw .->"
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, sanitizeMermaidID(node.Parent)))
	}

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.Highlight {
			safeID := sanitizeMermaidID(name)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s highlight;\n", safeID))
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
