package docs

import (
	"fmt"
	"regexp"
)

// DiagnosticKind classifies a lint finding.
type DiagnosticKind string

const (
	DiagnosticDuplicate    DiagnosticKind = "duplicate"
	DiagnosticUnnamed      DiagnosticKind = "unnamed"
	DiagnosticUnrecognized DiagnosticKind = "unrecognized"
)

// Diagnostic is a non-fatal problem found in a documentation registry.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Class   string         `json:"class"`
	Member  string         `json:"member,omitempty"`
	Line    int            `json:"line,omitempty"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s", d.Kind, d.Message)
}

// Lint reports the same problems the interception pass would log, without
// touching a host namespace. namespace is the root class name, e.g. "p5".
func Lint(r *Registry, namespace string) []Diagnostic {
	var out []Diagnostic
	classRE := regexp.MustCompile(`^` + regexp.QuoteMeta(namespace) + `\.([^.]+)$`)

	for _, name := range r.ClassNames() {
		if name == namespace || classRE.MatchString(name) {
			continue
		}
		out = append(out, Diagnostic{
			Kind:    DiagnosticUnrecognized,
			Class:   name,
			Message: fmt.Sprintf("Unrecognized class: %s", name),
		})
	}

	seen := make(map[string]bool)
	for _, item := range r.ClassItems() {
		if item.Name == "" {
			out = append(out, Diagnostic{
				Kind:    DiagnosticUnnamed,
				Class:   item.Class,
				Line:    item.Line,
				Message: fmt.Sprintf("Member of %s without a name (%s:%d)", item.Class, item.File, item.Line),
			})
			continue
		}
		if item.Class == "" {
			continue
		}
		key := item.QualifiedName()
		if seen[key] {
			out = append(out, Diagnostic{
				Kind:    DiagnosticDuplicate,
				Class:   item.Class,
				Member:  item.Name,
				Line:    item.Line,
				Message: fmt.Sprintf("Duplicate definition for %s", key),
			})
		}
		seen[key] = true
	}
	return out
}
