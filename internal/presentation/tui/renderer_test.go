package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/friendly/pkg/docs"
)

func TestReferenceMarkdown(t *testing.T) {
	item := docs.ClassItem{
		Class:       "p5",
		Name:        "ellipse",
		Description: "Draws an ellipse.",
		Params: []docs.Param{
			{Name: "x", Type: "Number", Description: "x-coordinate"},
			{Name: "h", Type: "Number", Optional: true},
		},
		Return: &docs.Return{Type: "p5"},
	}

	md := ReferenceMarkdown(item, docs.Reference{})
	assert.True(t, strings.HasPrefix(md, "# p5.ellipse()\n\nDraws an ellipse.\n\n## Syntax\n\n"))
	assert.Contains(t, md, "ellipse(x, [h])")
	assert.Contains(t, md, "- `x` *Number*: x-coordinate\n")
	assert.Contains(t, md, "- `h` *Number, optional*\n")
	assert.Contains(t, md, "**Returns** *p5*")
	assert.Contains(t, md, "For more information, see: http://p5js.org/reference/#/p5/ellipse")
}

func TestReferenceMarkdown_Overloads(t *testing.T) {
	item := docs.ClassItem{
		Class: "p5",
		Name:  "color",
		Overloads: []docs.Overload{
			{Params: []docs.Param{{Name: "gray", Type: "Number"}}},
			{Params: []docs.Param{{Name: "values", Type: "Number", Multiple: true}}},
		},
	}

	md := ReferenceMarkdown(item, docs.Reference{})
	assert.Contains(t, md, "## Syntax 1")
	assert.Contains(t, md, "## Syntax 2")
	assert.Contains(t, md, "color(values...)")
}

func TestPrintStep(t *testing.T) {
	var buf bytes.Buffer
	PrintStep(&buf, OutcomeBlocked, "ellipse(%d)", 1)
	assert.Contains(t, buf.String(), "stop")
	assert.Contains(t, buf.String(), "ellipse(1)")
}
