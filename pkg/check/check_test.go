package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/friendly/pkg/docs"
	"github.com/aretw0/friendly/pkg/host"
	"github.com/aretw0/friendly/pkg/schema"
)

func newNamespace() (*host.Namespace, *host.Class) {
	ns := host.NewNamespace("p5")
	vector := ns.Define("Vector", nil)
	return ns, vector
}

func TestValidate_NoSignature(t *testing.T) {
	c := New(nil)
	err := c.Validate(nil, nil, []any{1, 2, 3}, docs.ClassItem{Class: "p5", Name: "noop"})
	assert.NoError(t, err)
}

func TestValidate_Params(t *testing.T) {
	c := New(nil)
	item := docs.ClassItem{
		Class: "p5",
		Name:  "ellipse",
		Params: []docs.Param{
			{Name: "x", Type: "Number"},
			{Name: "y", Type: "Number"},
			{Name: "w", Type: "Number", Optional: true},
		},
	}

	require.NoError(t, c.Validate(nil, nil, []any{1, 2}, item))
	require.NoError(t, c.Validate(nil, nil, []any{1, 2.5, 3}, item))

	err := c.Validate(nil, nil, []any{1, "two"}, item)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArgumentViolation)

	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "p5", argErr.Class)
	assert.Equal(t, "ellipse", argErr.Method)
	require.Len(t, argErr.Errors, 1)

	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "y", verr.Key)
	assert.Contains(t, err.Error(), "p5.ellipse():")
}

func TestValidate_Overloads(t *testing.T) {
	c := New(nil)
	item := docs.ClassItem{
		Class: "p5",
		Name:  "fill",
		Overloads: []docs.Overload{
			{Params: []docs.Param{{Name: "gray", Type: "Number"}}},
			{Params: []docs.Param{{Name: "value", Type: "String"}}},
			{Params: []docs.Param{
				{Name: "v1", Type: "Number"},
				{Name: "v2", Type: "Number"},
				{Name: "v3", Type: "Number"},
			}},
		},
	}

	assert.NoError(t, c.Validate(nil, nil, []any{128}, item))
	assert.NoError(t, c.Validate(nil, nil, []any{"red"}, item))
	assert.NoError(t, c.Validate(nil, nil, []any{1, 2, 3}, item))

	err := c.Validate(nil, nil, []any{true}, item)
	require.Error(t, err)
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	// Closest overload is a single-parameter one.
	assert.Len(t, argErr.Errors, 1)
}

func TestValidate_ClassTypes(t *testing.T) {
	ns, vector := newNamespace()
	c := New(ns)
	item := docs.ClassItem{
		Class:  "p5.Vector",
		Name:   "add",
		Params: []docs.Param{{Name: "v", Type: "p5.Vector"}},
	}

	v, err := vector.New()
	require.NoError(t, err)

	assert.NoError(t, c.Validate(nil, nil, []any{v}, item))
	assert.ErrorIs(t, c.Validate(nil, nil, []any{42}, item), ErrArgumentViolation)

	rootObj, err := ns.Root().New()
	require.NoError(t, err)
	rootItem := docs.ClassItem{Class: "p5", Name: "use", Params: []docs.Param{{Name: "inst", Type: "p5"}}}
	assert.NoError(t, c.Validate(nil, nil, []any{rootObj}, rootItem))
	assert.Error(t, c.Validate(nil, nil, []any{v}, rootItem))

	listItem := docs.ClassItem{Class: "p5", Name: "sum", Params: []docs.Param{{Name: "vs", Type: "p5.Vector[]"}}}
	assert.NoError(t, c.Validate(nil, nil, []any{[]any{v, v}}, listItem))
	assert.Error(t, c.Validate(nil, nil, []any{[]any{v, 1}}, listItem))
}

func TestValidate_SubclassSatisfiesParentType(t *testing.T) {
	ns := host.NewNamespace("p5")
	element := ns.Define("Element", nil)
	media := ns.Define("MediaElement", element)
	c := New(ns)

	m, err := media.New()
	require.NoError(t, err)

	item := docs.ClassItem{Class: "p5", Name: "attach", Params: []docs.Param{{Name: "el", Type: "p5.Element"}}}
	assert.NoError(t, c.Validate(nil, nil, []any{m}, item))
}

func TestValidate_UnknownTypeIsUnchecked(t *testing.T) {
	c := New(nil)
	item := docs.ClassItem{
		Class:  "p5",
		Name:   "loadModel",
		Params: []docs.Param{{Name: "model", Type: "p5.Geometry"}, {Name: "cb"}},
	}
	assert.NoError(t, c.Validate(nil, nil, []any{"anything", 1}, item))
	assert.ErrorIs(t, c.Validate(nil, nil, []any{"anything"}, item), ErrArgumentViolation)
}

func TestArgumentError_Is(t *testing.T) {
	err := &ArgumentError{Class: "p5", Method: "x", Errors: []error{errors.New("bad")}}
	assert.True(t, errors.Is(err, ErrArgumentViolation))
	assert.Equal(t, "p5.x(): bad", err.Error())
}
