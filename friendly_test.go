package friendly_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/friendly"
	"github.com/aretw0/friendly/internal/testutils"
	"github.com/aretw0/friendly/pkg/check"
	"github.com/aretw0/friendly/pkg/docs"
	"github.com/aretw0/friendly/pkg/host"
	"github.com/aretw0/friendly/pkg/intercept"
)

var errBlocked = errors.New("blocked")

type call struct {
	fn   host.Callable
	this any
	args []any
	item docs.ClassItem
}

func TestRun_ValidatesBeforeOriginal(t *testing.T) {
	ns := host.NewNamespace("p5")
	foo := ns.Define("Foo", nil)

	var order []string
	bar := foo.Prototype().Method("bar", func(this any, args []any) (any, error) {
		order = append(order, "bar")
		return "done", nil
	})

	var calls []call
	block := false
	validator := intercept.ValidatorFunc(func(fn host.Callable, this any, args []any, item docs.ClassItem) error {
		order = append(order, "validate")
		calls = append(calls, call{fn, this, args, item})
		if block {
			return errBlocked
		}
		return nil
	})

	classes := docs.NewRegistry([]string{"p5.Foo"}, []docs.ClassItem{
		{Class: "p5.Foo", Name: "bar", Description: "d"},
	})
	eng, err := friendly.New(ns, classes, friendly.WithValidator(validator))
	require.NoError(t, err)
	require.NoError(t, eng.Run())

	obj, err := foo.New()
	require.NoError(t, err)

	out, err := obj.Invoke("bar", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "done", out)
	assert.Equal(t, []string{"validate", "bar"}, order)

	require.Len(t, calls, 1)
	assert.Same(t, bar, calls[0].fn)
	assert.Same(t, obj, calls[0].this)
	assert.Equal(t, []any{1, 2}, calls[0].args)
	assert.Equal(t, "d", calls[0].item.Description)

	block = true
	order = nil
	_, err = obj.Invoke("bar", 1, 2)
	assert.Same(t, errBlocked, err)
	assert.Equal(t, []string{"validate"}, order)
}

func TestRun_DuplicateDefinition(t *testing.T) {
	ns := host.NewNamespace("p5")
	foo := ns.Define("Foo", nil)
	foo.Prototype().Method("bar", nil)

	logger, buf := testutils.CaptureLogger(t)
	classes := docs.NewRegistry([]string{"p5.Foo"}, []docs.ClassItem{
		{Class: "p5.Foo", Name: "bar", Description: "first"},
		{Class: "p5.Foo", Name: "bar", Description: "second"},
	})

	eng, err := friendly.New(ns, classes, friendly.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, eng.Run())

	assert.Equal(t, 1, strings.Count(buf.String(), "duplicate definition"))

	proxy, ok := foo.Behavior().(*intercept.PrototypeProxy)
	require.True(t, ok)
	item, ok := proxy.Member("bar")
	require.True(t, ok)
	assert.Equal(t, "second", item.Description)
}

func TestRun_SkipsUnloadedClass(t *testing.T) {
	ns := host.NewNamespace("p5")
	ns.Set("Blah", "not a class")
	classes := docs.NewRegistry([]string{"p5", "p5.Blah", "p5.Missing"}, nil)

	eng, err := friendly.New(ns, classes)
	require.NoError(t, err)
	require.NoError(t, eng.Run())

	assert.Equal(t, 1, eng.Registry().Len(), "only the root class is proxied")
	report := eng.Report()
	assert.Equal(t, []string{"p5"}, report.Proxied)
	assert.Equal(t, []string{"p5.Blah", "p5.Missing"}, report.Skipped)
	assert.Empty(t, report.Unrecognized)
}

func TestRun_UnrecognizedClass(t *testing.T) {
	ns := host.NewNamespace("p5")
	logger, buf := testutils.CaptureLogger(t)
	reg := prometheus.NewRegistry()

	classes := docs.NewRegistry([]string{"p5", "Other", "p5.sound.Thing"}, nil)
	eng, err := friendly.New(ns, classes, friendly.WithLogger(logger), friendly.WithMetrics(reg))
	require.NoError(t, err)
	require.NoError(t, eng.Run())

	assert.Equal(t, 2, strings.Count(buf.String(), "unrecognized class"))
	assert.Equal(t, []string{"Other", "p5.sound.Thing"}, eng.Report().Unrecognized)
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "friendly_diagnostics_total"))
}

func TestRun_InstanceOfThroughProxies(t *testing.T) {
	ns := host.NewNamespace("p5")
	element := ns.Define("Element", nil)
	media := ns.Define("MediaElement", element)

	classes := docs.NewRegistry([]string{"p5.MediaElement", "p5.Element"}, nil)
	eng, err := friendly.New(ns, classes)
	require.NoError(t, err)
	require.NoError(t, eng.Run())

	obj, err := media.New()
	require.NoError(t, err)
	assert.True(t, host.InstanceOf(obj, media))
	assert.True(t, host.InstanceOf(obj, element))
	assert.True(t, eng.Registry().IsProxy(media.Behavior()))
	assert.True(t, eng.Registry().IsProxy(element.Behavior()))
}

func TestRun_ChainRepair(t *testing.T) {
	ns := host.NewNamespace("p5")
	renderer := ns.Define("Renderer", nil)
	r2d := ns.Define("Renderer2D", renderer)
	r2d.Prototype().Method("rect", nil)

	classes := docs.NewRegistry([]string{"p5", "p5.Renderer"}, []docs.ClassItem{
		{Class: "p5", Name: "attach", Params: []docs.Param{{Name: "renderer", Type: "p5.Renderer"}}},
	})
	ns.Root().Prototype().Method("attach", nil)

	eng, err := friendly.New(ns, classes)
	require.NoError(t, err)
	require.NoError(t, eng.Run())
	assert.Equal(t, []string{"Renderer2D"}, eng.Report().Repaired)

	r, err := r2d.New()
	require.NoError(t, err)
	assert.True(t, host.InstanceOf(r, renderer))

	sketch, err := ns.Root().New()
	require.NoError(t, err)
	_, err = sketch.Invoke("attach", r)
	assert.NoError(t, err, "a repaired subclass satisfies a parent-typed parameter")

	_, err = sketch.Invoke("attach", "canvas")
	assert.ErrorIs(t, err, check.ErrArgumentViolation)
}

func TestRun_TwoLevelChainStaysUnrepaired(t *testing.T) {
	ns := host.NewNamespace("p5")
	element := ns.Define("Element", nil)
	media := ns.Define("MediaElement", element)
	audio := ns.Define("AudioIn", media)

	classes := docs.NewRegistry([]string{"p5.Element"}, nil)
	eng, err := friendly.New(ns, classes)
	require.NoError(t, err)
	require.NoError(t, eng.Run())

	assert.Equal(t, []string{"MediaElement"}, eng.Report().Repaired)

	m, err := media.New()
	require.NoError(t, err)
	assert.True(t, host.InstanceOf(m, element))

	a, err := audio.New()
	require.NoError(t, err)
	assert.False(t, host.InstanceOf(a, element))
}

func TestRun_Twice(t *testing.T) {
	ns := host.NewNamespace("p5")
	eng, err := friendly.New(ns, docs.NewRegistry([]string{"p5"}, nil))
	require.NoError(t, err)
	require.NoError(t, eng.Run())
	assert.ErrorIs(t, eng.Run(), friendly.ErrAlreadyProxied)
}

func TestRun_ConstructionConflict(t *testing.T) {
	ns := host.NewNamespace("p5")
	ns.Set("Root", ns.Root())

	classes := docs.NewRegistry([]string{"p5", "p5.Root"}, nil)
	eng, err := friendly.New(ns, classes)
	require.NoError(t, err)

	err = eng.Run()
	assert.ErrorIs(t, err, intercept.ErrConstructionConflict)
	assert.Contains(t, err.Error(), "p5.Root")
}

func TestRun_HelpText(t *testing.T) {
	ns := host.NewNamespace("p5")
	ns.Root().Prototype().Method("ellipse", nil)
	classes := docs.NewRegistry([]string{"p5"}, []docs.ClassItem{
		{Class: "p5", Name: "ellipse", Description: "Draws an ellipse."},
	})

	eng, err := friendly.New(ns, classes, friendly.WithReferenceBaseURL("https://p5js.org/reference/#/"))
	require.NoError(t, err)
	require.NoError(t, eng.Run())

	v, ok := ns.Root().Behavior().Get("ellipse")
	require.True(t, ok)
	m, ok := v.(*intercept.Method)
	require.True(t, ok)
	assert.False(t, m.HelpDescriptor().Resolved())
	assert.Equal(t,
		"ellipse()\n\nDraws an ellipse.\n\nFor more information, see: https://p5js.org/reference/#/p5/ellipse",
		m.Help())
}

func TestNew_MissingInput(t *testing.T) {
	_, err := friendly.New(nil, docs.NewRegistry(nil, nil))
	assert.ErrorIs(t, err, friendly.ErrMissingInput)
	_, err = friendly.New(host.NewNamespace("p5"), nil)
	assert.ErrorIs(t, err, friendly.ErrMissingInput)
}
