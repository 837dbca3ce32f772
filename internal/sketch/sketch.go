// Package sketch provides a small p5-style namespace and its reference
// documentation. The CLI demo and the reference servers run against it.
package sketch

import (
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/friendly/pkg/docs"
	"github.com/aretw0/friendly/pkg/host"
)

// Namespace is the name of the sample namespace and of its root class.
const Namespace = "p5"

//go:embed docs.yaml
var docsYAML []byte

// Docs parses the embedded reference documentation.
func Docs() (*docs.Registry, error) {
	return docs.ParseYAML(docsYAML)
}

// DocsSource returns the raw embedded documentation.
func DocsSource() []byte {
	out := make([]byte, len(docsYAML))
	copy(out, docsYAML)
	return out
}

const opsField = "_ops"

// Ops returns the drawing operations recorded on obj.
func Ops(obj *host.Object) []string {
	v, _ := obj.Get(opsField)
	ops, _ := v.([]string)
	return ops
}

func record(this any, name string, args []any) {
	obj, ok := this.(*host.Object)
	if !ok {
		return
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	obj.Set(opsField, append(Ops(obj), name+"("+strings.Join(parts, ", ")+")"))
}

func num(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func numArg(args []any, i int, def float64) float64 {
	if i < len(args) {
		return num(args[i])
	}
	return def
}

func field(obj *host.Object, name string) float64 {
	v, _ := obj.Get(name)
	return num(v)
}

func self(this any) (*host.Object, error) {
	obj, ok := this.(*host.Object)
	if !ok {
		return nil, fmt.Errorf("receiver is %T, not an instance", this)
	}
	return obj, nil
}

// New builds the sample namespace:
//
//	p5                 root class (drawing API)
//	Element            DOM element
//	  MediaElement     audio/video element
//	  Renderer         drawing surface
//	    Renderer2D     undocumented 2D renderer
//	  Graphics         offscreen buffer
//	Vector, Color      value classes
//
// Renderer2D is deliberately absent from the documentation, so it is only
// reachable by chain repair.
func New() *host.Namespace {
	ns := host.NewNamespace(Namespace)

	element := ns.Define("Element", nil)
	media := ns.Define("MediaElement", element)
	renderer := ns.Define("Renderer", element)
	r2d := ns.Define("Renderer2D", renderer)
	graphics := ns.Define("Graphics", element)
	vector := ns.Define("Vector", nil)
	color := ns.Define("Color", nil)

	defineElement(element)
	defineMedia(media)
	defineRenderer(renderer, r2d)
	defineGraphics(graphics)
	defineVector(vector)
	defineColor(color)
	defineRoot(ns.Root(), r2d, vector, color)

	return ns
}

func defineRoot(root, r2d, vector, color *host.Class) {
	root.Constructor(func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		obj.Set("width", 100.0)
		obj.Set("height", 100.0)
		obj.Set("frameCount", 0)
		return nil, nil
	})

	p := root.Prototype()
	p.Method("createCanvas", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		canvas, err := r2d.New(args...)
		if err != nil {
			return nil, err
		}
		obj.Set("width", numArg(args, 0, 100))
		obj.Set("height", numArg(args, 1, 100))
		obj.Set("_renderer", canvas)
		return canvas, nil
	})
	for _, name := range []string{"background", "fill", "ellipse", "image"} {
		p.Method(name, func(this any, args []any) (any, error) {
			record(this, name, args)
			return nil, nil
		})
	}
	p.Method("color", func(this any, args []any) (any, error) {
		return color.New(args...)
	})
	p.Method("createVector", func(this any, args []any) (any, error) {
		return vector.New(args...)
	})
	p.Method("_setProperty", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, fmt.Errorf("_setProperty takes a name and a value")
		}
		name, _ := args[0].(string)
		obj.Set(name, args[1])
		return nil, nil
	})
}

func initElement(this any, _ []any) (any, error) {
	obj, err := self(this)
	if err != nil {
		return nil, err
	}
	obj.Set("x", 0.0)
	obj.Set("y", 0.0)
	obj.Set("hidden", false)
	return nil, nil
}

func defineElement(element *host.Class) {
	element.Constructor(initElement)

	p := element.Prototype()
	p.Method("position", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return []float64{field(obj, "x"), field(obj, "y")}, nil
		}
		obj.Set("x", numArg(args, 0, 0))
		obj.Set("y", numArg(args, 1, 0))
		return obj, nil
	})
	p.Method("hide", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		obj.Set("hidden", true)
		return obj, nil
	})
	p.Method("parent", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		obj.Set("_parent", args[0])
		return obj, nil
	})
}

func defineMedia(media *host.Class) {
	media.Constructor(func(this any, args []any) (any, error) {
		if _, err := initElement(this, args); err != nil {
			return nil, err
		}
		obj := this.(*host.Object)
		obj.Set("_volume", 1.0)
		obj.Set("playing", false)
		return nil, nil
	})

	p := media.Prototype()
	p.Method("volume", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		v := numArg(args, 0, 1)
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("volume %v out of range [0, 1]", v)
		}
		obj.Set("_volume", v)
		return obj, nil
	})
	p.Method("play", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		obj.Set("playing", true)
		return obj, nil
	})
}

func defineRenderer(renderer, r2d *host.Class) {
	initRenderer := func(this any, args []any) (any, error) {
		if _, err := initElement(this, args); err != nil {
			return nil, err
		}
		obj := this.(*host.Object)
		obj.Set("width", numArg(args, 0, 100))
		obj.Set("height", numArg(args, 1, 100))
		return nil, nil
	}
	renderer.Constructor(initRenderer)
	r2d.Constructor(initRenderer)

	renderer.Prototype().Method("resize", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		obj.Set("width", numArg(args, 0, 0))
		obj.Set("height", numArg(args, 1, 0))
		return nil, nil
	})
	r2d.Prototype().Method("rect", func(this any, args []any) (any, error) {
		record(this, "rect", args)
		return nil, nil
	})
}

func defineGraphics(graphics *host.Class) {
	graphics.Constructor(initElement)
	graphics.Prototype().Method("reset", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		obj.Set(opsField, []string(nil))
		return nil, nil
	})
}

func defineVector(vector *host.Class) {
	vector.Constructor(func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		obj.Set("x", numArg(args, 0, 0))
		obj.Set("y", numArg(args, 1, 0))
		obj.Set("z", numArg(args, 2, 0))
		return nil, nil
	})

	p := vector.Prototype()
	p.Method("add", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		var dx, dy, dz float64
		switch v := firstArg(args).(type) {
		case *host.Object:
			dx, dy, dz = field(v, "x"), field(v, "y"), field(v, "z")
		case []any:
			dx, dy, dz = numArg(v, 0, 0), numArg(v, 1, 0), numArg(v, 2, 0)
		default:
			dx, dy, dz = numArg(args, 0, 0), numArg(args, 1, 0), numArg(args, 2, 0)
		}
		obj.Set("x", field(obj, "x")+dx)
		obj.Set("y", field(obj, "y")+dy)
		obj.Set("z", field(obj, "z")+dz)
		return obj, nil
	})
	p.Method("mult", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		n := numArg(args, 0, 1)
		for _, axis := range []string{"x", "y", "z"} {
			obj.Set(axis, field(obj, axis)*n)
		}
		return obj, nil
	})
	p.Method("mag", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		x, y, z := field(obj, "x"), field(obj, "y"), field(obj, "z")
		return math.Sqrt(x*x + y*y + z*z), nil
	})
}

func defineColor(color *host.Class) {
	color.Constructor(func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		levels := []float64{0, 0, 0, 255}
		switch len(args) {
		case 1, 2:
			g := numArg(args, 0, 0)
			levels = []float64{g, g, g, numArg(args, 1, 255)}
		case 3, 4:
			levels = []float64{num(args[0]), num(args[1]), num(args[2]), numArg(args, 3, 255)}
		}
		obj.Set("levels", levels)
		return nil, nil
	})
	color.Prototype().Method("toString", func(this any, args []any) (any, error) {
		obj, err := self(this)
		if err != nil {
			return nil, err
		}
		v, _ := obj.Get("levels")
		l, _ := v.([]float64)
		if len(l) != 4 {
			return "rgba(0,0,0,1)", nil
		}
		return fmt.Sprintf("rgba(%g,%g,%g,%g)", l[0], l[1], l[2], l[3]/255), nil
	})
}

func firstArg(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}
