// Package check validates call arguments against documented signatures.
package check

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/friendly/pkg/docs"
	"github.com/aretw0/friendly/pkg/host"
	"github.com/aretw0/friendly/pkg/schema"
)

// Checker is the default argument validator. Class-typed parameters are
// resolved against a namespace at call time, so chain repairs made after the
// Checker is created are honored.
type Checker struct {
	ns     *host.Namespace
	logger *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used for unresolvable type names.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Checker bound to ns. A nil ns resolves no class names.
func New(ns *host.Namespace, opts ...Option) *Checker {
	c := &Checker{
		ns:     ns,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks args against every signature documented for item.
// A call passes when any signature accepts it. Items without a documented
// signature always pass.
func (c *Checker) Validate(_ host.Callable, _ any, args []any, item docs.ClassItem) error {
	sigs := item.Signatures()
	if len(sigs) == 0 {
		return nil
	}

	var best []error
	for _, params := range sigs {
		err := schema.Validate(c.signature(item, params), args)
		if err == nil {
			return nil
		}
		errs := schema.ValidationErrors(err)
		if errs == nil {
			errs = []error{err}
		}
		if best == nil || len(errs) < len(best) {
			best = errs
		}
	}

	return &ArgumentError{Class: item.Class, Method: item.Name, Errors: best}
}

func (c *Checker) signature(item docs.ClassItem, params []docs.Param) schema.Signature {
	sig := make(schema.Signature, 0, len(params))
	for _, p := range params {
		field := schema.Field{
			Name:     p.Name,
			Optional: p.Optional,
			Variadic: p.Multiple,
		}
		if p.Type != "" {
			typ, err := schema.ParseType(p.Type, c.resolve)
			if err != nil {
				c.logger.Debug("unchecked parameter type",
					"class", item.Class,
					"member", item.Name,
					"param", p.Name,
					"err", err)
			} else {
				field.Type = typ
			}
		}
		sig = append(sig, field)
	}
	return sig
}

// resolve maps "p5", "p5.Vector" and bare "Vector" to class instance checks.
func (c *Checker) resolve(name string) (schema.Type, bool) {
	class, ok := c.lookup(name)
	if !ok {
		return nil, false
	}
	return schema.Custom(name, func(v any) error {
		if host.InstanceOf(v, class) {
			return nil
		}
		return fmt.Errorf("expected %s, got %T", name, v)
	}), true
}

func (c *Checker) lookup(name string) (*host.Class, bool) {
	if c.ns == nil {
		return nil, false
	}
	if name == c.ns.Name() {
		return c.ns.Root(), true
	}
	if rest, ok := strings.CutPrefix(name, c.ns.Name()+"."); ok {
		return c.ns.Class(rest)
	}
	return c.ns.Class(name)
}
