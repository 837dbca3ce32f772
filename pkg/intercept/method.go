package intercept

import (
	"time"

	"github.com/aretw0/friendly/pkg/docs"
	"github.com/aretw0/friendly/pkg/host"
)

// Validator checks the arguments of a call before the wrapped function runs.
// A non-nil error blocks the call and is returned to the caller as is.
type Validator interface {
	Validate(fn host.Callable, this any, args []any, item docs.ClassItem) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(fn host.Callable, this any, args []any, item docs.ClassItem) error

func (f ValidatorFunc) Validate(fn host.Callable, this any, args []any, item docs.ClassItem) error {
	return f(fn, this, args, item)
}

// MethodInterceptor wraps callables into validated, help-carrying methods.
type MethodInterceptor struct {
	validator Validator
	reference docs.Reference
	metrics   *Metrics
}

// MethodOption configures a MethodInterceptor.
type MethodOption func(*MethodInterceptor)

// WithReference sets the reference used to build help URLs.
func WithReference(ref docs.Reference) MethodOption {
	return func(mi *MethodInterceptor) {
		mi.reference = ref
	}
}

// WithMethodMetrics sets the collectors updated on every call.
func WithMethodMetrics(m *Metrics) MethodOption {
	return func(mi *MethodInterceptor) {
		mi.metrics = m
	}
}

// NewMethodInterceptor creates an interceptor. A nil validator accepts every call.
func NewMethodInterceptor(v Validator, opts ...MethodOption) *MethodInterceptor {
	if v == nil {
		v = ValidatorFunc(func(host.Callable, any, []any, docs.ClassItem) error { return nil })
	}
	mi := &MethodInterceptor{validator: v}
	for _, opt := range opts {
		opt(mi)
	}
	return mi
}

// Wrap returns a Method that validates arguments before delegating to fn.
// If fn already carries a help descriptor it is shared, not replaced.
func (mi *MethodInterceptor) Wrap(fn host.Callable, item docs.ClassItem) *Method {
	m := &Method{ic: mi, fn: fn, item: item}

	ref := mi.reference
	d := host.NewHelpDescriptor(func() string { return ref.Help(item) })
	if carrier, ok := fn.(host.HelpCarrier); ok && !carrier.AttachHelp(d) {
		if existing := carrier.HelpDescriptor(); existing != nil {
			d = existing
		}
	}
	m.help = d
	return m
}

// Method is a documented callable whose calls are validated first.
type Method struct {
	ic   *MethodInterceptor
	fn   host.Callable
	item docs.ClassItem
	help *host.HelpDescriptor
}

var (
	_ host.Callable    = (*Method)(nil)
	_ host.HelpCarrier = (*Method)(nil)
)

func (m *Method) Name() string { return m.fn.Name() }

// Call validates args and, on success, calls the wrapped function with this.
func (m *Method) Call(this any, args []any) (any, error) {
	start := time.Now()
	err := m.ic.validator.Validate(m.fn, this, args, m.item)
	m.ic.metrics.validated(m.item.Class, start)
	if err != nil {
		m.ic.metrics.call(m.item.Class, m.item.Name, "invalid")
		return nil, err
	}

	out, err := m.fn.Call(this, args)
	if err != nil {
		m.ic.metrics.call(m.item.Class, m.item.Name, "error")
		return out, err
	}
	m.ic.metrics.call(m.item.Class, m.item.Name, "ok")
	return out, nil
}

// Bind rebinds the wrapped function and wraps the result again, so the
// bound method keeps validating.
func (m *Method) Bind(this any) host.Callable {
	return m.ic.Wrap(m.fn.Bind(this), m.item)
}

// Help returns the help text, formatting it on first use.
func (m *Method) Help() string { return m.help.Text() }

// AttachHelp never replaces the descriptor a Method was built with.
func (m *Method) AttachHelp(*host.HelpDescriptor) bool { return false }

func (m *Method) HelpDescriptor() *host.HelpDescriptor { return m.help }

// Item returns the metadata record the method validates against.
func (m *Method) Item() docs.ClassItem { return m.item }

// Unwrap returns the function being intercepted.
func (m *Method) Unwrap() host.Callable { return m.fn }
