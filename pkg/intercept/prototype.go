package intercept

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/friendly/pkg/docs"
	"github.com/aretw0/friendly/pkg/host"
)

// DefaultPrivatePrefix marks members that are never wrapped.
const DefaultPrivatePrefix = "_"

// PrototypeInterceptor builds proxies around class behavior objects.
type PrototypeInterceptor struct {
	classes  *docs.Registry
	registry *Registry
	methods  *MethodInterceptor

	logger        *slog.Logger
	metrics       *Metrics
	privatePrefix string
}

// PrototypeOption configures a PrototypeInterceptor.
type PrototypeOption func(*PrototypeInterceptor)

// WithLogger sets the logger used for duplicate definition diagnostics.
func WithLogger(logger *slog.Logger) PrototypeOption {
	return func(pi *PrototypeInterceptor) {
		if logger != nil {
			pi.logger = logger
		}
	}
}

// WithPrivatePrefix overrides DefaultPrivatePrefix.
func WithPrivatePrefix(prefix string) PrototypeOption {
	return func(pi *PrototypeInterceptor) {
		pi.privatePrefix = prefix
	}
}

// WithMetrics sets the collectors updated on proxy construction.
func WithMetrics(m *Metrics) PrototypeOption {
	return func(pi *PrototypeInterceptor) {
		pi.metrics = m
	}
}

// NewPrototypeInterceptor creates an interceptor reading member metadata from classes.
func NewPrototypeInterceptor(classes *docs.Registry, reg *Registry, methods *MethodInterceptor, opts ...PrototypeOption) *PrototypeInterceptor {
	if classes == nil {
		classes = docs.NewRegistry(nil, nil)
	}
	if reg == nil {
		reg = NewRegistry()
	}
	if methods == nil {
		methods = NewMethodInterceptor(nil)
	}
	pi := &PrototypeInterceptor{
		classes:       classes,
		registry:      reg,
		methods:       methods,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		privatePrefix: DefaultPrivatePrefix,
	}
	for _, opt := range opts {
		opt(pi)
	}
	return pi
}

// Create wraps the current behavior object of class and registers the proxy.
// It does not install the proxy in class; callers do that with SetBehavior.
func (pi *PrototypeInterceptor) Create(className string, class *host.Class) (*PrototypeProxy, error) {
	if class == nil || class.Behavior() == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilBehavior, className)
	}
	target := class.Behavior()
	if pi.registry.HasProxyFor(target) || pi.registry.IsProxy(target) {
		return nil, fmt.Errorf("%w: %s", ErrConstructionConflict, className)
	}

	p := &PrototypeProxy{
		className: className,
		target:    target,
		ic:        pi,
		index:     pi.buildIndex(className),
		methods:   make(map[string]*Method),
	}
	if err := pi.registry.Register(target, p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConstructionConflict, className)
	}

	pi.metrics.proxy("class")
	pi.logger.Debug("proxied class", "class", className, "members", len(p.index))
	return p, nil
}

func (pi *PrototypeInterceptor) buildIndex(className string) map[string]docs.ClassItem {
	index := make(map[string]docs.ClassItem)
	for _, item := range pi.classes.Members(className) {
		if prev, ok := index[item.Name]; ok {
			pi.logger.Warn("duplicate definition",
				"class", className,
				"member", item.Name,
				"line", item.Line,
				"previous_line", prev.Line)
			pi.metrics.Diagnostic("duplicate")
		}
		index[item.Name] = item
	}
	return index
}

// PrototypeProxy stands in for a class's behavior object. Documented
// callables are wrapped on first read and the same *Method is returned on
// every later read.
type PrototypeProxy struct {
	className string
	target    host.Behavior
	ic        *PrototypeInterceptor
	index     map[string]docs.ClassItem

	mu      sync.Mutex
	methods map[string]*Method
}

var _ host.Behavior = (*PrototypeProxy)(nil)

// Name returns the class name the proxy was created for.
func (p *PrototypeProxy) Name() string { return p.className }

// ClassName returns the documented class name.
func (p *PrototypeProxy) ClassName() string { return p.className }

// Target returns the original behavior object.
func (p *PrototypeProxy) Target() host.Behavior { return p.target }

// Get reads name from the original behavior object. A documented callable
// is returned wrapped.
func (p *PrototypeProxy) Get(name string) (any, bool) {
	v, ok := p.target.Get(name)
	if !ok {
		return nil, false
	}
	if p.ic.privatePrefix != "" && strings.HasPrefix(name, p.ic.privatePrefix) {
		return v, true
	}
	fn, isFn := v.(host.Callable)
	item, documented := p.index[name]
	if !isFn || !documented {
		return v, true
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.methods[name]; ok {
		return m, true
	}
	m := p.ic.methods.Wrap(fn, item)
	p.methods[name] = m
	p.ic.metrics.wrapped(p.className)
	return m, true
}

// Parent returns the real parent, or its proxy when one is registered.
func (p *PrototypeProxy) Parent() host.Behavior {
	return resolveParent(p.ic.registry, p.target.Parent())
}

// Member returns the metadata record indexed under name.
func (p *PrototypeProxy) Member(name string) (docs.ClassItem, bool) {
	item, ok := p.index[name]
	return item, ok
}

// Members returns the indexed member names in sorted order.
func (p *PrototypeProxy) Members() []string {
	names := make([]string, 0, len(p.index))
	for name := range p.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resolveParent(reg *Registry, parent host.Behavior) host.Behavior {
	if parent == nil {
		return nil
	}
	if proxy, ok := reg.ProxyFor(parent); ok {
		return proxy
	}
	return parent
}
