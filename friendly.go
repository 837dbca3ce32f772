package friendly

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/friendly/pkg/check"
	"github.com/aretw0/friendly/pkg/docs"
	"github.com/aretw0/friendly/pkg/host"
	"github.com/aretw0/friendly/pkg/intercept"
)

var (
	// ErrAlreadyProxied is returned by a second call to Engine.Run.
	ErrAlreadyProxied = errors.New("namespace already proxied")
	// ErrMissingInput is returned by New when the namespace or docs are nil.
	ErrMissingInput = errors.New("namespace and documentation are required")
)

// Engine runs the one-time proxying pass over a host namespace.
type Engine struct {
	ns       *host.Namespace
	classes  *docs.Registry
	registry *intercept.Registry

	validator     intercept.Validator
	metrics       *intercept.Metrics
	logger        *slog.Logger
	reference     docs.Reference
	privatePrefix string

	mu     sync.Mutex
	ran    bool
	report Report
}

// Report summarizes what a Run did with each documented class name.
type Report struct {
	Proxied      []string `json:"proxied"`
	Skipped      []string `json:"skipped"`
	Unrecognized []string `json:"unrecognized"`
	Repaired     []string `json:"repaired"`
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithValidator replaces the default documentation-driven validator.
func WithValidator(v intercept.Validator) Option {
	return func(e *Engine) {
		e.validator = v
	}
}

// WithMetrics registers the interception collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.metrics = intercept.NewMetrics(reg)
	}
}

// WithReferenceBaseURL sets the base of the links shown in help text.
func WithReferenceBaseURL(url string) Option {
	return func(e *Engine) {
		e.reference = docs.Reference{BaseURL: url}
	}
}

// WithPrivatePrefix sets the member prefix that is never wrapped (default "_").
func WithPrivatePrefix(prefix string) Option {
	return func(e *Engine) {
		e.privatePrefix = prefix
	}
}

// New creates an engine for ns described by classes. Nothing is proxied
// until Run is called.
func New(ns *host.Namespace, classes *docs.Registry, opts ...Option) (*Engine, error) {
	if ns == nil || classes == nil {
		return nil, ErrMissingInput
	}

	eng := &Engine{
		ns:            ns,
		classes:       classes,
		registry:      intercept.NewRegistry(),
		privatePrefix: intercept.DefaultPrivatePrefix,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.validator == nil {
		eng.validator = check.New(ns, check.WithLogger(eng.logger))
	}
	return eng, nil
}

// Run proxies the root class and every documented class present in the
// namespace, then repairs the chains of their unproxied subclasses.
// It may be called only once; later calls return ErrAlreadyProxied.
func (e *Engine) Run() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ran {
		return ErrAlreadyProxied
	}
	e.ran = true

	methods := intercept.NewMethodInterceptor(e.validator,
		intercept.WithReference(e.reference),
		intercept.WithMethodMetrics(e.metrics),
	)
	protos := intercept.NewPrototypeInterceptor(e.classes, e.registry, methods,
		intercept.WithLogger(e.logger),
		intercept.WithPrivatePrefix(e.privatePrefix),
		intercept.WithMetrics(e.metrics),
	)

	name := e.ns.Name()
	classRE := regexp.MustCompile(`^` + regexp.QuoteMeta(name) + `\.([^.]+)$`)

	for _, key := range e.classes.ClassNames() {
		if key == name {
			if err := e.proxy(protos, key, e.ns.Root()); err != nil {
				return err
			}
			continue
		}

		match := classRE.FindStringSubmatch(key)
		if match == nil {
			e.logger.Warn("unrecognized class", "class", key)
			e.metrics.Diagnostic("unrecognized")
			e.report.Unrecognized = append(e.report.Unrecognized, key)
			continue
		}

		class, ok := e.ns.Class(match[1])
		if !ok {
			// Usually documentation for an add-on that is not loaded.
			e.logger.Debug("skipping class not in namespace", "class", key)
			e.report.Skipped = append(e.report.Skipped, key)
			continue
		}
		if err := e.proxy(protos, key, class); err != nil {
			return err
		}
	}

	repaired, err := intercept.NewChainRepair(e.registry, e.logger, e.metrics).Run(e.ns)
	e.report.Repaired = repaired
	if err != nil {
		return err
	}

	e.logger.Info("namespace proxied",
		"namespace", name,
		"proxied", len(e.report.Proxied),
		"repaired", len(repaired),
		"skipped", len(e.report.Skipped),
		"unrecognized", len(e.report.Unrecognized))
	return nil
}

func (e *Engine) proxy(protos *intercept.PrototypeInterceptor, key string, class *host.Class) error {
	p, err := protos.Create(key, class)
	if err != nil {
		return fmt.Errorf("proxy %s: %w", key, err)
	}
	class.SetBehavior(p)
	e.report.Proxied = append(e.report.Proxied, key)
	return nil
}

// Registry exposes the original-to-proxy map built by Run.
func (e *Engine) Registry() *intercept.Registry { return e.registry }

// Namespace returns the namespace the engine rewrites.
func (e *Engine) Namespace() *host.Namespace { return e.ns }

// Docs returns the documentation the engine was built with.
func (e *Engine) Docs() *docs.Registry { return e.classes }

// Reference returns the reference used for help links.
func (e *Engine) Reference() docs.Reference { return e.reference }

// Report returns a copy of the summary of the last Run.
func (e *Engine) Report() Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Report{
		Proxied:      append([]string(nil), e.report.Proxied...),
		Skipped:      append([]string(nil), e.report.Skipped...),
		Unrecognized: append([]string(nil), e.report.Unrecognized...),
		Repaired:     append([]string(nil), e.report.Repaired...),
	}
}
