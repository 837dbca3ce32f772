package intercept

import (
	"fmt"
	"io"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/friendly/pkg/host"
)

// ChainRepair points the parent link of unproxied subclasses at their
// parent's proxy.
//
// Only the immediate parent is inspected, and repairs are planned against the
// registry as it stood when Run started. A class whose parent is itself only
// repaired in the same pass stays unrepaired.
type ChainRepair struct {
	registry *Registry
	logger   *slog.Logger
	metrics  *Metrics
}

// NewChainRepair creates a repair pass over reg. logger and m may be nil.
func NewChainRepair(reg *Registry, logger *slog.Logger, m *Metrics) *ChainRepair {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ChainRepair{registry: reg, logger: logger, metrics: m}
}

type repairPlan struct {
	key      string
	class    *host.Class
	override *chainOverride
}

// Run installs overrides for every class in ns that needs one and returns
// the repaired member names.
func (cr *ChainRepair) Run(ns *host.Namespace) ([]string, error) {
	known := cr.registry.snapshot()
	proxies := make(map[host.Behavior]struct{}, len(known))
	for _, p := range known {
		proxies[p] = struct{}{}
	}

	var plans []repairPlan
	planned := make(map[host.Behavior]struct{})
	for _, key := range ns.Keys() {
		if !classKey(key) {
			continue
		}
		class, ok := ns.Class(key)
		if !ok {
			continue
		}
		b := class.Behavior()
		if b == nil {
			continue
		}
		if _, ok := proxies[b]; ok {
			continue
		}
		if _, ok := known[b]; ok {
			continue
		}
		if _, ok := planned[b]; ok {
			continue
		}
		if _, ok := known[b.Parent()]; !ok {
			continue
		}
		planned[b] = struct{}{}
		plans = append(plans, repairPlan{
			key:      key,
			class:    class,
			override: &chainOverride{name: key, target: b, registry: cr.registry},
		})
	}

	repaired := make([]string, 0, len(plans))
	for _, plan := range plans {
		if err := cr.registry.Register(plan.override.target, plan.override); err != nil {
			return repaired, fmt.Errorf("repair %s: %w", plan.key, err)
		}
		plan.class.SetBehavior(plan.override)
		cr.metrics.proxy("chain")
		cr.logger.Info("repaired prototype chain", "class", plan.key)
		repaired = append(repaired, plan.key)
	}
	return repaired, nil
}

func classKey(key string) bool {
	r, _ := utf8.DecodeRuneInString(key)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// chainOverride changes only the parent link of a behavior object.
// Member reads pass through and are never wrapped.
type chainOverride struct {
	name     string
	target   host.Behavior
	registry *Registry
}

var _ host.Behavior = (*chainOverride)(nil)

func (o *chainOverride) Name() string { return o.name }

func (o *chainOverride) Get(name string) (any, bool) { return o.target.Get(name) }

func (o *chainOverride) Parent() host.Behavior {
	return resolveParent(o.registry, o.target.Parent())
}
