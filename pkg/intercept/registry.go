package intercept

import (
	"fmt"
	"sync"

	"github.com/aretw0/friendly/pkg/host"
)

// Registry is the 1:1 map between original behavior objects and their proxies.
type Registry struct {
	mu         sync.RWMutex
	byOriginal map[host.Behavior]host.Behavior
	byProxy    map[host.Behavior]host.Behavior
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byOriginal: make(map[host.Behavior]host.Behavior),
		byProxy:    make(map[host.Behavior]host.Behavior),
	}
}

// Register records proxy as the proxy of original.
// Returns ErrConstructionConflict if either side is already registered.
func (r *Registry) Register(original, proxy host.Behavior) error {
	if original == nil || proxy == nil {
		return ErrNilBehavior
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOriginal[original]; ok {
		return fmt.Errorf("%w: %s", ErrConstructionConflict, behaviorName(original))
	}
	if _, ok := r.byProxy[proxy]; ok {
		return fmt.Errorf("%w: proxy for %s reused", ErrConstructionConflict, behaviorName(original))
	}
	r.byOriginal[original] = proxy
	r.byProxy[proxy] = original
	return nil
}

// HasProxyFor reports whether original has a registered proxy.
func (r *Registry) HasProxyFor(original host.Behavior) bool {
	_, ok := r.ProxyFor(original)
	return ok
}

// ProxyFor returns the proxy registered for original.
func (r *Registry) ProxyFor(original host.Behavior) (host.Behavior, bool) {
	if original == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byOriginal[original]
	return p, ok
}

// OriginalFor returns the behavior object proxy stands in for.
func (r *Registry) OriginalFor(proxy host.Behavior) (host.Behavior, bool) {
	if proxy == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byProxy[proxy]
	return o, ok
}

// IsProxy reports whether b was registered as a proxy.
func (r *Registry) IsProxy(b host.Behavior) bool {
	_, ok := r.OriginalFor(b)
	return ok
}

// Len returns the number of registered pairs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byOriginal)
}

// snapshot copies the original→proxy map.
func (r *Registry) snapshot() map[host.Behavior]host.Behavior {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[host.Behavior]host.Behavior, len(r.byOriginal))
	for k, v := range r.byOriginal {
		out[k] = v
	}
	return out
}

func behaviorName(b host.Behavior) string {
	if n, ok := b.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", b)
}
