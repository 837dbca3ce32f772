package host

import "sync"

// Behavior is the shared object holding a class's members.
type Behavior interface {
	// Get reads a member, resolving through the chain when it is not owned.
	Get(name string) (any, bool)
	// Parent returns the next link of the observable chain, or nil at its end.
	Parent() Behavior
}

// Prototype is the plain Behavior a class is declared with.
type Prototype struct {
	name   string
	parent Behavior

	mu      sync.RWMutex
	members map[string]any
	order   []string
}

var _ Behavior = (*Prototype)(nil)

// NewPrototype creates an empty behavior object chained to parent.
func NewPrototype(name string, parent Behavior) *Prototype {
	if p, ok := parent.(*Prototype); ok && p == nil {
		parent = nil
	}
	return &Prototype{
		name:    name,
		parent:  parent,
		members: make(map[string]any),
	}
}

// Name returns the name of the class the prototype was declared for.
func (p *Prototype) Name() string { return p.name }

// Define sets an own member, replacing any previous value.
func (p *Prototype) Define(name string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.members[name]; !exists {
		p.order = append(p.order, name)
	}
	p.members[name] = value
}

// Method defines a function member and returns it.
func (p *Prototype) Method(name string, impl Impl) *Func {
	fn := NewFunc(name, impl)
	p.Define(name, fn)
	return fn
}

// Own reads a member without consulting the parent.
func (p *Prototype) Own(name string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.members[name]
	return v, ok
}

// Keys returns the own member names in definition order.
func (p *Prototype) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

func (p *Prototype) Get(name string) (any, bool) {
	if v, ok := p.Own(name); ok {
		return v, true
	}
	if p.parent == nil {
		return nil, false
	}
	return p.parent.Get(name)
}

func (p *Prototype) Parent() Behavior { return p.parent }
