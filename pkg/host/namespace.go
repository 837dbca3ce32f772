package host

import (
	"sort"
	"sync"
)

// Namespace is the host object tree: a root class plus named members.
type Namespace struct {
	name string
	root *Class

	mu      sync.RWMutex
	members map[string]any
}

// NewNamespace creates a namespace whose root class shares its name.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:    name,
		root:    NewClass(name, nil),
		members: make(map[string]any),
	}
}

func (n *Namespace) Name() string { return n.name }

// Root returns the class the namespace itself stands for.
func (n *Namespace) Root() *Class { return n.root }

// Set stores a member under name.
func (n *Namespace) Set(name string, value any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.members[name] = value
}

// Define creates a class, registers it under name and returns it.
// A nil parent declares a base class.
func (n *Namespace) Define(name string, parent *Class) *Class {
	class := Extend(name, parent)
	n.Set(name, class)
	return class
}

// Lookup returns the member stored under name.
func (n *Namespace) Lookup(name string) (any, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.members[name]
	return v, ok
}

// Class returns the member stored under name when it is a class.
func (n *Namespace) Class(name string) (*Class, bool) {
	v, ok := n.Lookup(name)
	if !ok {
		return nil, false
	}
	class, ok := v.(*Class)
	return class, ok && class != nil
}

// Keys returns the member names in sorted order.
func (n *Namespace) Keys() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	keys := make([]string, 0, len(n.members))
	for k := range n.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
