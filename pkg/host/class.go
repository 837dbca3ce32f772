package host

import (
	"fmt"
	"sync"
)

// maxChainDepth bounds chain walks so a cyclic chain cannot hang InstanceOf.
const maxChainDepth = 256

// Class is a constructor with a replaceable behavior slot.
type Class struct {
	name  string
	proto *Prototype
	init  Impl

	mu       sync.RWMutex
	behavior Behavior
}

// NewClass creates a class whose behavior slot initially holds proto.
func NewClass(name string, proto *Prototype) *Class {
	if proto == nil {
		proto = NewPrototype(name, nil)
	}
	return &Class{name: name, proto: proto, behavior: proto}
}

// Extend creates a subclass of parent. The new prototype is chained to the
// behavior parent holds right now.
func Extend(name string, parent *Class) *Class {
	var base Behavior
	if parent != nil {
		base = parent.Behavior()
	}
	return NewClass(name, NewPrototype(name, base))
}

func (c *Class) Name() string { return c.name }

// Prototype returns the prototype the class was declared with.
// It does not change when the behavior slot is replaced.
func (c *Class) Prototype() *Prototype { return c.proto }

// Behavior returns the current behavior object.
func (c *Class) Behavior() Behavior {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.behavior
}

// SetBehavior replaces the behavior object used by future instances.
func (c *Class) SetBehavior(b Behavior) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.behavior = b
}

// Constructor sets the body run by New on every fresh instance.
func (c *Class) Constructor(impl Impl) *Class {
	c.init = impl
	return c
}

// New creates an instance delegating to the current behavior object.
func (c *Class) New(args ...any) (*Object, error) {
	obj := NewObject(c.Behavior())
	if c.init != nil {
		if _, err := c.init(obj, args); err != nil {
			return nil, fmt.Errorf("construct %s: %w", c.name, err)
		}
	}
	return obj, nil
}

// Object is an instance of a class.
type Object struct {
	proto Behavior

	mu     sync.RWMutex
	fields map[string]any
}

// NewObject creates an instance delegating to proto.
func NewObject(proto Behavior) *Object {
	return &Object{proto: proto, fields: make(map[string]any)}
}

// Proto returns the behavior object the instance was created with.
func (o *Object) Proto() Behavior { return o.proto }

// Set assigns an own field.
func (o *Object) Set(name string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fields[name] = value
}

// Get reads an own field, falling back to the behavior object.
func (o *Object) Get(name string) (any, bool) {
	o.mu.RLock()
	v, ok := o.fields[name]
	o.mu.RUnlock()
	if ok {
		return v, true
	}
	if o.proto == nil {
		return nil, false
	}
	return o.proto.Get(name)
}

// Invoke reads a member and calls it with the object as receiver.
func (o *Object) Invoke(name string, args ...any) (any, error) {
	v, ok := o.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMember, name)
	}
	fn, ok := v.(Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrNotCallable, name, v)
	}
	return fn.Call(o, args)
}

// InstanceOf reports whether class's current behavior object appears on v's
// observable chain. Only *Object values can be instances.
func InstanceOf(v any, class *Class) bool {
	obj, ok := v.(*Object)
	if !ok || obj == nil || class == nil {
		return false
	}
	target := class.Behavior()
	if target == nil {
		return false
	}
	link := obj.proto
	for depth := 0; link != nil && depth < maxChainDepth; depth++ {
		if link == target {
			return true
		}
		link = link.Parent()
	}
	return false
}
