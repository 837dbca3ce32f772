package host

import "sync"

// Impl is the body of a host function. this is the receiver the call was made on.
type Impl func(this any, args []any) (any, error)

// Callable is a function value living in the host object graph.
type Callable interface {
	// Name returns the function name used in diagnostics.
	Name() string
	// Call invokes the function with the given receiver and arguments.
	Call(this any, args []any) (any, error)
	// Bind returns a new Callable whose receiver is fixed to this.
	Bind(this any) Callable
}

// HelpCarrier is implemented by callables that can own a help descriptor.
type HelpCarrier interface {
	// AttachHelp sets d unless a descriptor is already attached.
	// It reports whether d was attached.
	AttachHelp(d *HelpDescriptor) bool
	// HelpDescriptor returns the attached descriptor, or nil.
	HelpDescriptor() *HelpDescriptor
}

// Func is the concrete Callable used by host classes.
type Func struct {
	name string
	impl Impl

	mu   sync.Mutex
	help *HelpDescriptor
}

var (
	_ Callable    = (*Func)(nil)
	_ HelpCarrier = (*Func)(nil)
)

// NewFunc creates a function value. A nil impl returns (nil, nil) when called.
func NewFunc(name string, impl Impl) *Func {
	if impl == nil {
		impl = func(any, []any) (any, error) { return nil, nil }
	}
	return &Func{name: name, impl: impl}
}

func (f *Func) Name() string { return f.name }

func (f *Func) Call(this any, args []any) (any, error) {
	return f.impl(this, args)
}

// Bind returns a fresh Func that ignores the receiver it is called with.
// The bound function does not inherit f's help descriptor.
func (f *Func) Bind(this any) Callable {
	impl := f.impl
	return &Func{
		name: "bound " + f.name,
		impl: func(_ any, args []any) (any, error) {
			return impl(this, args)
		},
	}
}

func (f *Func) AttachHelp(d *HelpDescriptor) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.help != nil || d == nil {
		return false
	}
	f.help = d
	return true
}

func (f *Func) HelpDescriptor() *HelpDescriptor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.help
}
