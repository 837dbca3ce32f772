package host

import (
	"sync"
	"sync/atomic"
)

// HelpDescriptor is a lazily computed, read-only help string.
// The compute function runs at most once, on the first call to Text.
type HelpDescriptor struct {
	compute  func() string
	once     sync.Once
	text     string
	resolved atomic.Bool
}

// NewHelpDescriptor creates an unresolved descriptor.
func NewHelpDescriptor(compute func() string) *HelpDescriptor {
	return &HelpDescriptor{compute: compute}
}

// Text returns the help string, computing it on first use.
func (d *HelpDescriptor) Text() string {
	d.once.Do(func() {
		if d.compute != nil {
			d.text = d.compute()
		}
		d.resolved.Store(true)
	})
	return d.text
}

// Resolved reports whether Text has been called at least once.
func (d *HelpDescriptor) Resolved() bool {
	return d.resolved.Load()
}
