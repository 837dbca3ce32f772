package docs

// Registry is the documentation database: class names and member records.
// It is read-only once built.
type Registry struct {
	classNames []string
	classes    map[string]struct{}
	items      []ClassItem
}

// NewRegistry builds a registry. Class names keep their order; repeated
// names are stored once.
func NewRegistry(classNames []string, items []ClassItem) *Registry {
	r := &Registry{
		classes: make(map[string]struct{}, len(classNames)),
		items:   make([]ClassItem, len(items)),
	}
	for _, name := range classNames {
		if _, seen := r.classes[name]; seen {
			continue
		}
		r.classes[name] = struct{}{}
		r.classNames = append(r.classNames, name)
	}
	copy(r.items, items)
	return r
}

// ClassNames returns the documented class names in declaration order.
func (r *Registry) ClassNames() []string {
	out := make([]string, len(r.classNames))
	copy(out, r.classNames)
	return out
}

// HasClass reports whether name is a documented class.
func (r *Registry) HasClass(name string) bool {
	_, ok := r.classes[name]
	return ok
}

// ClassItems returns every member record in document order.
func (r *Registry) ClassItems() []ClassItem {
	out := make([]ClassItem, len(r.items))
	copy(out, r.items)
	return out
}

// Members returns the named records documented for class, in document order.
func (r *Registry) Members(class string) []ClassItem {
	var out []ClassItem
	for _, item := range r.items {
		if item.Class == class && item.Name != "" {
			out = append(out, item)
		}
	}
	return out
}

// Lookup returns the record for class.name. When several records share the
// pair, the last one wins.
func (r *Registry) Lookup(class, name string) (ClassItem, bool) {
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].Class == class && r.items[i].Name == name {
			return r.items[i], true
		}
	}
	return ClassItem{}, false
}
