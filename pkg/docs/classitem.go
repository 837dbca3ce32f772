package docs

// Param describes one documented parameter.
type Param struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Optional    bool   `json:"optional,omitempty" yaml:"optional,omitempty" mapstructure:"optional"`
	// Multiple marks a trailing parameter that accepts any number of arguments.
	Multiple bool `json:"multiple,omitempty" yaml:"multiple,omitempty" mapstructure:"multiple"`
}

// Return describes a documented return value.
type Return struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// Overload is one alternative signature of a member.
type Overload struct {
	Params []Param `json:"params,omitempty" yaml:"params,omitempty" mapstructure:"params"`
	Return *Return `json:"return,omitempty" yaml:"return,omitempty" mapstructure:"return"`
	Line   int     `json:"line,omitempty" yaml:"line,omitempty" mapstructure:"line"`
}

// ClassItem is a member-metadata record.
type ClassItem struct {
	Class       string     `json:"class" yaml:"class" mapstructure:"class"`
	Name        string     `json:"name" yaml:"name" mapstructure:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	ItemType    string     `json:"itemtype,omitempty" yaml:"itemtype,omitempty" mapstructure:"itemtype"`
	Params      []Param    `json:"params,omitempty" yaml:"params,omitempty" mapstructure:"params"`
	Overloads   []Overload `json:"overloads,omitempty" yaml:"overloads,omitempty" mapstructure:"overloads"`
	Return      *Return    `json:"return,omitempty" yaml:"return,omitempty" mapstructure:"return"`
	Static      bool       `json:"static,omitempty" yaml:"static,omitempty" mapstructure:"static"`
	Module      string     `json:"module,omitempty" yaml:"module,omitempty" mapstructure:"module"`
	Submodule   string     `json:"submodule,omitempty" yaml:"submodule,omitempty" mapstructure:"submodule"`
	File        string     `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
	Line        int        `json:"line,omitempty" yaml:"line,omitempty" mapstructure:"line"`

	// Extra holds validator-specific fields the model does not name.
	Extra map[string]any `json:"-" yaml:"-" mapstructure:",remain"`
}

// Signatures returns the parameter lists a call may match.
// Overloads take precedence over the top-level params.
// It returns nil when the record documents no signature at all.
func (c ClassItem) Signatures() [][]Param {
	if len(c.Overloads) > 0 {
		out := make([][]Param, 0, len(c.Overloads))
		for _, o := range c.Overloads {
			out = append(out, o.Params)
		}
		return out
	}
	if c.Params == nil {
		return nil
	}
	return [][]Param{c.Params}
}

// QualifiedName returns "class.name".
func (c ClassItem) QualifiedName() string {
	return c.Class + "." + c.Name
}
