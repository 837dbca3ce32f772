// Package schema provides the type grammar used by documented signatures.
//
// It understands the type strings found in reference documentation
// ("Number", "String", "Boolean", "Function", "Object", "Array", "Constant",
// "Integer", "*") plus "T[]" arrays and "A|B" unions. Names outside the
// grammar, typically class names such as "p5.Vector", are handed to a
// Resolver supplied by the caller.
//
// Basic usage:
//
//	resolve := func(name string) (schema.Type, bool) { return nil, false }
//
//	x, _ := schema.ParseType("Number", resolve)
//	mode, _ := schema.ParseType("Constant|Number", resolve)
//
//	sig := schema.Signature{
//	    {Name: "x", Type: x},
//	    {Name: "mode", Type: mode, Optional: true},
//	}
//
//	if err := schema.Validate(sig, []any{10, "center"}); err != nil {
//	    // Handle validation errors
//	}
//
// Custom validators can be registered for domain-specific validation:
//
//	positive := schema.Custom("PositiveNumber", func(v any) error {
//	    f, ok := v.(float64)
//	    if !ok || f <= 0 {
//	        return fmt.Errorf("must be a positive number")
//	    }
//	    return nil
//	})
//
// This package has no dependencies beyond the Go standard library.
package schema
