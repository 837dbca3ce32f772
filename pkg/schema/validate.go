package schema

// Field is one positional parameter of a Signature.
type Field struct {
	Name     string
	Type     Type // nil accepts any value
	Optional bool
	// Variadic lets the last field absorb every remaining argument.
	// Unless Optional is also set it needs at least one.
	Variadic bool
}

// Signature is an ordered list of fields matched against call arguments.
type Signature []Field

// Validate checks if args conform to the signature.
// Returns an *AggregateError with all validation failures found.
func Validate(sig Signature, args []any) error {
	var errs []error

	variadic := len(sig) > 0 && sig[len(sig)-1].Variadic
	if !variadic && len(args) > len(sig) {
		errs = append(errs, &ArityError{Max: len(sig), Got: len(args)})
	}

	for i, field := range sig {
		if i >= len(args) {
			if !field.Optional {
				errs = append(errs, &ValidationError{
					Key:    field.Name,
					Reason: "required",
					Value:  nil,
				})
			}
			continue
		}

		if field.Variadic {
			for j := i; j < len(args); j++ {
				if err := validateField(field, args[j]); err != nil {
					errs = append(errs, err)
				}
			}
			break
		}

		if err := validateField(field, args[i]); err != nil {
			errs = append(errs, err)
		}
	}

	// If there are errors, aggregate them
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}

func validateField(field Field, value any) error {
	if field.Type == nil {
		return nil
	}
	if err := field.Type.Validate(value); err != nil {
		return &ValidationError{
			Key:    field.Name,
			Reason: err.Error(),
			Value:  value,
		}
	}
	return nil
}
