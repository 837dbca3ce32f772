package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Type defines the contract for argument validation.
// Implementations determine how values are validated against a documented type.
type Type interface {
	// Name returns the type as written in documentation (e.g., "Number", "p5.Vector").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// Resolver maps a type name the grammar does not know (usually a class name)
// to a Type. It returns false when the name is unknown.
type Resolver func(name string) (Type, bool)

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "String" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected String, got %T", value)
	}
	return nil
}

// NumberType validates any numeric value.
type NumberType struct{}

func (t *NumberType) Name() string { return "Number" }

func (t *NumberType) Validate(value any) error {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	default:
		return fmt.Errorf("expected Number, got %T", value)
	}
}

// IntegerType validates whole numbers.
type IntegerType struct{}

func (t *IntegerType) Name() string { return "Integer" }

func (t *IntegerType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return nil
	case float32:
		if v == float32(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected Integer, got float (not a whole number)")
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected Integer, got float (not a whole number)")
	default:
		return fmt.Errorf("expected Integer, got %T", value)
	}
}

// BooleanType validates boolean values.
type BooleanType struct{}

func (t *BooleanType) Name() string { return "Boolean" }

func (t *BooleanType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected Boolean, got %T", value)
	}
	return nil
}

// callable matches host functions without importing the host package.
type callable interface {
	Call(this any, args []any) (any, error)
}

// FunctionType validates Go funcs and host callables.
type FunctionType struct{}

func (t *FunctionType) Name() string { return "Function" }

func (t *FunctionType) Validate(value any) error {
	if _, ok := value.(callable); ok {
		return nil
	}
	if value != nil && reflect.TypeOf(value).Kind() == reflect.Func {
		return nil
	}
	return fmt.Errorf("expected Function, got %T", value)
}

// ObjectType accepts any non-nil value.
type ObjectType struct{}

func (t *ObjectType) Name() string { return "Object" }

func (t *ObjectType) Validate(value any) error {
	if value == nil {
		return fmt.Errorf("expected Object, got nil")
	}
	return nil
}

// AnyType accepts everything, including nil.
type AnyType struct{}

func (t *AnyType) Name() string { return "Any" }

func (t *AnyType) Validate(any) error { return nil }

// ArrayType validates slices of a specific element type.
type ArrayType struct {
	elemType Type
}

func (t *ArrayType) Name() string {
	if _, ok := t.elemType.(*AnyType); ok {
		return "Array"
	}
	return t.elemType.Name() + "[]"
}

func (t *ArrayType) Validate(value any) error {
	if value == nil {
		return fmt.Errorf("expected %s, got nil", t.Name())
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected %s, got %T", t.Name(), value)
	}

	// Validate each element
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if err := t.elemType.Validate(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// UnionType accepts a value matching any of its members.
type UnionType struct {
	types []Type
}

func (t *UnionType) Name() string {
	names := make([]string, len(t.types))
	for i, typ := range t.types {
		names[i] = typ.Name()
	}
	return strings.Join(names, "|")
}

func (t *UnionType) Validate(value any) error {
	for _, typ := range t.types {
		if typ.Validate(value) == nil {
			return nil
		}
	}
	return fmt.Errorf("expected %s, got %T", t.Name(), value)
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Number creates a numeric type validator.
func Number() Type { return &NumberType{} }

// Integer creates a whole-number type validator.
func Integer() Type { return &IntegerType{} }

// Boolean creates a boolean type validator.
func Boolean() Type { return &BooleanType{} }

// Function creates a function type validator.
func Function() Type { return &FunctionType{} }

// Object creates a loose object type validator.
func Object() Type { return &ObjectType{} }

// Any creates a validator that accepts everything.
func Any() Type { return &AnyType{} }

// Array creates an array type validator for elements of the given type.
func Array(elemType Type) Type {
	return &ArrayType{elemType: elemType}
}

// Union creates a validator accepting any of the given types.
func Union(types ...Type) Type {
	return &UnionType{types: types}
}

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}

// ParseType converts a documented type string to a Type.
// Supports the built-in names, "T[]" arrays and "A|B" unions.
// Names the grammar does not know are handed to resolve, which may be nil.
func ParseType(typeStr string, resolve Resolver) (Type, error) {
	typeStr = strings.TrimSpace(typeStr)
	if typeStr == "" {
		return nil, fmt.Errorf("empty type")
	}

	// Handle unions: Number|String
	if strings.Contains(typeStr, "|") {
		parts := strings.Split(typeStr, "|")
		types := make([]Type, 0, len(parts))
		for _, part := range parts {
			typ, err := ParseType(part, resolve)
			if err != nil {
				return nil, err
			}
			types = append(types, typ)
		}
		return Union(types...), nil
	}

	// Handle array types: Number[], p5.Vector[]
	if strings.HasSuffix(typeStr, "[]") {
		elemType, err := ParseType(strings.TrimSuffix(typeStr, "[]"), resolve)
		if err != nil {
			return nil, err
		}
		return Array(elemType), nil
	}

	// Handle built-in types
	switch strings.ToLower(typeStr) {
	case "string", "constant":
		return String(), nil
	case "number":
		return Number(), nil
	case "integer":
		return Integer(), nil
	case "boolean", "bool":
		return Boolean(), nil
	case "function":
		return Function(), nil
	case "object":
		return Object(), nil
	case "array":
		return Array(Any()), nil
	case "*", "any", "mixed":
		return Any(), nil
	}

	if resolve != nil {
		if typ, ok := resolve(typeStr); ok {
			return typ, nil
		}
	}
	return nil, fmt.Errorf("unsupported type: %s", typeStr)
}
