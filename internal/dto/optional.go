package dto

import (
	"encoding/json"
	"reflect"
)

// Optional is one field of a partial update. Set records that the key was
// present in the body; a present key with a JSON null leaves Value nil.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present, non-null field.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a field that was sent as JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only called for keys
// present in the document, null included.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// IsNull reports whether the field was sent as an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

func (o Optional[T]) validationValue() interface{} {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}

// ValidationValue unwraps an Optional for validator.RegisterCustomTypeFunc so
// tags apply to the carried value. Absent and null fields validate as empty.
func ValidationValue(field reflect.Value) interface{} {
	if o, ok := field.Interface().(interface{ validationValue() interface{} }); ok {
		return o.validationValue()
	}
	return nil
}

// OptionalTypes lists the Optional instantiations that carry validate tags.
var OptionalTypes = []interface{}{
	Optional[string]{},
	Optional[float64]{},
	Optional[int]{},
}

type required struct {
	name string
	null bool
}

// nullNames returns, in order, the required fields that were sent as null.
func nullNames(fields ...required) []string {
	var names []string
	for _, f := range fields {
		if f.null {
			names = append(names, f.name)
		}
	}
	return names
}
