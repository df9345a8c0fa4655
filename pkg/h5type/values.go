package h5type

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Complex is a complex number over a generic real component.
type Complex[T constraints.Float] struct {
	Re T `json:"re"`
	Im T `json:"im"`
}

// Complex128 widens c to the builtin complex type.
func (c Complex[T]) Complex128() complex128 {
	return complex(float64(c.Re), float64(c.Im))
}

// VarLenArray is an owned, length-prefixed sequence of elements.
type VarLenArray[T any] []T

// VarLenArrayFrom copies elems into a new VarLenArray.
func VarLenArrayFrom[T any](elems []T) VarLenArray[T] {
	return VarLenArray[T](slices.Clone(elems))
}

// Len returns the number of elements.
func (a VarLenArray[T]) Len() int { return len(a) }

// EnumValue is one declared variant of a dynamically described enum.
type EnumValue struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Tuple is a dynamically typed tuple. Components keep declaration order.
type Tuple []any

// RecordField is one field of a dynamically typed record. Name is the
// in-generator identity, never the external (renamed) name.
type RecordField struct {
	Name  string
	Value any
}

// Record is a dynamically typed record with fields in declaration order.
type Record []RecordField

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}
