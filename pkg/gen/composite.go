package gen

import (
	"fmt"

	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

// Tuple generates each component in order. It panics unless
// 1 <= len(elems) <= [h5type.MaxTupleArity].
func Tuple(elems ...Generator[any]) Generator[h5type.Tuple] {
	if len(elems) < 1 || len(elems) > h5type.MaxTupleArity {
		panic(fmt.Sprintf("gen: Tuple: arity %d outside [1, %d]", len(elems), h5type.MaxTupleArity))
	}

	return Func[h5type.Tuple](func(src Source) h5type.Tuple {
		out := make(h5type.Tuple, len(elems))
		for i, g := range elems {
			out[i] = g.Generate(src)
		}

		return out
	})
}

// Array generates n elements in order. It panics if n is negative.
func Array[T any](elem Generator[T], n int) Generator[[]T] {
	if n < 0 {
		panic(fmt.Sprintf("gen: Array: negative length %d", n))
	}

	return Func[[]T](func(src Source) []T {
		return Vec(src, elem, n)
	})
}

// VarLenArray draws a length in [0, 8] and generates that many elements.
func VarLenArray[T any](elem Generator[T]) Generator[h5type.VarLenArray[T]] {
	return Func[h5type.VarLenArray[T]](func(src Source) h5type.VarLenArray[T] {
		n := IntRangeInclusive(src, 0, maxVarLen)

		return h5type.VarLenArray[T](Vec(src, elem, n))
	})
}

// OneOf picks uniformly among candidates. It panics if there are none.
func OneOf[T any](candidates ...T) Generator[T] {
	if len(candidates) == 0 {
		panic("gen: OneOf: no candidates")
	}

	return Func[T](func(src Source) T {
		return ChooseOne(src, candidates)
	})
}

// Enum picks uniformly among the declared variants. It never produces a
// discriminant outside the declared set.
func Enum(variants ...h5type.Variant) Generator[h5type.EnumValue] {
	values := make([]h5type.EnumValue, len(variants))
	for i, v := range variants {
		values[i] = h5type.EnumValue{Name: v.Name, Value: v.Value}
	}

	return OneOf(values...)
}

// FieldGen is one field of a [Record] generator.
type FieldGen struct {
	name   string
	rename string
	gen    Generator[any]
}

// Field declares a record field generated by g.
func Field[T any](name string, g Generator[T]) FieldGen {
	return FieldGen{name: name, gen: Erase(g)}
}

// Rename sets the external name of the field. Values and draw order are
// unaffected.
func (f FieldGen) Rename(external string) FieldGen {
	f.rename = external

	return f
}

// Name returns the in-generator field name.
func (f FieldGen) Name() string { return f.name }

// ExternalName returns the rename if set, otherwise the field name.
func (f FieldGen) ExternalName() string {
	if f.rename != "" {
		return f.rename
	}

	return f.name
}

// Record generates each field in declaration order. It panics if there are
// no fields, two fields share a name, or two fields share an external name.
func Record(fields ...FieldGen) Generator[h5type.Record] {
	if len(fields) == 0 {
		panic("gen: Record: no fields")
	}

	names := make(map[string]bool, len(fields))
	external := make(map[string]bool, len(fields))

	for _, f := range fields {
		if names[f.name] {
			panic(fmt.Sprintf("gen: Record: duplicate field %q", f.name))
		}

		if external[f.ExternalName()] {
			panic(fmt.Sprintf("gen: Record: duplicate external name %q", f.ExternalName()))
		}

		names[f.name] = true
		external[f.ExternalName()] = true
	}

	return Func[h5type.Record](func(src Source) h5type.Record {
		out := make(h5type.Record, len(fields))
		for i, f := range fields {
			out[i] = h5type.RecordField{Name: f.name, Value: f.gen.Generate(src)}
		}

		return out
	})
}
