package gen

import (
	"fmt"

	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

type builder func(d h5type.Descriptor) (Generator[any], error)

// builders maps each descriptor class to the generator it uses. Assigned in
// init because composite builders recurse through ForType.
var builders map[h5type.Class]builder

func init() {
	builders = map[h5type.Class]builder{
		h5type.ClassInteger:        integerFor,
		h5type.ClassFloat:          floatFor,
		h5type.ClassBool:           leaf(Bool()),
		h5type.ClassComplex:        complexFor,
		h5type.ClassEnum:           enumFor,
		h5type.ClassFixedASCII:     fixedASCIIFor,
		h5type.ClassFixedASCIITerm: fixedASCIITermFor,
		h5type.ClassFixedUnicode:   fixedUnicodeFor,
		h5type.ClassVarLenASCII:    leaf(VarLenASCII()),
		h5type.ClassVarLenUnicode:  leaf(VarLenUnicode()),
		h5type.ClassArray:          arrayFor,
		h5type.ClassVarLenArray:    varLenArrayFor,
		h5type.ClassTuple:          tupleFor,
		h5type.ClassRecord:         recordFor,
	}
}

// ForType returns a generator for values described by d.
//
// The values have the Go types [h5type.Check] expects: sized integers,
// float16.Float16 / float32 / float64, [h5type.Complex], [h5type.EnumValue],
// the h5type text types, []any for arrays, h5type.VarLenArray[any],
// [h5type.Tuple] and [h5type.Record]. Randomness is consumed in the same
// order as the equivalent typed generators.
//
// Returns an error wrapping [h5type.ErrInvalidDescriptor] if d is invalid.
func ForType(d h5type.Descriptor) (Generator[any], error) {
	err := d.Validate()
	if err != nil {
		return nil, err
	}

	return forType(d)
}

func forType(d h5type.Descriptor) (Generator[any], error) {
	build, ok := builders[d.Class]
	if !ok {
		return nil, fmt.Errorf("%w: class %s", ErrUnsupportedType, d.Class)
	}

	return build(d)
}

func leaf[T any](g Generator[T]) builder {
	return func(h5type.Descriptor) (Generator[any], error) {
		return Erase(g), nil
	}
}

func integerFor(d h5type.Descriptor) (Generator[any], error) {
	switch {
	case d.Size == 1 && d.Signed:
		return Erase(Int8()), nil
	case d.Size == 2 && d.Signed:
		return Erase(Int16()), nil
	case d.Size == 4 && d.Signed:
		return Erase(Int32()), nil
	case d.Size == 8 && d.Signed:
		return Erase(Int64()), nil
	case d.Size == 1:
		return Erase(Uint8()), nil
	case d.Size == 2:
		return Erase(Uint16()), nil
	case d.Size == 4:
		return Erase(Uint32()), nil
	case d.Size == 8:
		return Erase(Uint64()), nil
	}

	return nil, fmt.Errorf("%w: integer of %d bytes", ErrUnsupportedType, d.Size)
}

func floatFor(d h5type.Descriptor) (Generator[any], error) {
	switch d.Size {
	case 2:
		return Erase(Float16()), nil
	case 4:
		return Erase(Float32()), nil
	case 8:
		return Erase(Float64()), nil
	}

	return nil, fmt.Errorf("%w: float of %d bytes", ErrUnsupportedType, d.Size)
}

func complexFor(d h5type.Descriptor) (Generator[any], error) {
	switch d.Size {
	case 8:
		return Erase(Complex[float32]()), nil
	case 16:
		return Erase(Complex[float64]()), nil
	}

	return nil, fmt.Errorf("%w: complex of %d bytes", ErrUnsupportedType, d.Size)
}

func enumFor(d h5type.Descriptor) (Generator[any], error) {
	return Erase(Enum(d.Variants...)), nil
}

func fixedASCIIFor(d h5type.Descriptor) (Generator[any], error) {
	return Erase(FixedASCII(d.Capacity)), nil
}

func fixedASCIITermFor(d h5type.Descriptor) (Generator[any], error) {
	return Erase(FixedASCIITerm(d.Capacity)), nil
}

func fixedUnicodeFor(d h5type.Descriptor) (Generator[any], error) {
	return Erase(FixedUnicode(d.Capacity)), nil
}

func arrayFor(d h5type.Descriptor) (Generator[any], error) {
	elem, err := forType(*d.Elem)
	if err != nil {
		return nil, err
	}

	return Erase(Array(elem, d.Len)), nil
}

func varLenArrayFor(d h5type.Descriptor) (Generator[any], error) {
	elem, err := forType(*d.Elem)
	if err != nil {
		return nil, err
	}

	return Erase(VarLenArray(elem)), nil
}

func tupleFor(d h5type.Descriptor) (Generator[any], error) {
	elems := make([]Generator[any], len(d.Fields))

	for i, f := range d.Fields {
		g, err := forType(f.Type)
		if err != nil {
			return nil, err
		}

		elems[i] = g
	}

	return Erase(Tuple(elems...)), nil
}

func recordFor(d h5type.Descriptor) (Generator[any], error) {
	fields := make([]FieldGen, len(d.Fields))

	for i, f := range d.Fields {
		g, err := forType(f.Type)
		if err != nil {
			return nil, err
		}

		fields[i] = Field(f.Name, g).Rename(f.Rename)
	}

	return Erase(Record(fields...)), nil
}
