package h5type

import (
	"fmt"
	"strconv"

	"github.com/x448/float16"
)

// Check reports whether v has the Go representation a generator produces for
// d: the same class, arity, field order and variant set, and text values
// within the declared capacity. Failures wrap [ErrMismatch] and name the
// path of the offending component.
//
// Integers map to int8..int64 / uint8..uint64, f16 to [float16.Float16],
// complex to [Complex], enums to [EnumValue], arrays to []any, var-len arrays
// to VarLenArray[any], tuples to [Tuple] and records to [Record].
func Check(d Descriptor, v any) error {
	return check(d, v, "$")
}

func mismatch(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMismatch, path, fmt.Sprintf(format, args...))
}

func check(d Descriptor, v any, path string) error {
	switch d.Class {
	case ClassInteger:
		return checkInteger(d, v, path)
	case ClassFloat:
		return checkFloat(d, v, path)
	case ClassBool:
		if _, ok := v.(bool); !ok {
			return mismatch(path, "want bool, got %T", v)
		}
	case ClassComplex:
		ok := false
		if d.Size == 8 {
			_, ok = v.(Complex[float32])
		} else {
			_, ok = v.(Complex[float64])
		}

		if !ok {
			return mismatch(path, "want c%d, got %T", d.Size*8, v)
		}
	case ClassEnum:
		return checkEnum(d, v, path)
	case ClassFixedASCII:
		s, ok := v.(FixedASCII)
		if !ok {
			return mismatch(path, "want FixedASCII, got %T", v)
		}

		return checkCapacity(path, s.Capacity(), s.Len(), d.Capacity)
	case ClassFixedASCIITerm:
		s, ok := v.(FixedASCIITerm)
		if !ok {
			return mismatch(path, "want FixedASCIITerm, got %T", v)
		}

		return checkCapacity(path, s.Capacity(), s.Len(), d.Capacity)
	case ClassFixedUnicode:
		s, ok := v.(FixedUnicode)
		if !ok {
			return mismatch(path, "want FixedUnicode, got %T", v)
		}

		return checkCapacity(path, s.Capacity(), s.Len(), d.Capacity)
	case ClassVarLenASCII:
		if _, ok := v.(VarLenASCII); !ok {
			return mismatch(path, "want VarLenASCII, got %T", v)
		}
	case ClassVarLenUnicode:
		if _, ok := v.(VarLenUnicode); !ok {
			return mismatch(path, "want VarLenUnicode, got %T", v)
		}
	case ClassArray:
		elems, ok := v.([]any)
		if !ok {
			return mismatch(path, "want []any, got %T", v)
		}

		if len(elems) != d.Len {
			return mismatch(path, "array length %d, want %d", len(elems), d.Len)
		}

		return checkElems(*d.Elem, elems, path)
	case ClassVarLenArray:
		elems, ok := v.(VarLenArray[any])
		if !ok {
			return mismatch(path, "want VarLenArray[any], got %T", v)
		}

		return checkElems(*d.Elem, elems, path)
	case ClassTuple:
		return checkTuple(d, v, path)
	case ClassRecord:
		return checkRecord(d, v, path)
	default:
		return mismatch(path, "unknown class %s", d.Class)
	}

	return nil
}

func checkInteger(d Descriptor, v any, path string) error {
	var size int

	var signed bool

	switch v.(type) {
	case int8:
		size, signed = 1, true
	case int16:
		size, signed = 2, true
	case int32:
		size, signed = 4, true
	case int64:
		size, signed = 8, true
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	default:
		return mismatch(path, "want %s, got %T", intName(d.Size, d.Signed), v)
	}

	if size != d.Size || signed != d.Signed {
		return mismatch(path, "want %s, got %T", intName(d.Size, d.Signed), v)
	}

	return nil
}

func checkFloat(d Descriptor, v any, path string) error {
	ok := false

	switch d.Size {
	case 2:
		_, ok = v.(float16.Float16)
	case 4:
		_, ok = v.(float32)
	case 8:
		_, ok = v.(float64)
	}

	if !ok {
		return mismatch(path, "want f%d, got %T", d.Size*8, v)
	}

	return nil
}

func checkEnum(d Descriptor, v any, path string) error {
	e, ok := v.(EnumValue)
	if !ok {
		return mismatch(path, "want EnumValue, got %T", v)
	}

	for _, variant := range d.Variants {
		if variant.Name == e.Name && variant.Value == e.Value {
			return nil
		}
	}

	return mismatch(path, "undeclared variant %s = %d", e.Name, e.Value)
}

func checkCapacity(path string, capacity, length, want int) error {
	if capacity != want {
		return mismatch(path, "capacity %d, want %d", capacity, want)
	}

	if length > want {
		return mismatch(path, "length %d exceeds capacity %d", length, want)
	}

	return nil
}

func checkElems(elem Descriptor, elems []any, path string) error {
	for i, e := range elems {
		err := check(elem, e, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return err
		}
	}

	return nil
}

func checkTuple(d Descriptor, v any, path string) error {
	t, ok := v.(Tuple)
	if !ok {
		return mismatch(path, "want Tuple, got %T", v)
	}

	if len(t) != len(d.Fields) {
		return mismatch(path, "tuple arity %d, want %d", len(t), len(d.Fields))
	}

	for i, f := range d.Fields {
		err := check(f.Type, t[i], path+"."+f.Name)
		if err != nil {
			return err
		}
	}

	return nil
}

func checkRecord(d Descriptor, v any, path string) error {
	r, ok := v.(Record)
	if !ok {
		return mismatch(path, "want Record, got %T", v)
	}

	if len(r) != len(d.Fields) {
		return mismatch(path, "record has %d fields, want %d", len(r), len(d.Fields))
	}

	for i, f := range d.Fields {
		if r[i].Name != f.Name {
			return mismatch(path, "field %d is %q, want %q", i, r[i].Name, f.Name)
		}

		err := check(f.Type, r[i].Value, path+"."+f.Name)
		if err != nil {
			return err
		}
	}

	return nil
}
