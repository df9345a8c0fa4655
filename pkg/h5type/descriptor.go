package h5type

import (
	"fmt"
	"strconv"
	"strings"
)

// Class identifies the kind of type a [Descriptor] describes.
type Class uint8

// Type classes.
const (
	ClassInvalid Class = iota
	ClassInteger
	ClassFloat
	ClassBool
	ClassComplex
	ClassEnum
	ClassFixedASCII
	ClassFixedASCIITerm
	ClassFixedUnicode
	ClassVarLenASCII
	ClassVarLenUnicode
	ClassArray
	ClassVarLenArray
	ClassTuple
	ClassRecord
)

var classNames = [...]string{
	ClassInvalid:        "invalid",
	ClassInteger:        "integer",
	ClassFloat:          "float",
	ClassBool:           "bool",
	ClassComplex:        "complex",
	ClassEnum:           "enum",
	ClassFixedASCII:     "fixed-ascii",
	ClassFixedASCIITerm: "fixed-ascii-term",
	ClassFixedUnicode:   "fixed-unicode",
	ClassVarLenASCII:    "varlen-ascii",
	ClassVarLenUnicode:  "varlen-unicode",
	ClassArray:          "array",
	ClassVarLenArray:    "varlen-array",
	ClassTuple:          "tuple",
	ClassRecord:         "record",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}

	return "class(" + strconv.Itoa(int(c)) + ")"
}

// MaxTupleArity is the largest tuple arity the storage engine maps.
const MaxTupleArity = 12

// Descriptor describes how a type maps onto the storage engine.
//
// Which fields are meaningful depends on Class:
//
//   - Integer, Enum: Size (1, 2, 4, 8) and Signed.
//   - Float: Size (2, 4, 8). Complex: Size (8, 16) covering both components.
//   - FixedASCII, FixedASCIITerm, FixedUnicode: Capacity.
//   - Array: Elem and Len. VarLenArray: Elem.
//   - Tuple, Record: Fields. Tuple fields are named "0", "1", ...
//   - Enum: Variants.
type Descriptor struct {
	Class    Class
	Size     int
	Signed   bool
	Capacity int
	Len      int
	Elem     *Descriptor
	Fields   []Field
	Variants []Variant
}

// Field is one member of a record or tuple.
type Field struct {
	Name   string
	Rename string
	Type   Descriptor
}

// ExternalName is the name the storage engine uses for the field.
func (f Field) ExternalName() string {
	if f.Rename != "" {
		return f.Rename
	}

	return f.Name
}

// Variant is one declared enum discriminant.
type Variant struct {
	Name   string
	Rename string
	Value  int64
}

// ExternalName is the name the storage engine uses for the variant.
func (v Variant) ExternalName() string {
	if v.Rename != "" {
		return v.Rename
	}

	return v.Name
}

// TypeInt describes a signed integer of size bytes.
func TypeInt(size int) Descriptor {
	return Descriptor{Class: ClassInteger, Size: size, Signed: true}
}

// TypeUint describes an unsigned integer of size bytes.
func TypeUint(size int) Descriptor {
	return Descriptor{Class: ClassInteger, Size: size}
}

// TypeFloat describes an IEEE float of size bytes (2 is half precision).
func TypeFloat(size int) Descriptor {
	return Descriptor{Class: ClassFloat, Size: size}
}

// TypeBool describes a boolean.
func TypeBool() Descriptor {
	return Descriptor{Class: ClassBool, Size: 1}
}

// TypeComplex describes a complex number of size bytes (8 or 16).
func TypeComplex(size int) Descriptor {
	return Descriptor{Class: ClassComplex, Size: size}
}

// TypeFixedASCII describes a null-padded ascii string.
func TypeFixedASCII(capacity int) Descriptor {
	return Descriptor{Class: ClassFixedASCII, Capacity: capacity}
}

// TypeFixedASCIITerm describes a null-terminated ascii string.
func TypeFixedASCIITerm(capacity int) Descriptor {
	return Descriptor{Class: ClassFixedASCIITerm, Capacity: capacity}
}

// TypeFixedUnicode describes a fixed-capacity UTF-8 string.
func TypeFixedUnicode(capacity int) Descriptor {
	return Descriptor{Class: ClassFixedUnicode, Capacity: capacity}
}

// TypeVarLenASCII describes a variable-length ascii string.
func TypeVarLenASCII() Descriptor {
	return Descriptor{Class: ClassVarLenASCII}
}

// TypeVarLenUnicode describes a variable-length UTF-8 string.
func TypeVarLenUnicode() Descriptor {
	return Descriptor{Class: ClassVarLenUnicode}
}

// TypeArray describes a fixed array of n elements.
func TypeArray(elem Descriptor, n int) Descriptor {
	return Descriptor{Class: ClassArray, Elem: &elem, Len: n}
}

// TypeVarLenArray describes a variable-length array.
func TypeVarLenArray(elem Descriptor) Descriptor {
	return Descriptor{Class: ClassVarLenArray, Elem: &elem}
}

// TypeTuple describes a tuple. Components are named by position.
func TypeTuple(elems ...Descriptor) Descriptor {
	fields := make([]Field, len(elems))
	for i, e := range elems {
		fields[i] = Field{Name: strconv.Itoa(i), Type: e}
	}

	return Descriptor{Class: ClassTuple, Fields: fields}
}

// TypeRecord describes a record with fields in declaration order.
func TypeRecord(fields ...Field) Descriptor {
	return Descriptor{Class: ClassRecord, Fields: fields}
}

// TypeEnum describes an enum over the integer type base.
func TypeEnum(base Descriptor, variants ...Variant) Descriptor {
	return Descriptor{Class: ClassEnum, Size: base.Size, Signed: base.Signed, Variants: variants}
}

// Validate checks that d is a type the storage engine can represent.
// All failures wrap [ErrInvalidDescriptor].
func (d Descriptor) Validate() error {
	return d.validate("$")
}

func (d Descriptor) validate(path string) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidDescriptor, path, fmt.Sprintf(format, args...))
	}

	switch d.Class {
	case ClassInteger:
		if !validIntSize(d.Size) {
			return invalid("unsupported integer size %d", d.Size)
		}
	case ClassFloat:
		if d.Size != 2 && d.Size != 4 && d.Size != 8 {
			return invalid("unsupported float size %d", d.Size)
		}
	case ClassBool, ClassVarLenASCII, ClassVarLenUnicode:
	case ClassComplex:
		if d.Size != 8 && d.Size != 16 {
			return invalid("unsupported complex size %d", d.Size)
		}
	case ClassFixedASCII, ClassFixedASCIITerm, ClassFixedUnicode:
		if d.Capacity < 0 {
			return invalid("negative capacity %d", d.Capacity)
		}
	case ClassArray:
		if d.Len < 0 {
			return invalid("negative array length %d", d.Len)
		}

		if d.Elem == nil {
			return invalid("array without element type")
		}

		return d.Elem.validate(path + "[]")
	case ClassVarLenArray:
		if d.Elem == nil {
			return invalid("varlen array without element type")
		}

		return d.Elem.validate(path + "[]")
	case ClassTuple:
		if len(d.Fields) < 1 || len(d.Fields) > MaxTupleArity {
			return invalid("tuple arity %d outside 1..%d", len(d.Fields), MaxTupleArity)
		}

		return validateFields(path, d.Fields, invalid)
	case ClassRecord:
		if len(d.Fields) == 0 {
			return invalid("record without fields")
		}

		return validateFields(path, d.Fields, invalid)
	case ClassEnum:
		return d.validateEnum(invalid)
	default:
		return invalid("unknown class %s", d.Class)
	}

	return nil
}

func validateFields(path string, fields []Field, invalid func(string, ...any) error) error {
	names := make(map[string]bool, len(fields))
	external := make(map[string]bool, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			return invalid("field without name")
		}

		if names[f.Name] {
			return invalid("duplicate field %q", f.Name)
		}

		if external[f.ExternalName()] {
			return invalid("duplicate external field name %q", f.ExternalName())
		}

		names[f.Name] = true
		external[f.ExternalName()] = true

		err := f.Type.validate(path + "." + f.Name)
		if err != nil {
			return err
		}
	}

	return nil
}

func (d Descriptor) validateEnum(invalid func(string, ...any) error) error {
	if !validIntSize(d.Size) {
		return invalid("unsupported enum base size %d", d.Size)
	}

	if len(d.Variants) == 0 {
		return invalid("enum without variants")
	}

	lo, hi := intBounds(d.Size, d.Signed)
	names := make(map[string]bool, len(d.Variants))
	external := make(map[string]bool, len(d.Variants))
	values := make(map[int64]bool, len(d.Variants))

	for _, v := range d.Variants {
		if v.Name == "" {
			return invalid("variant without name")
		}

		if names[v.Name] {
			return invalid("duplicate variant %q", v.Name)
		}

		if external[v.ExternalName()] {
			return invalid("duplicate external variant name %q", v.ExternalName())
		}

		if values[v.Value] {
			return invalid("duplicate discriminant %d", v.Value)
		}

		if v.Value < lo || (hi >= 0 && v.Value > hi) {
			return invalid("discriminant %d outside base range", v.Value)
		}

		names[v.Name] = true
		external[v.ExternalName()] = true
		values[v.Value] = true
	}

	return nil
}

func validIntSize(size int) bool {
	return size == 1 || size == 2 || size == 4 || size == 8
}

// intBounds returns the representable range of an integer base as int64.
// hi is -1 for u64, whose upper bound does not fit.
func intBounds(size int, signed bool) (int64, int64) {
	bits := uint(size * 8)
	if signed {
		return -1 << (bits - 1), 1<<(bits-1) - 1
	}

	if bits == 64 {
		return 0, -1
	}

	return 0, 1<<bits - 1
}

// String renders d as a type expression accepted by [Parse].
func (d Descriptor) String() string {
	var b strings.Builder
	d.write(&b)

	return b.String()
}

func (d Descriptor) write(b *strings.Builder) {
	switch d.Class {
	case ClassInteger:
		b.WriteString(intName(d.Size, d.Signed))
	case ClassFloat:
		b.WriteString("f" + strconv.Itoa(d.Size*8))
	case ClassBool:
		b.WriteString("bool")
	case ClassComplex:
		b.WriteString("c" + strconv.Itoa(d.Size*8))
	case ClassFixedASCII:
		fmt.Fprintf(b, "ascii[%d]", d.Capacity)
	case ClassFixedASCIITerm:
		fmt.Fprintf(b, "asciiz[%d]", d.Capacity)
	case ClassFixedUnicode:
		fmt.Fprintf(b, "unicode[%d]", d.Capacity)
	case ClassVarLenASCII:
		b.WriteString("vascii")
	case ClassVarLenUnicode:
		b.WriteString("vunicode")
	case ClassArray:
		b.WriteString("[")
		d.Elem.write(b)
		fmt.Fprintf(b, "; %d]", d.Len)
	case ClassVarLenArray:
		b.WriteString("vlen<")
		d.Elem.write(b)
		b.WriteString(">")
	case ClassTuple:
		b.WriteString("(")

		for i, f := range d.Fields {
			if i > 0 {
				b.WriteString(", ")
			}

			f.Type.write(b)
		}

		b.WriteString(")")
	case ClassRecord:
		b.WriteString("struct{")

		for i, f := range d.Fields {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(f.Name)
			writeRename(b, f.Rename)
			b.WriteString(": ")
			f.Type.write(b)
		}

		b.WriteString("}")
	case ClassEnum:
		b.WriteString("enum<" + intName(d.Size, d.Signed) + ">{")

		for i, v := range d.Variants {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(v.Name)
			writeRename(b, v.Rename)
			b.WriteString(" = " + strconv.FormatInt(v.Value, 10))
		}

		b.WriteString("}")
	default:
		b.WriteString(d.Class.String())
	}
}

func writeRename(b *strings.Builder, rename string) {
	if rename != "" {
		b.WriteString(" as " + strconv.Quote(rename))
	}
}

func intName(size int, signed bool) string {
	if signed {
		return "i" + strconv.Itoa(size*8)
	}

	return "u" + strconv.Itoa(size*8)
}
