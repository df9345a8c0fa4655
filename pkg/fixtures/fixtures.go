// Package fixtures holds the compound types used by storage round-trip
// tests. Each type generates itself, reports the descriptor the storage
// engine maps it with, and converts to the dynamic form [gen.ForType]
// produces for that descriptor.
//
// Random and TypeDescriptor are kept next to each other for every type so
// that field order, arity and variant sets agree.
package fixtures

import (
	"github.com/calvinalkan/h5fixture/pkg/gen"
	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

// Fixture is implemented by every type in this package.
type Fixture[T any] interface {
	gen.Randomizer[T]
	TypeDescriptor() h5type.Descriptor
	Dynamic() any
}

var (
	_ Fixture[Enum]              = Enum(0)
	_ Fixture[TupleStruct]       = TupleStruct{}
	_ Fixture[FixedStruct]       = FixedStruct{}
	_ Fixture[VarLenStruct]      = VarLenStruct{}
	_ Fixture[RenameStruct]      = RenameStruct{}
	_ Fixture[RenameTupleStruct] = RenameTupleStruct{}
	_ Fixture[RenameEnum]        = RenameEnum(0)
)

var (
	fixedASCII3     = gen.FixedASCII(3)
	fixedASCIITerm3 = gen.FixedASCIITerm(3)
	fixedUnicode11  = gen.FixedUnicode(11)
	varLenASCII     = gen.VarLenASCII()
	varLenUnicode   = gen.VarLenUnicode()
	varLenEnums     = gen.VarLenArray(gen.Of[Enum]())
	tupleStructs    = gen.Array(gen.Of[TupleStruct](), 2)
	bools           = gen.Bool()
	int32s          = gen.Int32()
	int64s          = gen.Int64()
)

// Enum is a 16-bit enum with non-contiguous, mixed-sign discriminants.
type Enum int16

// Enum variants.
const (
	EnumX Enum = -2
	EnumY Enum = 3
)

var enumVariants = []Enum{EnumX, EnumY}

// Random picks X or Y uniformly.
func (Enum) Random(src gen.Source) Enum {
	return gen.ChooseOne(src, enumVariants)
}

// TypeDescriptor describes Enum as enum<i16>{X = -2, Y = 3}.
func (Enum) TypeDescriptor() h5type.Descriptor {
	return h5type.TypeEnum(h5type.TypeInt(2),
		h5type.Variant{Name: "X", Value: int64(EnumX)},
		h5type.Variant{Name: "Y", Value: int64(EnumY)},
	)
}

// Dynamic returns e as the [h5type.EnumValue] [gen.ForType] would produce.
func (e Enum) Dynamic() any {
	return h5type.EnumValue{Name: e.String(), Value: int64(e)}
}

func (e Enum) String() string {
	switch e {
	case EnumX:
		return "X"
	case EnumY:
		return "Y"
	default:
		return "Enum(?)"
	}
}

// TupleStruct is a positional record of a bool and an [Enum].
type TupleStruct struct {
	Flag bool
	Kind Enum
}

// Random draws Flag, then Kind.
func (TupleStruct) Random(src gen.Source) TupleStruct {
	flag := bools.Generate(src)
	kind := Enum(0).Random(src)

	return TupleStruct{Flag: flag, Kind: kind}
}

// TypeDescriptor describes the positions as fields "0" and "1".
func (TupleStruct) TypeDescriptor() h5type.Descriptor {
	return h5type.TypeRecord(
		h5type.Field{Name: "0", Type: h5type.TypeBool()},
		h5type.Field{Name: "1", Type: Enum(0).TypeDescriptor()},
	)
}

// Dynamic returns t as an [h5type.Record] with fields "0" and "1".
func (t TupleStruct) Dynamic() any {
	return h5type.Record{
		{Name: "0", Value: t.Flag},
		{Name: "1", Value: t.Kind.Dynamic()},
	}
}

// FixedStruct combines every fixed-size text encoding with a fixed array
// of records.
type FixedStruct struct {
	FA    h5type.FixedASCII
	FAO   h5type.FixedASCIITerm
	FU    h5type.FixedUnicode
	Array [2]TupleStruct
}

// Random draws the fields in declaration order.
func (FixedStruct) Random(src gen.Source) FixedStruct {
	var s FixedStruct

	s.FA = fixedASCII3.Generate(src)
	s.FAO = fixedASCIITerm3.Generate(src)
	s.FU = fixedUnicode11.Generate(src)
	copy(s.Array[:], tupleStructs.Generate(src))

	return s
}

// TypeDescriptor describes FixedStruct as
// struct{fa: ascii[3], fao: asciiz[3], fu: unicode[11], array: [TupleStruct; 2]}.
func (FixedStruct) TypeDescriptor() h5type.Descriptor {
	return h5type.TypeRecord(
		h5type.Field{Name: "fa", Type: h5type.TypeFixedASCII(3)},
		h5type.Field{Name: "fao", Type: h5type.TypeFixedASCIITerm(3)},
		h5type.Field{Name: "fu", Type: h5type.TypeFixedUnicode(11)},
		h5type.Field{Name: "array", Type: h5type.TypeArray(TupleStruct{}.TypeDescriptor(), 2)},
	)
}

// Dynamic returns s as an [h5type.Record]. The array becomes a []any of
// TupleStruct records.
func (s FixedStruct) Dynamic() any {
	array := make([]any, len(s.Array))
	for i, t := range s.Array {
		array[i] = t.Dynamic()
	}

	return h5type.Record{
		{Name: "fa", Value: s.FA},
		{Name: "fao", Value: s.FAO},
		{Name: "fu", Value: s.FU},
		{Name: "array", Value: array},
	}
}

// VarLenStruct combines the variable-length encodings.
type VarLenStruct struct {
	VA  h5type.VarLenASCII
	VU  h5type.VarLenUnicode
	VLA h5type.VarLenArray[Enum]
}

// Random draws VA, VU, then VLA.
func (VarLenStruct) Random(src gen.Source) VarLenStruct {
	var s VarLenStruct

	s.VA = varLenASCII.Generate(src)
	s.VU = varLenUnicode.Generate(src)
	s.VLA = varLenEnums.Generate(src)

	return s
}

// TypeDescriptor describes VarLenStruct as
// struct{va: vascii, vu: vunicode, vla: vlen<Enum>}.
func (VarLenStruct) TypeDescriptor() h5type.Descriptor {
	return h5type.TypeRecord(
		h5type.Field{Name: "va", Type: h5type.TypeVarLenASCII()},
		h5type.Field{Name: "vu", Type: h5type.TypeVarLenUnicode()},
		h5type.Field{Name: "vla", Type: h5type.TypeVarLenArray(Enum(0).TypeDescriptor())},
	)
}

// Dynamic returns s as an [h5type.Record] with VLA elements as enum values.
func (s VarLenStruct) Dynamic() any {
	vla := make(h5type.VarLenArray[any], len(s.VLA))
	for i, e := range s.VLA {
		vla[i] = e.Dynamic()
	}

	return h5type.Record{
		{Name: "va", Value: s.VA},
		{Name: "vu", Value: s.VU},
		{Name: "vla", Value: vla},
	}
}

// RenameStruct stores its second field as "field.second".
type RenameStruct struct {
	First  int32
	Second int64
}

// Random draws First, then Second.
func (RenameStruct) Random(src gen.Source) RenameStruct {
	first := int32s.Generate(src)
	second := int64s.Generate(src)

	return RenameStruct{First: first, Second: second}
}

// TypeDescriptor maps Second to the external name "field.second".
func (RenameStruct) TypeDescriptor() h5type.Descriptor {
	return h5type.TypeRecord(
		h5type.Field{Name: "first", Type: h5type.TypeInt(4)},
		h5type.Field{Name: "second", Rename: "field.second", Type: h5type.TypeInt(8)},
	)
}

// Dynamic returns s as an [h5type.Record] keyed by internal names.
func (s RenameStruct) Dynamic() any {
	return h5type.Record{
		{Name: "first", Value: s.First},
		{Name: "second", Value: s.Second},
	}
}

// RenameTupleStruct is [TupleStruct] with both positions renamed.
type RenameTupleStruct struct {
	Flag bool
	Kind Enum
}

// Random draws exactly what [TupleStruct.Random] draws.
func (RenameTupleStruct) Random(src gen.Source) RenameTupleStruct {
	t := TupleStruct{}.Random(src)

	return RenameTupleStruct(t)
}

// TypeDescriptor maps "0" to "my_boolean" and "1" to "my_enum".
func (RenameTupleStruct) TypeDescriptor() h5type.Descriptor {
	return h5type.TypeRecord(
		h5type.Field{Name: "0", Rename: "my_boolean", Type: h5type.TypeBool()},
		h5type.Field{Name: "1", Rename: "my_enum", Type: Enum(0).TypeDescriptor()},
	)
}

// Dynamic is [TupleStruct.Dynamic].
func (t RenameTupleStruct) Dynamic() any {
	return TupleStruct(t).Dynamic()
}

// RenameEnum is [Enum] with variants stored as "coord.x" and "coord.y".
type RenameEnum int16

// RenameEnum variants.
const (
	RenameEnumX RenameEnum = -2
	RenameEnumY RenameEnum = 3
)

var renameEnumVariants = []RenameEnum{RenameEnumX, RenameEnumY}

// Random picks X or Y uniformly.
func (RenameEnum) Random(src gen.Source) RenameEnum {
	return gen.ChooseOne(src, renameEnumVariants)
}

// TypeDescriptor is the [Enum] descriptor with renamed variants.
func (RenameEnum) TypeDescriptor() h5type.Descriptor {
	return h5type.TypeEnum(h5type.TypeInt(2),
		h5type.Variant{Name: "X", Rename: "coord.x", Value: int64(RenameEnumX)},
		h5type.Variant{Name: "Y", Rename: "coord.y", Value: int64(RenameEnumY)},
	)
}

// Dynamic is [Enum.Dynamic]; variants keep their internal names.
func (e RenameEnum) Dynamic() any {
	return Enum(e).Dynamic()
}
