package h5type_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

func Test_Check_Accepts_Value_When_Representation_Matches(t *testing.T) {
	t.Parallel()

	type testCase struct {
		expr  string
		value any
	}

	testCases := []testCase{
		{expr: "i16", value: int16(-4)},
		{expr: "u32", value: uint32(7)},
		{expr: "f16", value: float16.Fromfloat32(0.5)},
		{expr: "f64", value: 0.25},
		{expr: "c64", value: h5type.Complex[float32]{Re: 1, Im: 2}},
		{expr: "ascii[3]", value: h5type.MustFixedASCII(3, []byte("ab"))},
		{expr: "unicode[4]", value: h5type.MustFixedUnicode(4, "é")},
		{expr: "[bool; 2]", value: []any{true, false}},
		{expr: "vlen<u8>", value: h5type.VarLenArray[any]{uint8(1)}},
		{expr: "(bool, vascii)", value: h5type.Tuple{true, h5type.MustVarLenASCII([]byte("x"))}},
		{expr: `enum<i16>{X = -2, Y as "coord.y" = 3}`, value: h5type.EnumValue{Name: "Y", Value: 3}},
		{
			expr: `struct{a: i8, b as "field.b": vunicode}`,
			value: h5type.Record{
				{Name: "a", Value: int8(1)},
				{Name: "b", Value: h5type.MustVarLenUnicode("ü")},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.expr, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, h5type.Check(h5type.MustParse(testCase.expr), testCase.value))
		})
	}
}

func Test_Check_Returns_ErrMismatch_When_Representation_Differs(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		expr  string
		value any
	}

	testCases := []testCase{
		{name: "IntegerWidth", expr: "i16", value: int32(1)},
		{name: "IntegerSign", expr: "u8", value: int8(1)},
		{name: "F16AsFloat32", expr: "f16", value: float32(0.5)},
		{name: "ComplexWidth", expr: "c128", value: h5type.Complex[float32]{}},
		{name: "Capacity", expr: "ascii[4]", value: h5type.MustFixedASCII(3, nil)},
		{name: "TermVsPlain", expr: "asciiz[3]", value: h5type.MustFixedASCII(3, nil)},
		{name: "ArrayLength", expr: "[bool; 2]", value: []any{true}},
		{name: "ArrayElement", expr: "[bool; 1]", value: []any{1}},
		{name: "VarLenType", expr: "vlen<u8>", value: []any{uint8(1)}},
		{name: "TupleArity", expr: "(bool, bool)", value: h5type.Tuple{true}},
		{name: "UndeclaredVariant", expr: "enum<i16>{X = -2, Y = 3}", value: h5type.EnumValue{Name: "Z", Value: 4}},
		{name: "ExternalVariantName", expr: `enum<i16>{X as "coord.x" = -2}`, value: h5type.EnumValue{Name: "coord.x", Value: -2}},
		{name: "FieldOrder", expr: "struct{a: bool, b: bool}", value: h5type.Record{{Name: "b", Value: true}, {Name: "a", Value: true}}},
		{name: "ExternalFieldName", expr: `struct{a as "x": bool}`, value: h5type.Record{{Name: "x", Value: true}}},
		{name: "MissingField", expr: "struct{a: bool, b: bool}", value: h5type.Record{{Name: "a", Value: true}}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := h5type.Check(h5type.MustParse(testCase.expr), testCase.value)
			require.ErrorIs(t, err, h5type.ErrMismatch)
		})
	}
}

func Test_Check_Names_Offending_Path_When_Nested_Value_Mismatches(t *testing.T) {
	t.Parallel()

	d := h5type.MustParse("struct{rows: [(bool, u8); 2]}")
	v := h5type.Record{{Name: "rows", Value: []any{
		h5type.Tuple{true, uint8(1)},
		h5type.Tuple{true, int8(1)},
	}}}

	err := h5type.Check(d, v)
	require.ErrorIs(t, err, h5type.ErrMismatch)
	require.ErrorContains(t, err, "$.rows[1].1")
}

func Test_Record_Get_Finds_Field_When_Present(t *testing.T) {
	t.Parallel()

	r := h5type.Record{{Name: "a", Value: 1}, {Name: "b", Value: 2}}

	v, ok := r.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)

	_, ok = r.Get("field.b")
	require.False(t, ok)
}

func Test_VarLenArrayFrom_Copies_Elements_When_Called(t *testing.T) {
	t.Parallel()

	in := []int{1, 2}
	a := h5type.VarLenArrayFrom(in)
	in[0] = 9

	require.Equal(t, 2, a.Len())
	require.Equal(t, 1, a[0])
	require.Equal(t, complex(1, 2), h5type.Complex[float64]{Re: 1, Im: 2}.Complex128())
}
