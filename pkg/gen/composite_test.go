package gen_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/h5fixture/pkg/gen"
	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

func Test_Tuple_Generates_Components_In_Order_When_Called(t *testing.T) {
	t.Parallel()

	got := gen.Tuple(gen.Erase(gen.Int64()), gen.Erase(gen.Bool()), gen.Erase(gen.VarLenASCII())).
		Generate(gen.NewSource(50))

	replay := gen.NewSource(50)
	want := h5type.Tuple{
		gen.Int64().Generate(replay),
		gen.Bool().Generate(replay),
		gen.VarLenASCII().Generate(replay),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tuple mismatch (-want +got):\n%s", diff)
	}
}

func Test_Tuple_Panics_When_Arity_Outside_Range(t *testing.T) {
	t.Parallel()

	elems := make([]gen.Generator[any], h5type.MaxTupleArity+1)
	for i := range elems {
		elems[i] = gen.Erase(gen.Bool())
	}

	require.Panics(t, func() { gen.Tuple() })
	require.Panics(t, func() { gen.Tuple(elems...) })
	require.NotPanics(t, func() { gen.Tuple(elems[:h5type.MaxTupleArity]...) })
	require.NotPanics(t, func() { gen.Tuple(elems[0]) })
}

func Test_Array_Returns_Fixed_Length_When_Generated(t *testing.T) {
	t.Parallel()

	src := gen.NewSource(51)

	for _, n := range []int{0, 1, 2, 7} {
		require.Len(t, gen.Array(gen.Uint16(), n).Generate(src), n)
	}

	require.Panics(t, func() { gen.Array(gen.Uint16(), -1) })
}

func Test_VarLenArray_Returns_Zero_To_Eight_Elements_When_Generated(t *testing.T) {
	t.Parallel()

	src := gen.NewSource(52)
	g := gen.VarLenArray(gen.Float32())
	lengths := make(map[int]bool)

	for range 2000 {
		v := g.Generate(src)
		require.LessOrEqual(t, v.Len(), 8)

		lengths[v.Len()] = true
	}

	require.Len(t, lengths, 9)
}

func Test_Enum_Only_Produces_Declared_Variants_When_Sampled(t *testing.T) {
	t.Parallel()

	variants := []h5type.Variant{
		{Name: "X", Value: -2},
		{Name: "Y", Value: 3},
	}

	src := gen.NewSource(53)
	g := gen.Enum(variants...)
	counts := make(map[int64]int)

	for range 10000 {
		v := g.Generate(src)

		switch v {
		case h5type.EnumValue{Name: "X", Value: -2}, h5type.EnumValue{Name: "Y", Value: 3}:
		default:
			t.Fatalf("undeclared variant %+v", v)
		}

		counts[v.Value]++
	}

	require.Len(t, counts, 2)
	assertRate(t, "X", counts[-2], 10000, 0.5, 0.03)
}

func Test_OneOf_Panics_When_No_Candidates(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { gen.OneOf[int]() })
	require.Panics(t, func() { gen.Enum() })
}

func Test_Record_Rename_Leaves_Values_And_Order_Unchanged_When_Seeded_Alike(t *testing.T) {
	t.Parallel()

	plain := gen.Record(
		gen.Field("first", gen.Int32()),
		gen.Field("second", gen.Int64()),
		gen.Field("third", gen.FixedUnicode(11)),
	)
	renamed := gen.Record(
		gen.Field("first", gen.Int32()),
		gen.Field("second", gen.Int64()).Rename("field.second"),
		gen.Field("third", gen.FixedUnicode(11)).Rename("3rd"),
	)

	for seed := range uint64(100) {
		a := plain.Generate(gen.NewSource(seed))
		b := renamed.Generate(gen.NewSource(seed))

		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("seed %d: renamed record differs (-plain +renamed):\n%s", seed, diff)
		}
	}
}

func Test_Record_Generates_Fields_In_Declaration_Order_When_Called(t *testing.T) {
	t.Parallel()

	got := gen.Record(
		gen.Field("flag", gen.Bool()),
		gen.Field("n", gen.Uint8()),
	).Generate(gen.NewSource(54))

	replay := gen.NewSource(54)
	want := h5type.Record{
		{Name: "flag", Value: gen.Bool().Generate(replay)},
		{Name: "n", Value: gen.Uint8().Generate(replay)},
	}

	require.Equal(t, want, got)
}

func Test_Record_Panics_When_Fields_Are_Invalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { gen.Record() })
	require.Panics(t, func() {
		gen.Record(gen.Field("a", gen.Bool()), gen.Field("a", gen.Int8()))
	})
	require.Panics(t, func() {
		gen.Record(
			gen.Field("first", gen.Bool()).Rename("coord"),
			gen.Field("second", gen.Int8()).Rename("coord"),
		)
	})
	require.Panics(t, func() {
		gen.Record(gen.Field("a", gen.Bool()), gen.Field("b", gen.Int8()).Rename("a"))
	})
	require.NotPanics(t, func() {
		gen.Record(gen.Field("a", gen.Bool()).Rename("b"), gen.Field("b", gen.Int8()).Rename("a"))
	})
}

func Test_FieldGen_ExternalName_Falls_Back_To_Name_When_Not_Renamed(t *testing.T) {
	t.Parallel()

	f := gen.Field("second", gen.Int64())

	require.Equal(t, "second", f.ExternalName())
	require.Equal(t, "field.second", f.Rename("field.second").ExternalName())
	require.Equal(t, "second", f.Rename("field.second").Name())
}

type coin bool

func (coin) Random(src gen.Source) coin { return coin(gen.Bool().Generate(src)) }

func Test_Of_Uses_Random_Method_When_Type_Generates_Itself(t *testing.T) {
	t.Parallel()

	got := gen.Vec(gen.NewSource(55), gen.Of[coin](), 16)
	want := gen.Vec(gen.NewSource(55), gen.Bool(), 16)

	for i := range want {
		require.Equal(t, want[i], bool(got[i]), "index %d", i)
	}
}
