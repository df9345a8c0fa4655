package gen_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/h5fixture/internal/testutil"
	"github.com/calvinalkan/h5fixture/pkg/gen"
)

const textDraws = 5000

func Test_FixedASCII_Stays_Within_Capacity_When_Generated(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, 1, 3, 16} {
		src := gen.NewSource(uint64(capacity))
		g := gen.FixedASCII(capacity)
		lengths := make(map[int]bool)

		for range textDraws {
			v := g.Generate(src)

			require.Equal(t, capacity, v.Capacity())
			require.Equal(t, capacity, v.StorageSize())
			require.LessOrEqual(t, v.Len(), capacity)

			for _, c := range v.Bytes() {
				require.LessOrEqual(t, c, byte(127))
			}

			lengths[v.Len()] = true
		}

		for n := 0; n <= capacity; n++ {
			assert.True(t, lengths[n], "capacity %d: length %d never generated", capacity, n)
		}
	}
}

func Test_FixedASCIITerm_Reserves_Terminator_When_Generated(t *testing.T) {
	t.Parallel()

	src := gen.NewSource(8)
	g := gen.FixedASCIITerm(3)
	sawFull := false

	for range textDraws {
		v := g.Generate(src)

		require.Equal(t, 3, v.Capacity())
		require.Equal(t, 4, v.StorageSize())
		require.LessOrEqual(t, v.Len(), 3)

		if v.Len() == 3 {
			sawFull = true
		}
	}

	require.True(t, sawFull, "length equal to capacity must be reachable")
}

func Test_FixedASCII_Decodes_Seed_When_Driven_By_ByteSource(t *testing.T) {
	t.Parallel()

	src := testutil.NewSeedBuilder().ASCII("a\x00Z").Source()

	v := gen.FixedASCII(3).Generate(src)

	require.Equal(t, "a\x00Z", v.String())
}

func Test_FixedUnicode_Stays_Strictly_Below_Capacity_When_Generated(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, 1, 4, 11, 32} {
		src := gen.NewSource(uint64(100 + capacity))
		g := gen.FixedUnicode(capacity)

		for range textDraws {
			v := g.Generate(src)
			s := v.String()

			require.Equal(t, capacity, v.Capacity())
			require.True(t, utf8.ValidString(s))
			require.NotContains(t, s, "\x00")

			if capacity == 0 {
				require.Empty(t, s)
			} else {
				require.Less(t, len(s), capacity)
			}
		}
	}
}

func Test_FixedUnicode_Stops_Before_Reaching_Target_When_Next_Scalar_Fits_Exactly(t *testing.T) {
	t.Parallel()

	// Target 3, scalars 'a' 'b' 'c': the third would reach the target.
	src := testutil.NewSeedBuilder().Int(3).Int('a').Int('b').Int('c').Source()

	v := gen.FixedUnicode(3).Generate(src)

	require.Equal(t, "ab", v.String())
	require.False(t, src.HasMore())
}

func Test_FixedUnicode_Skips_Nul_Scalar_When_Drawn(t *testing.T) {
	t.Parallel()

	src := testutil.NewSeedBuilder().Int(3).Int(0).Int('x').Int('y').Source()

	v := gen.FixedUnicode(5).Generate(src)

	require.Equal(t, "xy", v.String())
}

func Test_FixedUnicode_Skips_Surrogates_When_Mapping_Scalars(t *testing.T) {
	t.Parallel()

	// 0xD800 is the first value past the surrogate gap, so it maps to U+E000.
	src := testutil.NewSeedBuilder().Int(4).Int(0xD800).Int('a').Source()

	v := gen.FixedUnicode(4).Generate(src)

	require.Equal(t, "\uE000", v.String())
}

func Test_VarLenASCII_Is_At_Most_Eight_Bytes_When_Generated(t *testing.T) {
	t.Parallel()

	src := gen.NewSource(21)
	g := gen.VarLenASCII()
	lengths := make(map[int]bool)

	for range textDraws {
		v := g.Generate(src)

		require.LessOrEqual(t, v.Len(), 8)

		for _, c := range v.Bytes() {
			require.LessOrEqual(t, c, byte(127))
		}

		lengths[v.Len()] = true
	}

	require.Len(t, lengths, 9)
}

func Test_VarLenUnicode_Holds_At_Most_Eight_Scalars_When_Generated(t *testing.T) {
	t.Parallel()

	src := gen.NewSource(22)
	g := gen.VarLenUnicode()
	overshoot := false

	for range textDraws {
		v := g.Generate(src)
		s := v.String()

		require.True(t, utf8.ValidString(s))
		require.NotContains(t, s, "\x00")
		require.LessOrEqual(t, v.RuneCount(), 8)
		require.Less(t, v.Len(), 8+utf8.UTFMax)

		if v.Len() > 8 {
			overshoot = true
		}
	}

	require.True(t, overshoot, "byte length may exceed the drawn target by one scalar")
}

func Test_VarLenUnicode_Overshoots_Target_When_Last_Scalar_Is_Wide(t *testing.T) {
	t.Parallel()

	// Target 1 byte, first scalar U+1F600 (4 bytes; 0x800 surrogates skipped).
	src := testutil.NewSeedBuilder().Int(1).Int(0x1F600 - 0x800).Source()

	v := gen.VarLenUnicode().Generate(src)

	require.Equal(t, "\U0001F600", v.String())
	require.Equal(t, 4, v.Len())
}

func Test_Alphanumeric_Returns_Letters_And_Digits_When_Called(t *testing.T) {
	t.Parallel()

	src := gen.NewSource(4)

	for n := range 40 {
		s := gen.Alphanumeric(src, n)

		require.Len(t, s, n)
		require.Empty(t, strings.Trim(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"))
	}
}

func Test_Text_Generators_Panic_When_Capacity_Is_Negative(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { gen.FixedASCII(-1) })
	require.Panics(t, func() { gen.FixedASCIITerm(-1) })
	require.Panics(t, func() { gen.FixedUnicode(-1) })
}
