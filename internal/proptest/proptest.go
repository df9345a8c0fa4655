// Package proptest provides property-based testing infrastructure and
// bridges fixture generators into gopter.
package proptest

import (
	"math/rand"

	"github.com/leanovate/gopter"
	gopgen "github.com/leanovate/gopter/gen"

	"github.com/calvinalkan/h5fixture/pkg/gen"
	"github.com/calvinalkan/h5fixture/pkg/h5type"
	"github.com/calvinalkan/h5fixture/pkg/ndarray"
)

// TestParameters returns the standard test parameters for property tests.
// Default: 1000 iterations for a good balance between coverage and speed.
func TestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000

	return params
}

// FastTestParameters returns parameters for quick property tests.
func FastTestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100

	return params
}

// FromGenerator turns g into a gopter generator that draws from gopter's
// own random stream. Values are not shrunk.
func FromGenerator[T any](g gen.Generator[T]) gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		v := g.Generate(rngSource{rng: params.Rng})

		return gopter.NewGenResult(v, gopter.NoShrinker)
	}
}

// Seed generates seeds for [gen.NewSource].
func Seed() gopter.Gen {
	return gopgen.UInt64()
}

// Ndim generates dimension counts in [0, 4].
func Ndim() gopter.Gen {
	return gopgen.IntRange(0, 4)
}

// Shape generates shapes of 0 to 4 axes.
func Shape() gopter.Gen {
	return FromGenerator(gen.Func[ndarray.Shape](func(src gen.Source) ndarray.Shape {
		return gen.GenerateShape(src, gen.IntRangeInclusive(src, 0, 4))
	}))
}

// Descriptor generates a random, valid type descriptor of bounded depth.
func Descriptor() gopter.Gen {
	return FromGenerator(gen.Func[h5type.Descriptor](func(src gen.Source) h5type.Descriptor {
		return RandomDescriptor(src, 3)
	}))
}

// RandomDescriptor returns a valid descriptor nesting at most depth levels
// of composites.
func RandomDescriptor(src gen.Source, depth int) h5type.Descriptor {
	leaves := []func() h5type.Descriptor{
		func() h5type.Descriptor { return h5type.TypeInt(gen.ChooseOne(src, []int{1, 2, 4, 8})) },
		func() h5type.Descriptor { return h5type.TypeUint(gen.ChooseOne(src, []int{1, 2, 4, 8})) },
		func() h5type.Descriptor { return h5type.TypeFloat(gen.ChooseOne(src, []int{2, 4, 8})) },
		func() h5type.Descriptor { return h5type.TypeComplex(gen.ChooseOne(src, []int{8, 16})) },
		h5type.TypeBool,
		func() h5type.Descriptor { return h5type.TypeFixedASCII(src.IntN(12)) },
		func() h5type.Descriptor { return h5type.TypeFixedASCIITerm(src.IntN(12)) },
		func() h5type.Descriptor { return h5type.TypeFixedUnicode(src.IntN(12)) },
		h5type.TypeVarLenASCII,
		h5type.TypeVarLenUnicode,
		func() h5type.Descriptor {
			return h5type.TypeEnum(h5type.TypeInt(2),
				h5type.Variant{Name: "X", Value: -2},
				h5type.Variant{Name: "Y", Rename: "coord.y", Value: 3},
			)
		},
	}

	if depth <= 0 || gen.Bernoulli(src, 0.5) {
		return gen.ChooseOne(src, leaves)()
	}

	switch src.IntN(4) {
	case 0:
		return h5type.TypeArray(RandomDescriptor(src, depth-1), src.IntN(4))
	case 1:
		return h5type.TypeVarLenArray(RandomDescriptor(src, depth-1))
	case 2:
		elems := make([]h5type.Descriptor, gen.IntRangeInclusive(src, 1, 4))
		for i := range elems {
			elems[i] = RandomDescriptor(src, depth-1)
		}

		return h5type.TypeTuple(elems...)
	default:
		fields := make([]h5type.Field, gen.IntRangeInclusive(src, 1, 4))
		for i := range fields {
			fields[i] = h5type.Field{Name: "f" + gen.Alphanumeric(src, 1) + string(rune('a'+i)), Type: RandomDescriptor(src, depth-1)}
			if gen.Bernoulli(src, 0.3) {
				fields[i].Rename = "ext." + fields[i].Name
			}
		}

		return h5type.TypeRecord(fields...)
	}
}

// rngSource adapts gopter's math/rand generator to [gen.Source].
type rngSource struct {
	rng *rand.Rand
}

func (s rngSource) IntN(n int) int { return s.rng.Intn(n) }

func (s rngSource) Uint64() uint64 { return s.rng.Uint64() }

func (s rngSource) Float32() float32 { return s.rng.Float32() }

func (s rngSource) Float64() float64 { return s.rng.Float64() }
