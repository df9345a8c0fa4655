package gen

import (
	"unsafe"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"

	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

// Integer generates integers uniformly over the whole range of T.
func Integer[T constraints.Integer]() Generator[T] {
	return Func[T](func(src Source) T {
		return T(src.Uint64())
	})
}

func Int8() Generator[int8]     { return Integer[int8]() }
func Int16() Generator[int16]   { return Integer[int16]() }
func Int32() Generator[int32]   { return Integer[int32]() }
func Int64() Generator[int64]   { return Integer[int64]() }
func Uint8() Generator[uint8]   { return Integer[uint8]() }
func Uint16() Generator[uint16] { return Integer[uint16]() }
func Uint32() Generator[uint32] { return Integer[uint32]() }
func Uint64() Generator[uint64] { return Integer[uint64]() }

// Bool generates true and false with equal probability.
func Bool() Generator[bool] {
	return Func[bool](func(src Source) bool {
		return src.Uint64()>>63 == 1
	})
}

// Float generates values uniformly in [0, 1). NaN, infinities and
// negative values are never produced.
func Float[T constraints.Float]() Generator[T] {
	return Func[T](func(src Source) T {
		var zero T

		// A float32 drawn as float64 could round up to 1.
		if unsafe.Sizeof(zero) == 4 {
			return T(src.Float32())
		}

		return T(src.Float64())
	})
}

func Float32() Generator[float32] { return Float[float32]() }
func Float64() Generator[float64] { return Float[float64]() }

// Float16 samples a float32 in [0, 1) and narrows it to half precision.
// Samples within 2^-12 of 1 round to 1.
func Float16() Generator[float16.Float16] {
	return Func[float16.Float16](func(src Source) float16.Float16 {
		return float16.Fromfloat32(src.Float32())
	})
}

// Complex generates the real then the imaginary component, each with
// [Float].
func Complex[T constraints.Float]() Generator[h5type.Complex[T]] {
	component := Float[T]()

	return Func[h5type.Complex[T]](func(src Source) h5type.Complex[T] {
		re := component.Generate(src)
		im := component.Generate(src)

		return h5type.Complex[T]{Re: re, Im: im}
	})
}

func Complex64() Generator[complex64] {
	g := Complex[float32]()

	return Func[complex64](func(src Source) complex64 {
		c := g.Generate(src)

		return complex(c.Re, c.Im)
	})
}

func Complex128() Generator[complex128] {
	g := Complex[float64]()

	return Func[complex128](func(src Source) complex128 {
		return g.Generate(src).Complex128()
	})
}
