package gen

import (
	"github.com/calvinalkan/h5fixture/pkg/ndarray"
)

// Materialize generates a shape of ndim axes, then fills it with values
// from g in row-major order. A zero extent yields an empty array.
//
// It panics if the element count overflows int, possible only for ndim of 19
// or more, or if the generated data does not fit the shape.
func Materialize[T any](src Source, g Generator[T], ndim int) (ndarray.Shape, *ndarray.Array[T]) {
	shape := GenerateShape(src, ndim)

	size, err := shape.CheckedSize()
	if err != nil {
		panic("gen: Materialize: " + err.Error())
	}

	arr, err := ndarray.FromShapeVec(shape, Vec(src, g, size))
	if err != nil {
		panic("gen: Materialize: " + err.Error())
	}

	return shape, arr
}
