package ndarray

import (
	"fmt"
	"slices"
)

// Array is a dense, row-major multi-dimensional array.
type Array[T any] struct {
	shape Shape
	data  []T
}

// FromShapeVec wraps data as an array of the given shape. The array takes
// ownership of data. Returns [ErrShapeMismatch] if len(data) is not the
// product of the extents, [ErrNegativeExtent] for a negative extent and
// [ErrShapeTooLarge] when the product overflows int.
func FromShapeVec[T any](shape Shape, data []T) (*Array[T], error) {
	size, err := shape.CheckedSize()
	if err != nil {
		return nil, err
	}

	if len(data) != size {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrShapeMismatch, len(data), shape)
	}

	return &Array[T]{shape: slices.Clone(shape), data: data}, nil
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() Shape { return slices.Clone(a.shape) }

// Len returns the total number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Data returns a copy of the elements in row-major order.
func (a *Array[T]) Data() []T { return slices.Clone(a.data) }

// At returns the element at the given multi-index.
func (a *Array[T]) At(idx ...int) (T, error) {
	var zero T

	if len(idx) != len(a.shape) {
		return zero, fmt.Errorf("%w: %d indices for %d axes", ErrRankMismatch, len(idx), len(a.shape))
	}

	offset := 0
	for axis, i := range idx {
		if i < 0 || i >= a.shape[axis] {
			return zero, fmt.Errorf("%w: axis %d index %d, extent %d", ErrIndexOutOfBounds, axis, i, a.shape[axis])
		}

		offset = offset*a.shape[axis] + i
	}

	return a.data[offset], nil
}

// Select returns a new array holding the elements spec selects. Index
// selectors drop their axis; range selectors keep it with length
// ceil((end-start)/step).
//
// Errors: [ErrRankMismatch], [ErrIndexOutOfBounds], [ErrRangeOutOfBounds],
// [ErrInvalidStep] and [ErrMalformedRange] (end < start).
func (a *Array[T]) Select(spec SliceSpec) (*Array[T], error) {
	if len(spec) != len(a.shape) {
		return nil, fmt.Errorf("%w: %d selectors for %d axes", ErrRankMismatch, len(spec), len(a.shape))
	}

	positions := make([][]int, len(spec))
	outShape := Shape{}

	for axis, sel := range spec {
		pos, err := resolve(sel, a.shape[axis])
		if err != nil {
			return nil, fmt.Errorf("axis %d (%s): %w", axis, sel, err)
		}

		positions[axis] = pos

		if sel.Kind == KindRange {
			outShape = append(outShape, len(pos))
		}
	}

	strides := rowMajorStrides(a.shape)
	out := make([]T, 0, outShape.Size())

	var walk func(axis, offset int)

	walk = func(axis, offset int) {
		if axis == len(positions) {
			out = append(out, a.data[offset])

			return
		}

		for _, p := range positions[axis] {
			walk(axis+1, offset+p*strides[axis])
		}
	}

	walk(0, 0)

	return &Array[T]{shape: outShape, data: out}, nil
}

// resolve lists the positions sel picks along an axis of the given extent.
func resolve(sel AxisSelector, extent int) ([]int, error) {
	switch sel.Kind {
	case KindIndex:
		if sel.Index < 0 || sel.Index >= extent {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, sel.Index, extent)
		}

		return []int{sel.Index}, nil
	case KindRange:
		if sel.Step < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, sel.Step)
		}

		end := extent
		if sel.HasEnd {
			end = sel.End
		}

		if sel.Start < 0 || sel.Start > extent || end < 0 || end > extent {
			return nil, fmt.Errorf("%w: %d:%d for extent %d", ErrRangeOutOfBounds, sel.Start, end, extent)
		}

		if end < sel.Start {
			return nil, fmt.Errorf("%w: %d:%d", ErrMalformedRange, sel.Start, end)
		}

		pos := make([]int, 0, (end-sel.Start+sel.Step-1)/sel.Step)
		for p := sel.Start; p < end; p += sel.Step {
			pos = append(pos, p)
		}

		return pos, nil
	}

	return nil, fmt.Errorf("unknown selector kind %d", sel.Kind)
}

func rowMajorStrides(shape Shape) []int {
	strides := make([]int, len(shape))

	stride := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		strides[axis] = stride
		stride *= shape[axis]
	}

	return strides
}
