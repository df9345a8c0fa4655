package ndarray

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Shape lists the extent of each axis of an array.
type Shape []int

// Size returns the number of elements an array of this shape holds: the
// product of all extents, 0 if any extent is 0, and 1 for a 0-dimensional
// shape. It panics if the product overflows int or an extent is negative;
// use [Shape.CheckedSize] for shapes from untrusted input.
func (s Shape) Size() int {
	n, err := s.CheckedSize()
	if err != nil {
		panic("ndarray: Shape.Size: " + err.Error())
	}

	return n
}

// CheckedSize is [Shape.Size] returning [ErrNegativeExtent] or
// [ErrShapeTooLarge] instead of panicking.
func (s Shape) CheckedSize() (int, error) {
	for axis, e := range s {
		if e < 0 {
			return 0, fmt.Errorf("%w: axis %d has extent %d", ErrNegativeExtent, axis, e)
		}
	}

	if slices.Contains(s, 0) {
		return 0, nil
	}

	n := 1
	for _, e := range s {
		if n > math.MaxInt/e {
			return 0, fmt.Errorf("%w: %v", ErrShapeTooLarge, s)
		}

		n *= e
	}

	return n, nil
}

// Ndim returns the number of axes.
func (s Shape) Ndim() int { return len(s) }

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = strconv.Itoa(e)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// SelectorKind distinguishes the two axis selector variants.
type SelectorKind uint8

// Selector kinds.
const (
	KindIndex SelectorKind = iota + 1
	KindRange
)

func (k SelectorKind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

// AxisSelector selects positions along one axis.
//
// An Index selector picks exactly one position and removes the axis from
// the result. A Range selector keeps the axis: Start is inclusive, End is
// exclusive and only meaningful when HasEnd is set (otherwise the range
// runs to the extent), Step is the stride.
type AxisSelector struct {
	Kind   SelectorKind
	Index  int
	Start  int
	End    int
	HasEnd bool
	Step   int
}

// Index selects position i.
func Index(i int) AxisSelector {
	return AxisSelector{Kind: KindIndex, Index: i}
}

// Range selects [start, end) with the given step.
func Range(start, end, step int) AxisSelector {
	return AxisSelector{Kind: KindRange, Start: start, End: end, HasEnd: true, Step: step}
}

// RangeFrom selects from start through the end of the axis.
func RangeFrom(start, step int) AxisSelector {
	return AxisSelector{Kind: KindRange, Start: start, Step: step}
}

// Full selects the whole axis with step 1.
func Full() AxisSelector {
	return RangeFrom(0, 1)
}

// IsMalformed reports whether s is a range whose end lies before its start.
func (s AxisSelector) IsMalformed() bool {
	return s.Kind == KindRange && s.HasEnd && s.End < s.Start
}

// String renders s as "i" for an index and "start:end;step" for a range,
// leaving end empty when the range is open.
func (s AxisSelector) String() string {
	if s.Kind == KindIndex {
		return strconv.Itoa(s.Index)
	}

	end := ""
	if s.HasEnd {
		end = strconv.Itoa(s.End)
	}

	return strconv.Itoa(s.Start) + ":" + end + ";" + strconv.Itoa(s.Step)
}

// SliceSpec is a multi-dimensional selection, one selector per axis.
type SliceSpec []AxisSelector

func (s SliceSpec) String() string {
	parts := make([]string, len(s))
	for i, sel := range s {
		parts[i] = sel.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// HasMalformed reports whether any axis holds a malformed range.
func (s SliceSpec) HasMalformed() bool {
	for _, sel := range s {
		if sel.IsMalformed() {
			return true
		}
	}

	return false
}
