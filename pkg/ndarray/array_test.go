package ndarray_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/h5fixture/pkg/ndarray"
)

// iota2x3 is [[0 1 2] [3 4 5]].
func iota2x3(t *testing.T) *ndarray.Array[int] {
	t.Helper()

	arr, err := ndarray.FromShapeVec(ndarray.Shape{2, 3}, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	return arr
}

func Test_FromShapeVec_Rejects_Data_When_Length_Differs_From_Shape(t *testing.T) {
	t.Parallel()

	_, err := ndarray.FromShapeVec(ndarray.Shape{2, 3}, []int{1, 2})
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = ndarray.FromShapeVec(ndarray.Shape{2, -1}, []int{})
	require.ErrorIs(t, err, ndarray.ErrNegativeExtent)

	empty, err := ndarray.FromShapeVec(ndarray.Shape{4, 0}, []int{})
	require.NoError(t, err)
	require.Zero(t, empty.Len())

	scalar, err := ndarray.FromShapeVec(ndarray.Shape{}, []int{42})
	require.NoError(t, err)

	v, err := scalar.At()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func Test_Shape_Size_Is_Product_Of_Extents_When_Computed(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, ndarray.Shape{}.Size())
	require.Equal(t, 0, ndarray.Shape{3, 0, 4}.Size())
	require.Equal(t, 24, ndarray.Shape{2, 3, 4}.Size())
	require.Equal(t, 3, ndarray.Shape{2, 3, 4}.Ndim())
	require.Equal(t, "[2, 3, 4]", ndarray.Shape{2, 3, 4}.String())
}

func Test_Shape_CheckedSize_Fails_When_Product_Overflows(t *testing.T) {
	t.Parallel()

	huge := ndarray.Shape{1 << 32, 1 << 32}

	_, err := huge.CheckedSize()
	require.ErrorIs(t, err, ndarray.ErrShapeTooLarge)
	require.Panics(t, func() { huge.Size() })

	_, err = ndarray.Shape{math.MaxInt, 2}.CheckedSize()
	require.ErrorIs(t, err, ndarray.ErrShapeTooLarge)

	n, err := ndarray.Shape{math.MaxInt, 1}.CheckedSize()
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, n)

	n, err = ndarray.Shape{1 << 32, 1 << 32, 0}.CheckedSize()
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = ndarray.Shape{0, -1}.CheckedSize()
	require.ErrorIs(t, err, ndarray.ErrNegativeExtent)
}

func Test_FromShapeVec_Fails_When_Shape_Overflows(t *testing.T) {
	t.Parallel()

	arr, err := ndarray.FromShapeVec(ndarray.Shape{1 << 32, 1 << 32}, []float64(nil))
	require.ErrorIs(t, err, ndarray.ErrShapeTooLarge)
	require.Nil(t, arr)
}

func Test_At_Returns_Row_Major_Element_When_Index_In_Bounds(t *testing.T) {
	t.Parallel()

	arr := iota2x3(t)

	v, err := arr.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	_, err = arr.At(2, 0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)

	_, err = arr.At(0)
	require.ErrorIs(t, err, ndarray.ErrRankMismatch)
}

func Test_Select_Returns_Expected_Elements_When_Spec_Is_Valid(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		spec      ndarray.SliceSpec
		wantShape ndarray.Shape
		wantData  []int
	}

	testCases := []testCase{
		{
			name:      "FullFull",
			spec:      ndarray.SliceSpec{ndarray.Full(), ndarray.Full()},
			wantShape: ndarray.Shape{2, 3},
			wantData:  []int{0, 1, 2, 3, 4, 5},
		},
		{
			name:      "IndexDropsAxis",
			spec:      ndarray.SliceSpec{ndarray.Index(1), ndarray.Full()},
			wantShape: ndarray.Shape{3},
			wantData:  []int{3, 4, 5},
		},
		{
			name:      "BothIndexedIsScalar",
			spec:      ndarray.SliceSpec{ndarray.Index(0), ndarray.Index(2)},
			wantShape: ndarray.Shape{},
			wantData:  []int{2},
		},
		{
			name:      "SteppedOpenRange",
			spec:      ndarray.SliceSpec{ndarray.Full(), ndarray.RangeFrom(0, 2)},
			wantShape: ndarray.Shape{2, 2},
			wantData:  []int{0, 2, 3, 5},
		},
		{
			name:      "StepBeyondExtent",
			spec:      ndarray.SliceSpec{ndarray.Full(), ndarray.RangeFrom(1, 5)},
			wantShape: ndarray.Shape{2, 1},
			wantData:  []int{1, 4},
		},
		{
			name:      "EmptyRange",
			spec:      ndarray.SliceSpec{ndarray.Range(1, 1, 1), ndarray.Full()},
			wantShape: ndarray.Shape{0, 3},
			wantData:  []int{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := iota2x3(t).Select(testCase.spec)
			require.NoError(t, err)

			if diff := cmp.Diff(testCase.wantShape, got.Shape()); diff != "" {
				t.Fatalf("shape mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(testCase.wantData, got.Data()); diff != "" {
				t.Fatalf("data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_Select_Returns_Error_When_Spec_Is_Invalid(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		spec    ndarray.SliceSpec
		wantErr error
	}

	testCases := []testCase{
		{name: "Rank", spec: ndarray.SliceSpec{ndarray.Full()}, wantErr: ndarray.ErrRankMismatch},
		{name: "Index", spec: ndarray.SliceSpec{ndarray.Index(2), ndarray.Full()}, wantErr: ndarray.ErrIndexOutOfBounds},
		{name: "RangeEnd", spec: ndarray.SliceSpec{ndarray.Full(), ndarray.Range(0, 4, 1)}, wantErr: ndarray.ErrRangeOutOfBounds},
		{name: "Step", spec: ndarray.SliceSpec{ndarray.Full(), ndarray.RangeFrom(0, 0)}, wantErr: ndarray.ErrInvalidStep},
		{name: "Malformed", spec: ndarray.SliceSpec{ndarray.Full(), ndarray.Range(2, 1, 1)}, wantErr: ndarray.ErrMalformedRange},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := iota2x3(t).Select(testCase.spec)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func Test_Select_Applies_Index_To_Empty_Sibling_Axis_When_Extent_Is_Zero(t *testing.T) {
	t.Parallel()

	arr, err := ndarray.FromShapeVec(ndarray.Shape{3, 0}, []int{})
	require.NoError(t, err)

	got, err := arr.Select(ndarray.SliceSpec{ndarray.Index(1), ndarray.Full()})
	require.NoError(t, err)
	require.Equal(t, ndarray.Shape{0}, got.Shape())
	require.Zero(t, got.Len())
}

func Test_Array_Returns_Copies_When_Shape_And_Data_Read(t *testing.T) {
	t.Parallel()

	arr := iota2x3(t)

	shape := arr.Shape()
	shape[0] = 99

	data := arr.Data()
	data[0] = 99

	require.Equal(t, ndarray.Shape{2, 3}, arr.Shape())

	v, err := arr.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}
