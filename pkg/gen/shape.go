package gen

import (
	"fmt"

	"github.com/calvinalkan/h5fixture/pkg/ndarray"
)

// MaxExtent is the exclusive upper bound of generated axis extents.
const MaxExtent = 11

// SliceConfig tunes the branch probabilities of [GenerateSliceWith].
// All rates are probabilities in [0, 1].
//
// The conditioning order is fixed: index vs range first, then whether the
// end is open, then whether a bounded end is well formed, then the step.
type SliceConfig struct {
	// IndexRate is the probability that a non-empty axis gets an Index
	// selector. Default: 0.1.
	IndexRate float64 `json:"index_rate"`

	// OpenEndRate is the probability that a range runs to the end of the
	// axis. Default: 0.5.
	OpenEndRate float64 `json:"open_end_rate"`

	// WellFormedEndRate is the probability that a bounded end is drawn
	// from [start, extent). Otherwise it is drawn from [0, extent) and may
	// fall below start. Default: 0.9.
	WellFormedEndRate float64 `json:"well_formed_end_rate"`

	// UnitStepRate is the probability of step 1. Otherwise the step is
	// drawn from [1, 2*extent). Default: 0.9.
	UnitStepRate float64 `json:"unit_step_rate"`
}

// DefaultSliceConfig returns the rates [GenerateSlice] uses.
func DefaultSliceConfig() SliceConfig {
	return SliceConfig{
		IndexRate:         0.1,
		OpenEndRate:       0.5,
		WellFormedEndRate: 0.9,
		UnitStepRate:      0.9,
	}
}

// Validate returns [ErrInvalidRate] if any rate lies outside [0, 1].
func (c SliceConfig) Validate() error {
	rates := []struct {
		name string
		v    float64
	}{
		{"index_rate", c.IndexRate},
		{"open_end_rate", c.OpenEndRate},
		{"well_formed_end_rate", c.WellFormedEndRate},
		{"unit_step_rate", c.UnitStepRate},
	}

	for _, r := range rates {
		if !(r.v >= 0 && r.v <= 1) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidRate, r.name, r.v)
		}
	}

	return nil
}

// GenerateShape draws ndim extents uniformly from [0, [MaxExtent]).
// ndim 0 yields an empty (0-dimensional) shape. It panics if ndim is
// negative.
func GenerateShape(src Source, ndim int) ndarray.Shape {
	if ndim < 0 {
		panic(fmt.Sprintf("gen: GenerateShape: negative ndim %d", ndim))
	}

	shape := make(ndarray.Shape, ndim)
	for i := range shape {
		shape[i] = src.IntN(MaxExtent)
	}

	return shape
}

// GenerateSlice draws one selector per axis of shape using
// [DefaultSliceConfig].
//
// A selector on an axis of extent e is a malformed range (end < start)
// with probability 0.9 * 0.5 * 0.1 * (e-1)/(2e): range, bounded, unchecked
// end, end below start. That is 0.02025 for e = 10. These are intended
// outputs that exercise the consumer's rejection path.
func GenerateSlice(src Source, shape ndarray.Shape) ndarray.SliceSpec {
	return GenerateSliceWith(src, shape, DefaultSliceConfig())
}

// GenerateSliceWith is [GenerateSlice] with custom rates. It panics if cfg
// is invalid or shape holds a negative extent.
func GenerateSliceWith(src Source, shape ndarray.Shape, cfg SliceConfig) ndarray.SliceSpec {
	err := cfg.Validate()
	if err != nil {
		panic("gen: GenerateSliceWith: " + err.Error())
	}

	spec := make(ndarray.SliceSpec, len(shape))
	for axis, extent := range shape {
		if extent < 0 {
			panic(fmt.Sprintf("gen: GenerateSliceWith: axis %d has negative extent %d", axis, extent))
		}

		spec[axis] = generateAxis(src, extent, cfg)
	}

	return spec
}

func generateAxis(src Source, extent int, cfg SliceConfig) ndarray.AxisSelector {
	if extent == 0 {
		return ndarray.Full()
	}

	if Bernoulli(src, cfg.IndexRate) {
		return ndarray.Index(src.IntN(extent))
	}

	start := src.IntN(extent)

	hasEnd := false
	end := 0

	if !Bernoulli(src, cfg.OpenEndRate) {
		hasEnd = true

		if Bernoulli(src, cfg.WellFormedEndRate) {
			end = IntRange(src, start, extent)
		} else {
			end = src.IntN(extent)
		}
	}

	step := 1
	if !Bernoulli(src, cfg.UnitStepRate) {
		step = IntRange(src, 1, 2*extent)
	}

	if hasEnd {
		return ndarray.Range(start, end, step)
	}

	return ndarray.RangeFrom(start, step)
}
