package testutil

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/calvinalkan/h5fixture/pkg/gen"
	"github.com/calvinalkan/h5fixture/pkg/ndarray"
)

// SeedBuilder builds deterministic byte seeds for [gen.ByteSource] without
// hand-writing raw byte sequences.
//
// Every draw a generator makes from a ByteSource consumes one 8-byte word.
// The builder appends words in the same order the generators consume them,
// so a seed can force specific branches (an Index selector, a malformed
// range, a given text length) in fuzz corpora and tests.
type SeedBuilder struct {
	data []byte
}

// NewSeedBuilder creates an empty builder.
func NewSeedBuilder() *SeedBuilder {
	return &SeedBuilder{}
}

// Bytes returns a copy of the built seed bytes.
func (b *SeedBuilder) Bytes() []byte {
	return append([]byte(nil), b.data...)
}

// Source returns a ByteSource over the built bytes.
func (b *SeedBuilder) Source() *gen.ByteSource {
	return gen.NewByteSource(b.Bytes())
}

// -----------------------------------------------------------------------------
// Raw draws
// -----------------------------------------------------------------------------

// Uint64 appends one raw word.
func (b *SeedBuilder) Uint64(v uint64) *SeedBuilder {
	b.data = binary.LittleEndian.AppendUint64(b.data, v)

	return b
}

// Int appends a word that an IntN(n) draw returns as v, for any n > v.
func (b *SeedBuilder) Int(v int) *SeedBuilder {
	if v < 0 {
		panic(fmt.Sprintf("seed builder: negative int %d", v))
	}

	return b.Uint64(uint64(v))
}

// Bool appends a word that a Bernoulli draw with 0 < p < 1 resolves to v.
func (b *SeedBuilder) Bool(v bool) *SeedBuilder {
	if v {
		return b.Uint64(0)
	}

	return b.Uint64(math.MaxUint64)
}

// -----------------------------------------------------------------------------
// Fixture draws
// -----------------------------------------------------------------------------

// Shape appends the draws GenerateShape makes for the given extents.
func (b *SeedBuilder) Shape(extents ...int) *SeedBuilder {
	for _, e := range extents {
		if e < 0 || e >= gen.MaxExtent {
			panic(fmt.Sprintf("seed builder: extent %d outside [0, %d)", e, gen.MaxExtent))
		}

		b.Int(e)
	}

	return b
}

// Slice appends the draws GenerateSlice makes to produce spec over shape.
func (b *SeedBuilder) Slice(shape ndarray.Shape, spec ndarray.SliceSpec) *SeedBuilder {
	if len(shape) != len(spec) {
		panic(fmt.Sprintf("seed builder: %d selectors for %d axes", len(spec), len(shape)))
	}

	for axis, sel := range spec {
		b.Axis(sel, shape[axis])
	}

	return b
}

// Axis appends the draws that make one axis of the given extent produce
// sel. Panics if the default slice generator can never produce sel.
func (b *SeedBuilder) Axis(sel ndarray.AxisSelector, extent int) *SeedBuilder {
	if extent == 0 {
		if sel != ndarray.Full() {
			panic(fmt.Sprintf("seed builder: empty axis only yields %s, got %s", ndarray.Full(), sel))
		}

		return b
	}

	if sel.Kind == ndarray.KindIndex {
		if sel.Index < 0 || sel.Index >= extent {
			panic(fmt.Sprintf("seed builder: index %d outside [0, %d)", sel.Index, extent))
		}

		return b.Bool(true).Int(sel.Index)
	}

	if sel.Start < 0 || sel.Start >= extent {
		panic(fmt.Sprintf("seed builder: start %d outside [0, %d)", sel.Start, extent))
	}

	b.Bool(false).Int(sel.Start)

	switch {
	case !sel.HasEnd:
		b.Bool(true)
	case sel.End < 0 || sel.End >= extent:
		panic(fmt.Sprintf("seed builder: end %d outside [0, %d)", sel.End, extent))
	case sel.End >= sel.Start:
		b.Bool(false).Bool(true).Int(sel.End - sel.Start)
	default:
		b.Bool(false).Bool(false).Int(sel.End)
	}

	if sel.Step == 1 {
		return b.Bool(true)
	}

	if sel.Step < 1 || sel.Step >= 2*extent {
		panic(fmt.Sprintf("seed builder: step %d outside [1, %d)", sel.Step, 2*extent))
	}

	return b.Bool(false).Int(sel.Step - 1)
}

// ASCII appends the draws FixedASCII, FixedASCIITerm and VarLenASCII make
// to produce s: the length, then one draw per byte.
func (b *SeedBuilder) ASCII(s string) *SeedBuilder {
	b.Int(len(s))

	for i := range len(s) {
		if s[i] > 127 {
			panic(fmt.Sprintf("seed builder: non-ascii byte 0x%02x", s[i]))
		}

		b.Int(int(s[i]))
	}

	return b
}
