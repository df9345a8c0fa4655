// Package gen generates random fixtures for storage round-trip tests:
// values of any type the storage engine maps, array shapes, slice
// selections over those shapes, and fully populated arrays.
//
// # Capabilities
//
// A [Generator] produces values of one type from a [Source]. Leaf
// generators cover integers, floats (including half precision), booleans,
// complex numbers and the five text encodings. Composite generators
// ([Tuple], [Array], [VarLenArray], [OneOf], [Enum], [Record]) call their
// component generators, so arbitrarily nested types compose at compile
// time. [ForType] builds the same generators at run time from an
// [h5type.Descriptor].
//
// Types that know how to generate themselves implement
// Random(Source) T on their value receiver; [Of] turns that into a
// Generator.
//
// # Determinism
//
// Generators draw only from the Source passed to them, in a fixed order:
// composites generate components left to right, depth first. A Source
// seeded the same way therefore yields the same fixtures. Sources are not
// safe for concurrent use; give each goroutine its own.
//
// # Edge cases
//
// [GenerateSlice] mostly produces well-formed, unit-step ranges but keeps a
// small, fixed probability of single-index selections, strided ranges and
// malformed ranges whose end lies before their start. Malformed ranges are
// intended output: they exercise the reader's rejection path.
//
// Precondition violations (negative dimension counts, empty candidate
// lists, tuple arity outside 1..12) panic.
package gen
