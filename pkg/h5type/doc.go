// Package h5type holds the value types and type descriptors of a typed,
// fixed-layout storage library, as seen by its test fixtures.
//
// The storage engine itself lives elsewhere. This package only models the
// shapes its values take so that generated fixtures and the descriptors the
// engine serializes with can be derived from the same declaration.
//
// # Text encodings
//
// Five text encodings are modelled, each with its own capacity rule:
//
//   - [FixedASCII]: null padded, capacity N bytes, storage size N.
//   - [FixedASCIITerm]: null terminated, capacity N characters, storage
//     size N+1 (one slot is reserved for the terminator).
//   - [FixedUnicode]: UTF-8, capacity N bytes, no NUL scalar.
//   - [VarLenASCII] and [VarLenUnicode]: unbounded length.
//
// Every text type has a checked constructor returning an error (for example
// [NewFixedASCII]) and a Must form that panics when its documented
// precondition does not hold. The Must forms exist for generators that build
// their input to satisfy the precondition.
//
// # Descriptors
//
// A [Descriptor] describes a type's class, size and composition: record
// fields and enum variants may carry an external name ([Field.Rename],
// [Variant.Rename]) that changes only how the storage engine names them.
// [Parse] reads a compact type expression and [Descriptor.String] writes it
// back. [Check] verifies that a dynamic value conforms to a descriptor.
package h5type
