package h5type

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxASCII = 127

// FixedASCII is a null-padded ASCII string stored inline in exactly
// Capacity bytes.
type FixedASCII struct {
	capacity int
	data     []byte
}

// NewFixedASCII copies b into a FixedASCII of the given capacity.
// Returns [ErrCapacityExceeded] if len(b) > capacity and [ErrNotASCII] if any
// byte is above 127.
func NewFixedASCII(capacity int, b []byte) (FixedASCII, error) {
	err := checkASCII(capacity, b)
	if err != nil {
		return FixedASCII{}, err
	}

	return FixedASCII{capacity: capacity, data: bytes.Clone(b)}, nil
}

// MustFixedASCII is like [NewFixedASCII] but panics on invalid input.
//
// Precondition: len(b) <= capacity and every byte of b is in [0, 127].
func MustFixedASCII(capacity int, b []byte) FixedASCII {
	v, err := NewFixedASCII(capacity, b)
	if err != nil {
		panic("h5type: MustFixedASCII: " + err.Error())
	}

	return v
}

// Capacity returns the declared capacity in bytes.
func (s FixedASCII) Capacity() int { return s.capacity }

// Len returns the number of stored bytes.
func (s FixedASCII) Len() int { return len(s.data) }

// StorageSize is the inline size the storage engine reserves.
func (s FixedASCII) StorageSize() int { return s.capacity }

// Bytes returns a copy of the stored bytes.
func (s FixedASCII) Bytes() []byte { return bytes.Clone(s.data) }

func (s FixedASCII) String() string { return string(s.data) }

// Equal reports whether both values have the same capacity and content.
func (s FixedASCII) Equal(o FixedASCII) bool {
	return s.capacity == o.capacity && bytes.Equal(s.data, o.data)
}

// FixedASCIITerm is a null-terminated ASCII string holding up to Capacity
// characters. The storage engine reserves one extra byte for the terminator,
// so StorageSize is Capacity+1.
type FixedASCIITerm struct {
	capacity int
	data     []byte
}

// NewFixedASCIITerm copies b into a FixedASCIITerm of the given capacity.
// Errors are the same as for [NewFixedASCII].
func NewFixedASCIITerm(capacity int, b []byte) (FixedASCIITerm, error) {
	err := checkASCII(capacity, b)
	if err != nil {
		return FixedASCIITerm{}, err
	}

	return FixedASCIITerm{capacity: capacity, data: bytes.Clone(b)}, nil
}

// MustFixedASCIITerm is like [NewFixedASCIITerm] but panics on invalid input.
//
// Precondition: len(b) <= capacity and every byte of b is in [0, 127].
func MustFixedASCIITerm(capacity int, b []byte) FixedASCIITerm {
	v, err := NewFixedASCIITerm(capacity, b)
	if err != nil {
		panic("h5type: MustFixedASCIITerm: " + err.Error())
	}

	return v
}

// Capacity returns the declared capacity in characters.
func (s FixedASCIITerm) Capacity() int { return s.capacity }

// Len returns the number of stored bytes.
func (s FixedASCIITerm) Len() int { return len(s.data) }

// StorageSize is the inline size including the terminator slot.
func (s FixedASCIITerm) StorageSize() int { return s.capacity + 1 }

// Bytes returns a copy of the stored bytes.
func (s FixedASCIITerm) Bytes() []byte { return bytes.Clone(s.data) }

func (s FixedASCIITerm) String() string { return string(s.data) }

// Equal reports whether both values have the same capacity and content.
func (s FixedASCIITerm) Equal(o FixedASCIITerm) bool {
	return s.capacity == o.capacity && bytes.Equal(s.data, o.data)
}

// FixedUnicode is a UTF-8 string stored inline in Capacity bytes.
type FixedUnicode struct {
	capacity int
	s        string
}

// NewFixedUnicode returns a FixedUnicode of the given byte capacity.
// Returns [ErrCapacityExceeded], [ErrInvalidUTF8] or [ErrNulScalar].
func NewFixedUnicode(capacity int, s string) (FixedUnicode, error) {
	if capacity < 0 {
		return FixedUnicode{}, ErrNegativeCapacity
	}

	if len(s) > capacity {
		return FixedUnicode{}, fmt.Errorf("%w: %d bytes > %d", ErrCapacityExceeded, len(s), capacity)
	}

	err := checkUnicode(s)
	if err != nil {
		return FixedUnicode{}, err
	}

	return FixedUnicode{capacity: capacity, s: s}, nil
}

// MustFixedUnicode is like [NewFixedUnicode] but panics on invalid input.
//
// Precondition: s is valid UTF-8, holds no NUL scalar and
// len(s) <= capacity.
func MustFixedUnicode(capacity int, s string) FixedUnicode {
	v, err := NewFixedUnicode(capacity, s)
	if err != nil {
		panic("h5type: MustFixedUnicode: " + err.Error())
	}

	return v
}

// Capacity returns the declared capacity in bytes.
func (s FixedUnicode) Capacity() int { return s.capacity }

// Len returns the encoded length in bytes.
func (s FixedUnicode) Len() int { return len(s.s) }

// StorageSize is the inline size the storage engine reserves.
func (s FixedUnicode) StorageSize() int { return s.capacity }

func (s FixedUnicode) String() string { return s.s }

// Equal reports whether both values have the same capacity and content.
func (s FixedUnicode) Equal(o FixedUnicode) bool {
	return s.capacity == o.capacity && s.s == o.s
}

// VarLenASCII is an ASCII string of any length, stored out of line.
type VarLenASCII struct {
	data []byte
}

// NewVarLenASCII copies b into a VarLenASCII.
// Returns [ErrNotASCII] if any byte is above 127.
func NewVarLenASCII(b []byte) (VarLenASCII, error) {
	err := checkASCII(len(b), b)
	if err != nil {
		return VarLenASCII{}, err
	}

	return VarLenASCII{data: bytes.Clone(b)}, nil
}

// MustVarLenASCII is like [NewVarLenASCII] but panics on invalid input.
//
// Precondition: every byte of b is in [0, 127].
func MustVarLenASCII(b []byte) VarLenASCII {
	v, err := NewVarLenASCII(b)
	if err != nil {
		panic("h5type: MustVarLenASCII: " + err.Error())
	}

	return v
}

// Len returns the number of stored bytes.
func (s VarLenASCII) Len() int { return len(s.data) }

// Bytes returns a copy of the stored bytes.
func (s VarLenASCII) Bytes() []byte { return bytes.Clone(s.data) }

func (s VarLenASCII) String() string { return string(s.data) }

// Equal reports whether both values hold the same bytes.
func (s VarLenASCII) Equal(o VarLenASCII) bool { return bytes.Equal(s.data, o.data) }

// VarLenUnicode is a UTF-8 string of any length, stored out of line.
type VarLenUnicode struct {
	s string
}

// NewVarLenUnicode returns a VarLenUnicode.
// Returns [ErrInvalidUTF8] or [ErrNulScalar].
func NewVarLenUnicode(s string) (VarLenUnicode, error) {
	err := checkUnicode(s)
	if err != nil {
		return VarLenUnicode{}, err
	}

	return VarLenUnicode{s: s}, nil
}

// MustVarLenUnicode is like [NewVarLenUnicode] but panics on invalid input.
//
// Precondition: s is valid UTF-8 and holds no NUL scalar.
func MustVarLenUnicode(s string) VarLenUnicode {
	v, err := NewVarLenUnicode(s)
	if err != nil {
		panic("h5type: MustVarLenUnicode: " + err.Error())
	}

	return v
}

// Len returns the encoded length in bytes.
func (s VarLenUnicode) Len() int { return len(s.s) }

// RuneCount returns the number of scalar values.
func (s VarLenUnicode) RuneCount() int { return utf8.RuneCountInString(s.s) }

func (s VarLenUnicode) String() string { return s.s }

// Equal reports whether both values hold the same string.
func (s VarLenUnicode) Equal(o VarLenUnicode) bool { return s.s == o.s }

func checkASCII(capacity int, b []byte) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	if len(b) > capacity {
		return fmt.Errorf("%w: %d bytes > %d", ErrCapacityExceeded, len(b), capacity)
	}

	for i, c := range b {
		if c > maxASCII {
			return fmt.Errorf("%w: 0x%02x at %d", ErrNotASCII, c, i)
		}
	}

	return nil
}

func checkUnicode(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}

	if i := strings.IndexByte(s, 0); i >= 0 {
		return fmt.Errorf("%w: at byte %d", ErrNulScalar, i)
	}

	return nil
}
