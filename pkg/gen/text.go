package gen

import (
	"strings"
	"unicode/utf8"

	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

// maxVarLen bounds the length drawn for variable-length text and arrays.
const maxVarLen = 8

const (
	surrogateLo    = 0xD800
	surrogateCount = 0x800
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// FixedASCII generates text of length [0, capacity] with bytes in [0, 127].
// It panics if capacity is negative.
func FixedASCII(capacity int) Generator[h5type.FixedASCII] {
	mustCapacity("FixedASCII", capacity)

	return Func[h5type.FixedASCII](func(src Source) h5type.FixedASCII {
		return h5type.MustFixedASCII(capacity, asciiBytes(src, IntRangeInclusive(src, 0, capacity)))
	})
}

// FixedASCIITerm is [FixedASCII] for the null-terminated encoding. The
// drawn length counts text only; the terminator is not part of capacity.
func FixedASCIITerm(capacity int) Generator[h5type.FixedASCIITerm] {
	mustCapacity("FixedASCIITerm", capacity)

	return Func[h5type.FixedASCIITerm](func(src Source) h5type.FixedASCIITerm {
		return h5type.MustFixedASCIITerm(capacity, asciiBytes(src, IntRangeInclusive(src, 0, capacity)))
	})
}

// FixedUnicode generates UTF-8 text whose byte length stays strictly below
// a target drawn from [0, capacity].
//
// Scalars are drawn at most target times. NUL draws are skipped, and
// generation stops at the first scalar that would reach the target, so the
// result is often shorter than the target.
func FixedUnicode(capacity int) Generator[h5type.FixedUnicode] {
	mustCapacity("FixedUnicode", capacity)

	return Func[h5type.FixedUnicode](func(src Source) h5type.FixedUnicode {
		target := IntRangeInclusive(src, 0, capacity)

		var b strings.Builder

		for range target {
			r := unicodeScalar(src)
			if r == 0 {
				continue
			}

			if b.Len()+utf8.RuneLen(r) >= target {
				break
			}

			b.WriteRune(r)
		}

		return h5type.MustFixedUnicode(capacity, b.String())
	})
}

// VarLenASCII generates 0 to 8 bytes in [0, 127].
func VarLenASCII() Generator[h5type.VarLenASCII] {
	return Func[h5type.VarLenASCII](func(src Source) h5type.VarLenASCII {
		return h5type.MustVarLenASCII(asciiBytes(src, IntRangeInclusive(src, 0, maxVarLen)))
	})
}

// VarLenUnicode draws a target in [0, 8] and appends non-NUL scalars until
// the byte length reaches it. The last scalar may overshoot the target, so
// the result can exceed 8 bytes but never holds more than 8 scalars.
func VarLenUnicode() Generator[h5type.VarLenUnicode] {
	return Func[h5type.VarLenUnicode](func(src Source) h5type.VarLenUnicode {
		target := IntRangeInclusive(src, 0, maxVarLen)

		var b strings.Builder

		for b.Len() < target {
			r := unicodeScalar(src)
			if r != 0 {
				b.WriteRune(r)
			}
		}

		return h5type.MustVarLenUnicode(b.String())
	})
}

// Alphanumeric returns n characters drawn from [A-Za-z0-9].
func Alphanumeric(src Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[src.IntN(len(alphanumeric))]
	}

	return string(b)
}

// unicodeScalar returns a uniform Unicode scalar value, surrogates excluded.
func unicodeScalar(src Source) rune {
	n := src.IntN(utf8.MaxRune + 1 - surrogateCount)
	if n >= surrogateLo {
		n += surrogateCount
	}

	return rune(n)
}

func asciiBytes(src Source, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(src.IntN(128))
	}

	return b
}

func mustCapacity(name string, capacity int) {
	if capacity < 0 {
		panic("gen: " + name + ": negative capacity")
	}
}
