package gen

// ByteSource is a [Source] that reads its randomness from a byte slice.
//
// Used by fuzz targets so that fuzz input drives generation: the same input
// always produces the same fixtures, and small input mutations steer
// individual decisions. Each draw consumes 8 bytes, little endian.
//
// Once the input is exhausted, draws continue from a fixed splitmix64
// stream rather than returning zeros. A constant stream would keep loops
// that reject a value (such as the NUL scalar) from ever terminating.
type ByteSource struct {
	bytes []byte
	pos   int
	tail  uint64
}

// NewByteSource creates a source over the given bytes.
func NewByteSource(b []byte) *ByteSource {
	return &ByteSource{bytes: b}
}

// HasMore reports whether unread input bytes remain.
func (s *ByteSource) HasMore() bool {
	return s.pos < len(s.bytes)
}

// Uint64 returns the next 8 input bytes as a little-endian value. A
// partially available word is zero padded.
func (s *ByteSource) Uint64() uint64 {
	if !s.HasMore() {
		return s.nextTail()
	}

	var v uint64

	for i := range 8 {
		if s.pos >= len(s.bytes) {
			break
		}

		v |= uint64(s.bytes[s.pos]) << (8 * i)
		s.pos++
	}

	return v
}

// IntN returns Uint64 reduced modulo n. It panics if n <= 0.
func (s *ByteSource) IntN(n int) int {
	if n <= 0 {
		panic("gen: ByteSource.IntN: n must be positive")
	}

	return int(s.Uint64() % uint64(n))
}

// Float64 returns the top 53 bits of Uint64 scaled to [0, 1).
func (s *ByteSource) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Float32 returns the top 24 bits of Uint64 scaled to [0, 1).
func (s *ByteSource) Float32() float32 {
	return float32(s.Uint64()>>40) / (1 << 24)
}

func (s *ByteSource) nextTail() uint64 {
	s.tail += 0x9e3779b97f4a7c15

	z := s.tail
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
