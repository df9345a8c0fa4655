package gen

// Generator produces random values of type T.
type Generator[T any] interface {
	Generate(src Source) T
}

// Func adapts a plain function to [Generator].
type Func[T any] func(src Source) T

// Generate calls f(src).
func (f Func[T]) Generate(src Source) T { return f(src) }

// Randomizer is implemented by types that generate themselves. Random is
// called on the zero value and must not depend on the receiver.
type Randomizer[T any] interface {
	Random(src Source) T
}

// Of returns the generator of a self-describing type.
func Of[T Randomizer[T]]() Generator[T] {
	return Func[T](func(src Source) T {
		var zero T

		return zero.Random(src)
	})
}

// Erase hides g's element type so it can take part in heterogeneous
// composites such as [Tuple] and [Record].
func Erase[T any](g Generator[T]) Generator[any] {
	return Func[any](func(src Source) any {
		return g.Generate(src)
	})
}

// Vec generates n independent values in order.
func Vec[T any](src Source, g Generator[T], n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = g.Generate(src)
	}

	return out
}
