package cli

import (
	"context"
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/h5fixture/pkg/gen"
	"github.com/calvinalkan/h5fixture/pkg/ndarray"
)

// SliceCmd returns the slice command.
func SliceCmd(sess *session) *Command {
	fs := flag.NewFlagSet("slice", flag.ContinueOnError)
	ndim := fs.Int("ndim", sess.cfg.Ndim, "Number of axes of the generated shape")
	shapeStr := fs.String("shape", "", "Use this shape instead of generating one (e.g. 3,0,4)")
	apply := fs.Bool("apply", false, "Select the slice from a generated f64 array")

	return &Command{
		Flags: fs,
		Usage: "slice [--ndim N | --shape S] [--apply]",
		Short: "Generate a slice selection",
		Long: `Generate a shape (or use --shape) and a slice over it.

Malformed ranges (end before start) are generated on purpose. With --apply
the slice is selected from an f64 array of the shape and the selected
shape or the rejection is printed.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execSlice(o, sess, *ndim, *shapeStr, fs.Changed("shape"), *apply)
		},
	}
}

func execSlice(o *IO, sess *session, ndim int, shapeStr string, hasShape bool, apply bool) error {
	var shape ndarray.Shape

	if hasShape {
		var err error

		shape, err = parseShape(shapeStr)
		if err != nil {
			return err
		}
	} else {
		err := checkNdim(ndim)
		if err != nil {
			return err
		}

		shape = gen.GenerateShape(sess.src, ndim)
	}

	spec := gen.GenerateSliceWith(sess.src, shape, sess.cfg.Slice)

	o.Println("shape:", shape)
	o.Println("slice:", spec)

	if !apply {
		return nil
	}

	size, err := checkArraySize(shape)
	if err != nil {
		return err
	}

	arr, err := ndarray.FromShapeVec(shape, gen.Vec(sess.src, gen.Float64(), size))
	if err != nil {
		return err
	}

	selected, err := arr.Select(spec)

	switch {
	case err == nil:
		o.Println("selected:", selected.Shape())
	case errors.Is(err, ndarray.ErrMalformedRange):
		o.Println("rejected:", err)
	default:
		return err
	}

	return nil
}
