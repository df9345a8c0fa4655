package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/h5fixture/pkg/gen"
)

// ShapeCmd returns the shape command.
func ShapeCmd(sess *session) *Command {
	fs := flag.NewFlagSet("shape", flag.ContinueOnError)
	ndim := fs.Int("ndim", sess.cfg.Ndim, "Number of axes")

	return &Command{
		Flags: fs,
		Usage: "shape [--ndim N]",
		Short: "Generate an array shape",
		Long:  "Generate an array shape of N axes, each extent drawn from [0, 11).",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			err := checkNdim(*ndim)
			if err != nil {
				return err
			}

			o.Println("shape:", gen.GenerateShape(sess.src, *ndim))

			return nil
		},
	}
}
