package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/h5fixture/pkg/gen"
)

// ArrayCmd returns the array command.
func ArrayCmd(sess *session) *Command {
	fs := flag.NewFlagSet("array", flag.ContinueOnError)
	typeExpr := fs.StringP("type", "t", "", "Element type expression (default from config)")
	ndim := fs.Int("ndim", sess.cfg.Ndim, "Number of axes")
	output := fs.StringP("output", "o", "", "Write the array to this file instead of stdout")

	return &Command{
		Flags: fs,
		Usage: "array [--type T] [--ndim N] [-o file]",
		Short: "Generate a populated array",
		Long: `Generate a shape of N axes and fill it with random values of a type in
row-major order. Prints a JSON object with "type", "shape" and "data".
With -o the file is replaced atomically.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			return execArray(ctx, o, sess, *typeExpr, *ndim, *output)
		},
	}
}

func execArray(ctx context.Context, o *IO, sess *session, typeExpr string, ndim int, output string) error {
	err := checkArrayNdim(ndim)
	if err != nil {
		return err
	}

	d, err := sess.descriptor(typeExpr)
	if err != nil {
		return err
	}

	g, err := gen.ForType(d)
	if err != nil {
		return err
	}

	shape, arr := gen.Materialize(sess.src, g, ndim)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	data, err := encodeElems(d, arr.Data())
	if err != nil {
		return err
	}

	doc := orderedObject{
		{key: "type", value: d.String()},
		{key: "shape", value: []int(shape)},
		{key: "data", value: data},
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	if output == "" {
		o.Println(string(b))

		return nil
	}

	path := output
	if !filepath.IsAbs(path) {
		path = filepath.Join(sess.cfg.EffectiveCwd, path)
	}

	err = atomic.WriteFile(path, bytes.NewReader(append(b, '\n')))
	if err != nil {
		return fmt.Errorf("cannot write %s: %w", output, err)
	}

	o.Printf("wrote %s (shape %s, %d elements)\n", path, shape, arr.Len())

	return nil
}
