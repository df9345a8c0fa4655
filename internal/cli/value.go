package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/h5fixture/pkg/gen"
	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

// ValueCmd returns the value command.
func ValueCmd(sess *session) *Command {
	fs := flag.NewFlagSet("value", flag.ContinueOnError)
	typeExpr := fs.StringP("type", "t", "", "Type expression (default from config)")
	count := fs.IntP("count", "n", sess.cfg.Count, "Number of values")
	check := fs.Bool("check", false, "Verify each value against the type before printing")

	return &Command{
		Flags: fs,
		Usage: "value [--type T] [--count N] [--check]",
		Short: "Generate values of a type",
		Long: `Generate random values of a type and print them as JSON lines.

Type expressions: i8..i64, u8..u64, f16, f32, f64, bool, c64, c128,
ascii[N], asciiz[N], unicode[N], vascii, vunicode, [T; N], vlen<T>,
(T, U, ...), enum<i16>{X = -2, Y as "coord.y" = 3},
struct{first: i32, second as "field.second": i64}.

Record fields and enum variants are printed under their external names.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			return execValue(ctx, o, sess, *typeExpr, *count, *check)
		},
	}
}

func execValue(ctx context.Context, o *IO, sess *session, typeExpr string, count int, check bool) error {
	if count < 1 {
		return fmt.Errorf("--count must be at least 1 (got %d)", count)
	}

	d, err := sess.descriptor(typeExpr)
	if err != nil {
		return err
	}

	g, err := gen.ForType(d)
	if err != nil {
		return err
	}

	for i := range count {
		if ctx.Err() != nil {
			return fmt.Errorf("interrupted after %d values: %w", i, ctx.Err())
		}

		v := g.Generate(sess.src)

		if check {
			err = h5type.Check(d, v)
			if err != nil {
				return fmt.Errorf("value %d: %w", i, err)
			}
		}

		line, err := marshalValue(d, v)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}

		o.Println(line)
	}

	return nil
}
