package cli

import (
	"fmt"
	"io"
)

// IO handles command output. Results go to out, diagnostics to errOut.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

func newIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn reports a problem that does not fail the command.
func (o *IO) Warn(issue string, detail string) {
	_, _ = fmt.Fprintf(o.errOut, "warning: %s: %s\n", issue, detail)
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}
