package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
)

// replCommands are the commands the REPL dispatches to.
var replCommands = []string{"shape", "slice", "value", "array"}

// ReplCmd returns the repl command. in is read line by line; when it is a
// terminal, lines are edited with liner and kept in a history file.
func ReplCmd(sess *session, in io.Reader) *Command {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	history := fs.String("history", defaultHistoryFile(), "History file (empty disables history)")

	return &Command{
		Flags: fs,
		Usage: "repl [--history file]",
		Short: "Interactive fixture shell",
		Long: `Start an interactive shell. Commands share one random stream, so
repeating a command continues the sequence; "seed N" restarts it.

Type 'help' inside the shell for the command list.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			r := &repl{sess: sess, in: in, history: *history}

			return r.run(ctx, o)
		},
	}
}

// defaultHistoryFile returns ~/.h5gen_history, or "" if there is no home.
func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".h5gen_history")
}

// lineReader is the subset of liner.State the REPL uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// scanReader reads lines from a non-terminal input without prompting.
type scanReader struct {
	sc *bufio.Scanner
}

func (s *scanReader) Prompt(string) (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}

	if err := s.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (s *scanReader) AppendHistory(string) {}

func (s *scanReader) Close() error { return nil }

type repl struct {
	sess    *session
	in      io.Reader
	history string
	liner   *liner.State
}

func (r *repl) run(ctx context.Context, o *IO) error {
	var lines lineReader

	if f, ok := r.in.(*os.File); ok && isTerminal(f.Fd()) {
		r.liner = liner.NewLiner()
		r.liner.SetCtrlCAborts(true)
		r.liner.SetCompleter(completer)
		r.loadHistory()

		lines = r.liner

		o.Printf("h5gen repl (seed=%d, type=%s)\n", r.sess.cfg.Seed, r.sess.cfg.Type)
		o.Println("Type 'help' for available commands.")
		o.Println()
	} else {
		in := r.in
		if in == nil {
			in = strings.NewReader("")
		}

		lines = &scanReader{sc: bufio.NewScanner(in)}
	}

	defer func() { _ = lines.Close() }()

	for ctx.Err() == nil {
		line, err := lines.Prompt("h5gen> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines.AppendHistory(line)

		if !r.dispatch(ctx, o, strings.Fields(line)) {
			break
		}
	}

	r.saveHistory(o)

	return nil
}

// dispatch runs one REPL line. Returns false when the REPL should exit.
func (r *repl) dispatch(ctx context.Context, o *IO, parts []string) bool {
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "exit", "quit", "q":
		return false

	case "help", "?":
		printReplHelp(o)

	case "seed":
		if len(args) != 1 {
			o.ErrPrintln("error: usage: seed <n>")

			return true
		}

		seed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			o.ErrPrintln("error:", fmt.Errorf("%w: %q", ErrInvalidSeed, args[0]))

			return true
		}

		r.sess.reseed(seed)
		o.Println("seed=" + args[0])

	default:
		c, ok := commandMap(r.sess, nil)[cmd]
		if !ok || !isReplCommand(cmd) {
			o.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)

			return true
		}

		// Errors are printed by Run; the REPL keeps going.
		_ = c.Run(ctx, o, args)
	}

	return true
}

func isReplCommand(name string) bool {
	for _, c := range replCommands {
		if c == name {
			return true
		}
	}

	return false
}

func (r *repl) loadHistory() {
	if r.history == "" {
		return
	}

	if f, err := os.Open(r.history); err == nil {
		_, _ = r.liner.ReadHistory(f)
		_ = f.Close()
	}
}

// saveHistory persists command history to disk.
func (r *repl) saveHistory(o *IO) {
	if r.liner == nil || r.history == "" {
		return
	}

	f, err := os.Create(r.history)
	if err != nil {
		o.Warn("cannot save history", err.Error())

		return
	}

	_, _ = r.liner.WriteHistory(f)
	_ = f.Close()
}

// completer provides tab completion for commands.
func completer(line string) []string {
	commands := append([]string{"seed", "help", "exit", "quit", "q"}, replCommands...)

	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func printReplHelp(o *IO) {
	o.Println("Commands:")
	o.Println("  shape [--ndim N]                         Generate a shape")
	o.Println("  slice [--ndim N | --shape S] [--apply]   Generate a slice")
	o.Println("  value [--type T] [--count N] [--check]   Generate values")
	o.Println("  array [--type T] [--ndim N] [-o file]    Generate an array")
	o.Println("  seed <n>                                 Restart the random stream")
	o.Println("  help                                     Show this help")
	o.Println("  exit / quit / q                          Exit")
}
