// Package cli implements the h5gen command line: fixture generation
// commands, an interactive REPL and config inspection.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/calvinalkan/h5fixture/internal/config"
)

// Error variables for global flag parsing.
var (
	ErrFlagRequiresArg = errors.New("flag requires an argument")
	ErrUnknownFlag     = errors.New("unknown flag")
	ErrInvalidSeed     = errors.New("invalid seed")
)

const (
	consumedNone = 0
	consumedOne  = 1
	consumedTwo  = 2
	helpFlag     = "--help"
)

// Run is the main entry point. Returns exit code.
//
// A value received on sigCh cancels the context handed to the command.
// sigCh may be nil.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	if len(args) == 0 {
		args = []string{"h5gen"}
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, nil)

		return 1
	}

	if len(flags.remaining) == 0 || flags.remaining[0] == helpFlag || flags.remaining[0] == "-h" {
		printUsage(out, commandList(nil, in))

		return 0
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: flags.workDir,
		ConfigPath:      flags.configPath,
		SeedOverride:    flags.seed,
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	sess := newSession(&cfg)
	name := flags.remaining[0]

	cmd, ok := commandMap(sess, in)[name]
	if !ok {
		fprintln(errOut, "error: unknown command:", name)
		printUsage(errOut, commandList(sess, in))

		return 1
	}

	return cmd.Run(ctx, newIO(out, errOut), flags.remaining[1:])
}

// commandList returns all commands in help order.
func commandList(sess *session, in io.Reader) []*Command {
	if sess == nil {
		cfg := config.Default()
		sess = newSession(&cfg)
	}

	return []*Command{
		ShapeCmd(sess),
		SliceCmd(sess),
		ValueCmd(sess),
		ArrayCmd(sess),
		ReplCmd(sess, in),
		PrintConfigCmd(sess.cfg),
	}
}

func commandMap(sess *session, in io.Reader) map[string]*Command {
	cmds := commandList(sess, in)

	m := make(map[string]*Command, len(cmds))
	for _, c := range cmds {
		m[c.Name()] = c
	}

	return m
}

type globalFlags struct {
	workDir    string
	configPath string
	seed       *uint64
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if arg == "-C" || arg == "--cwd" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", ErrFlagRequiresArg, arg)
		}

		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", ErrFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// --seed flag
	if arg == "--seed" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", ErrFlagRequiresArg, arg)
		}

		return consumedTwo, setSeed(flags, args[idx+1])
	}

	if after, ok := strings.CutPrefix(arg, "--seed="); ok {
		return consumedOne, setSeed(flags, after)
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", ErrUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func setSeed(flags *globalFlags, s string) error {
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSeed, s)
	}

	flags.seed = &seed

	return nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, cmds []*Command) {
	fprintln(w, `h5gen - random fixtures for typed array storage tests

Usage: h5gen [options] <command> [args]

Options:
  -C, --cwd <dir>    Run as if started in <dir>
  -c, --config       Use specified config file
  --seed <n>         Seed for the random source`)

	if len(cmds) == 0 {
		return
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, c := range cmds {
		fprintln(w, c.HelpLine())
	}
}
