package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/h5fixture/internal/cli"
)

func Test_Repl_Runs_Commands_When_Input_Is_Piped(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	input := strings.Join([]string{
		"# fixtures for the slicing suite",
		"shape --ndim 1",
		"",
		"SEED 5",
		"value -t bool",
		"bogus",
		"print-config",
		"help",
		"exit",
		"shape --ndim 1",
	}, "\n")

	stdout, stderr, code := c.RunWithInput(input, "repl")
	require.Equal(t, 0, code, stderr)

	cli.AssertContains(t, stdout, "seed=5\n")
	cli.AssertContains(t, stdout, "Unknown command: bogus")
	cli.AssertContains(t, stdout, "Unknown command: print-config")
	cli.AssertContains(t, stdout, "Restart the random stream")
	cli.AssertNotContains(t, stdout, "h5gen repl (")
	require.Equal(t, 1, strings.Count(stdout, "shape: ["))
	require.True(t,
		strings.Contains(stdout, "\ntrue\n") || strings.Contains(stdout, "\nfalse\n"),
		stdout)
}

func Test_Repl_Restarts_Stream_When_Reseeded(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	input := "seed 9\nvalue -t u64 -n 2\nseed 9\nvalue -t u64 -n 2\n"

	stdout, stderr, code := c.RunWithInput(input, "repl")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, lines[1:3], lines[4:6])

	direct := c.MustRun("--seed", "9", "value", "-t", "u64", "-n", "2")
	require.Equal(t, strings.Join(lines[1:3], "\n"), direct)
}

func Test_Repl_Continues_Stream_When_Command_Repeats(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, code := c.RunWithInput("value -t u64\nvalue -t u64\n", "--seed", "3", "repl")
	require.Equal(t, 0, code)

	direct := c.MustRun("--seed", "3", "value", "-t", "u64", "-n", "2")
	require.Equal(t, direct, strings.TrimSpace(stdout))
}

func Test_Repl_Reports_Errors_And_Continues_When_Command_Fails(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	input := "seed x\nseed\nvalue -t nope\nshape --ndim 0\n"

	stdout, stderr, code := c.RunWithInput(input, "repl")
	require.Equal(t, 0, code)

	cli.AssertContains(t, stderr, `invalid seed: "x"`)
	cli.AssertContains(t, stderr, "usage: seed <n>")
	cli.AssertContains(t, stderr, "cannot parse type expression")
	cli.AssertContains(t, stdout, "shape: []")
}

func Test_Repl_Exits_Cleanly_When_Input_Is_Empty(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, stderr, code := c.Run("repl")
	require.Equal(t, 0, code, stderr)
	require.Empty(t, stdout)
}
