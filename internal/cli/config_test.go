package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/calvinalkan/h5fixture/internal/cli"
)

// Tests for print-config command.

func Test_Print_Config_Defaults_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "seed=1\n")
	cli.AssertContains(t, stdout, "ndim=2\n")
	cli.AssertContains(t, stdout, "count=1\n")
	cli.AssertContains(t, stdout, "type=f64\n")
	cli.AssertContains(t, stdout, "slice.index_rate=0.1\n")
	cli.AssertContains(t, stdout, "slice.open_end_rate=0.5\n")
	cli.AssertContains(t, stdout, "slice.well_formed_end_rate=0.9\n")
	cli.AssertContains(t, stdout, "slice.unit_step_rate=0.9\n")
	cli.AssertContains(t, stdout, "(defaults only)")
}

func Test_Print_Config_From_Config_File_With_Comments_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".h5gen.json", `{
		// fixture defaults for this project
		"seed": 9,
		"slice": {"unit_step_rate": 0.5},
	}`)

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "seed=9")
	cli.AssertContains(t, stdout, "slice.unit_step_rate=0.5")
	cli.AssertContains(t, stdout, "project_config="+filepath.Join(c.Dir, ".h5gen.json"))
}

func Test_Print_Config_Explicit_Config_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("custom.json", `{"type": "vlen<u8>"}`)

	cli.AssertContains(t, c.MustRun("-c", "custom.json", "print-config"), "type=vlen<u8>")
	cli.AssertContains(t, c.MustRun("--config=custom.json", "print-config"), "type=vlen<u8>")
}

func Test_Print_Config_Global_Config_When_XDG_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("xdg/h5gen/config.json", `{"ndim": 4}`)
	c.Env["XDG_CONFIG_HOME"] = filepath.Join(c.Dir, "xdg")

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "ndim=4")
	cli.AssertContains(t, stdout, "global_config="+filepath.Join(c.Dir, "xdg", "h5gen", "config.json"))
}

func Test_Print_Config_Seed_Override_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".h5gen.json", `{"seed": 9}`)

	cli.AssertContains(t, c.MustRun("--seed", "12", "print-config"), "seed=12")
}

// Tests for config errors.

func Test_Config_Explicit_Config_Not_Found_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("-c", "nonexistent.json", "print-config")

	cli.AssertContains(t, stderr, "config file not found")
}

func Test_Config_Invalid_JSON_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".h5gen.json", `{invalid json}`)

	cli.AssertContains(t, c.MustFail("print-config"), "invalid")
}

func Test_Config_Invalid_Values_When_Invoked(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		content string
		want    string
	}

	testCases := []testCase{
		{name: "Rate", content: `{"slice": {"index_rate": 2}}`, want: "index_rate"},
		{name: "Ndim", content: `{"ndim": -3}`, want: "ndim cannot be negative"},
		{name: "NdimTooLarge", content: `{"ndim": 40}`, want: "ndim cannot exceed 32"},
		{name: "Count", content: `{"count": 0}`, want: "count must be at least 1"},
		{name: "Type", content: `{"type": "f128"}`, want: "cannot parse type expression"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			c.WriteFile(".h5gen.json", testCase.content)

			cli.AssertContains(t, c.MustFail("print-config"), testCase.want)
		})
	}
}
