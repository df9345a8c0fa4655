package cli

import (
	"context"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/h5fixture/internal/config"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *config.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			execPrintConfig(o, cfg)

			return nil
		},
	}
}

func execPrintConfig(o *IO, cfg *config.Config) {
	o.Println("seed=" + strconv.FormatUint(cfg.Seed, 10))
	o.Println("ndim=" + strconv.Itoa(cfg.Ndim))
	o.Println("count=" + strconv.Itoa(cfg.Count))
	o.Println("type=" + cfg.Type)
	o.Println("slice.index_rate=" + formatRate(cfg.Slice.IndexRate))
	o.Println("slice.open_end_rate=" + formatRate(cfg.Slice.OpenEndRate))
	o.Println("slice.well_formed_end_rate=" + formatRate(cfg.Slice.WellFormedEndRate))
	o.Println("slice.unit_step_rate=" + formatRate(cfg.Slice.UnitStepRate))

	o.Println("")
	o.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		o.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			o.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			o.Println("project_config=" + cfg.Sources.Project)
		}
	}
}

func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}
