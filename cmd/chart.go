package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lazyinvest/dcasim"
	"github.com/lazyinvest/dcasim/chart"
	"github.com/lazyinvest/dcasim/yahoo"
)

type chartCmd struct {
	configFlags
	out string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the balance and portfolio histories as a PNG" }
func (*chartCmd) Usage() string {
	return `chart -f scenarios.yaml -o chart.png

  Runs the simulation and draws the daily savings balance, portfolio value,
  and their total as a line chart.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.configFlags.SetFlags(f)
	f.StringVar(&c.out, "o", "chart.png", "output PNG file")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, title, err := c.Config()
	if err != nil {
		return fail(err)
	}
	result, err := dcasim.Run(ctx, cfg, yahoo.New())
	if err != nil {
		return fail(err)
	}
	img, err := chart.Render(title, result)
	if err != nil {
		return fail(err)
	}
	if err := os.WriteFile(c.out, img, 0644); err != nil {
		return fail(err)
	}
	fmt.Printf("Wrote %s\n", c.out)
	return subcommands.ExitSuccess
}
