package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/lazyinvest/dcasim"
	"github.com/lazyinvest/dcasim/renderer"
	"github.com/lazyinvest/dcasim/yahoo"
)

type runCmd struct {
	configFlags
	plain bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run a DCA simulation and print the report" }
func (*runCmd) Usage() string {
	return `run -initial 26000 -rate 4.5 -amount 500 -frequency weekly -alloc VFV.TO -start 2025-01-01 -end 2025-10-31
run -f scenarios.yaml [-name dca-weekly]

  Simulates the dollar-cost-averaging strategy day by day and prints the
  summary, breakdown, and investment history.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	c.configFlags.SetFlags(f)
	f.BoolVar(&c.plain, "plain", false, "print raw markdown without terminal styling")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, title, err := c.Config()
	if err != nil {
		return fail(err)
	}
	result, err := dcasim.Run(ctx, cfg, yahoo.New())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Report(title, result), c.plain)
	return subcommands.ExitSuccess
}
