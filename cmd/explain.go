package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lazyinvest/dcasim"
	"github.com/lazyinvest/dcasim/agent"
	"github.com/lazyinvest/dcasim/renderer"
	"github.com/lazyinvest/dcasim/yahoo"
)

type explainCmd struct {
	configFlags
	plain bool
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "run a simulation and ask Gemini to comment on it" }
func (*explainCmd) Usage() string {
	return `explain -f scenarios.yaml

  Runs the simulation, then sends the rendered report to Gemini for a plain
  language commentary. Requires GEMINI_API_KEY in the environment.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	c.configFlags.SetFlags(f)
	f.BoolVar(&c.plain, "plain", false, "print raw markdown without terminal styling")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, title, err := c.Config()
	if err != nil {
		return fail(err)
	}
	result, err := dcasim.Run(ctx, cfg, yahoo.New())
	if err != nil {
		return fail(err)
	}
	report := renderer.Report(title, result)

	analyst, err := agent.New(ctx)
	if err != nil {
		return fail(fmt.Errorf("starting the analyst: %w", err))
	}
	commentary, err := analyst.Explain(ctx, report)
	if err != nil {
		return fail(err)
	}
	printMarkdown(report, c.plain)
	printMarkdown("## Commentary\n\n"+commentary+"\n", c.plain)
	return subcommands.ExitSuccess
}
