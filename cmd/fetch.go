package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lazyinvest/dcasim"
	"github.com/lazyinvest/dcasim/yahoo"
)

type fetchCmd struct {
	symbol string
	start  string
	end    string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch and print the closing prices of one instrument" }
func (*fetchCmd) Usage() string {
	return `fetch -s VFV.TO -start 2025-01-01 -end 2025-10-31

  Prints the provider's (trading day, close) pairs, useful for inspecting
  what a simulation would consume.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "ticker symbol, required")
	f.StringVar(&c.start, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&c.end, "end", "", "end date (YYYY-MM-DD)")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "-s is required")
		return subcommands.ExitUsageError
	}
	start, err := dcasim.ParseDate(c.start)
	if err != nil {
		return fail(fmt.Errorf("-start: %w", err))
	}
	end, err := dcasim.ParseDate(c.end)
	if err != nil {
		return fail(fmt.Errorf("-end: %w", err))
	}

	series, err := yahoo.New().Fetch(ctx, c.symbol, dcasim.NewRange(start, end))
	if err != nil {
		return fail(err)
	}
	for on, close := range series.Values() {
		fmt.Printf("%s\t%.4f\n", on, close)
	}
	return subcommands.ExitSuccess
}
