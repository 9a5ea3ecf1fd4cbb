package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/lazyinvest/dcasim"
	"github.com/lazyinvest/dcasim/yahoo"
)

type exportCmd struct {
	configFlags
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the per-day breakdown as CSV" }
func (*exportCmd) Usage() string {
	return `export -f scenarios.yaml -o breakdown.csv

  Runs the simulation and writes one denormalized CSV row per simulated day
  and instrument: balances, interest, purchases, and running returns.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.configFlags.SetFlags(f)
	f.StringVar(&c.out, "o", "-", "output file, '-' for stdout")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, title, err := c.Config()
	if err != nil {
		return fail(err)
	}
	prices, err := dcasim.FetchPrices(ctx, cfg, yahoo.New())
	if err != nil {
		return fail(err)
	}
	result, err := dcasim.Simulate(cfg, prices)
	if err != nil {
		return fail(err)
	}

	var w io.Writer = os.Stdout
	if c.out != "-" {
		file, err := os.Create(c.out)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		w = file
	}
	if err := dcasim.WriteCSV(w, dcasim.BuildExport(title, result, prices)); err != nil {
		return fail(err)
	}
	if c.out != "-" {
		fmt.Printf("Wrote %s\n", c.out)
	}
	return subcommands.ExitSuccess
}
