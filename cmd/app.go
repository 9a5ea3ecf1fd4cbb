// Package cmd implements the CLI application to run DCA simulations.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lazyinvest/dcasim"
)

// Commands lists every subcommand of the dcas binary. A main package
// registers them and executes the user-selected one.
var Commands = []subcommands.Command{
	&runCmd{},
	&compareCmd{},
	&exportCmd{},
	&chartCmd{},
	&fetchCmd{},
	&explainCmd{},
}

// configFlags holds the simulation parameters shared by the commands that
// run a simulation. A scenario file overrides the individual flags.
type configFlags struct {
	initial   float64
	rate      float64
	amount    float64
	frequency string
	alloc     string
	start     string
	end       string
	currency  string
	scenario  string
	name      string
}

func (c *configFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "initial", 0, "initial savings balance")
	f.Float64Var(&c.rate, "rate", 0, "annual savings interest rate in percent")
	f.Float64Var(&c.amount, "amount", 0, "amount invested each period, 0 for savings-only")
	f.StringVar(&c.frequency, "frequency", "weekly", "investment cadence: 'twice a week', weekly, 'every two weeks', monthly")
	f.StringVar(&c.alloc, "alloc", "", "portfolio allocation, e.g. 'VFV.TO=0.6,QCN.TO=0.4' or a single ticker")
	f.StringVar(&c.start, "start", "", "simulation start date (YYYY-MM-DD)")
	f.StringVar(&c.end, "end", "", "simulation end date (YYYY-MM-DD)")
	f.StringVar(&c.currency, "currency", "", "display currency (default USD)")
	f.StringVar(&c.scenario, "f", "", "scenario file (YAML); overrides the other flags")
	f.StringVar(&c.name, "name", "", "scenario name to pick from the file (default: the first)")
}

// Config resolves the flags, or the scenario file when -f is given, into a
// validated configuration and a display title.
func (c *configFlags) Config() (dcasim.SimulationConfig, string, error) {
	if c.scenario != "" {
		scenarios, err := dcasim.LoadScenarios(c.scenario)
		if err != nil {
			return dcasim.SimulationConfig{}, "", err
		}
		if c.name == "" {
			return scenarios[0].SimulationConfig, scenarios[0].Name, nil
		}
		for _, sc := range scenarios {
			if sc.Name == c.name {
				return sc.SimulationConfig, sc.Name, nil
			}
		}
		return dcasim.SimulationConfig{}, "", fmt.Errorf("scenario %q not found in %s", c.name, c.scenario)
	}

	allocation, err := parseAllocation(c.alloc)
	if err != nil {
		return dcasim.SimulationConfig{}, "", err
	}
	var start, end dcasim.Date
	if start, err = dcasim.ParseDate(c.start); err != nil {
		return dcasim.SimulationConfig{}, "", fmt.Errorf("-start: %w", err)
	}
	if end, err = dcasim.ParseDate(c.end); err != nil {
		return dcasim.SimulationConfig{}, "", fmt.Errorf("-end: %w", err)
	}
	cfg := dcasim.SimulationConfig{
		InitialCash: c.initial,
		AnnualRate:  c.rate,
		Amount:      c.amount,
		Cadence:     dcasim.Frequency(c.frequency),
		Allocation:  allocation,
		Start:       start,
		End:         end,
		Currency:    c.currency,
	}
	if err := cfg.Validate(); err != nil {
		return dcasim.SimulationConfig{}, "", err
	}
	return cfg, "DCA Simulation", nil
}

// parseAllocation reads "SYM=0.6,SYM2=0.4". A bare symbol without a weight
// is the single-instrument case at fraction 1.0.
func parseAllocation(s string) (dcasim.Allocation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	allocation := make(dcasim.Allocation)
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		symbol, weight, found := strings.Cut(part, "=")
		symbol, weight = strings.TrimSpace(symbol), strings.TrimSpace(weight)
		if !found {
			allocation[symbol] = 1.0
			continue
		}
		fraction, err := strconv.ParseFloat(weight, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid allocation fraction %q for %s: %w", weight, symbol, err)
		}
		allocation[symbol] = fraction
	}
	return allocation, nil
}

// printMarkdown renders markdown for the terminal through glamour, falling
// back to the raw text when rendering fails or when -plain is set.
func printMarkdown(md string, plain bool) {
	if !plain {
		if out, err := glamour.Render(md, "auto"); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
