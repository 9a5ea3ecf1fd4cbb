package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/google/subcommands"
	"github.com/lazyinvest/dcasim"
	"github.com/lazyinvest/dcasim/renderer"
	"github.com/lazyinvest/dcasim/yahoo"
)

type compareCmd struct {
	file  string
	plain bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "run every scenario of a file and compare them" }
func (*compareCmd) Usage() string {
	return `compare -f scenarios.yaml

  Runs each scenario of the file as an independent simulation and prints a
  side-by-side comparison table.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "scenario file (YAML), required")
	f.BoolVar(&c.plain, "plain", false, "print raw markdown without terminal styling")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-f is required")
		return subcommands.ExitUsageError
	}
	scenarios, err := dcasim.LoadScenarios(c.file)
	if err != nil {
		return fail(err)
	}

	// Runs share no state; each one owns its own price series and engine
	// state, so they can proceed in parallel.
	provider := yahoo.New()
	results := make([]renderer.NamedResult, len(scenarios))
	errs := make([]error, len(scenarios))
	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := dcasim.Run(ctx, sc.SimulationConfig, provider)
			results[i] = renderer.NamedResult{Name: sc.Name, Result: r}
			errs[i] = err
		}()
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return fail(fmt.Errorf("scenario %q: %w", scenarios[i].Name, err))
		}
	}

	printMarkdown(renderer.Compare(results), c.plain)
	return subcommands.ExitSuccess
}
