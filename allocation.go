package dcasim

import (
	"fmt"
	"sort"
)

// Allocation maps an instrument symbol to the fraction of each periodic
// investment directed to it. A single-instrument portfolio is the
// degenerate case {SYMBOL: 1.0}.
type Allocation map[string]float64

// The tolerance band absorbs floating-point error from percentages entered
// by hand (0.4+0.2+0.2+0.2 style inputs). It is deliberately wide.
const (
	allocationSumMin = 0.99
	allocationSumMax = 1.01
)

// Sum returns the total of all allocation fractions.
func (a Allocation) Sum() float64 {
	var total float64
	for _, f := range a {
		total += f
	}
	return total
}

// Symbols returns the allocated instrument symbols in lexical order, so
// that iteration over the basket is deterministic.
func (a Allocation) Symbols() []string {
	symbols := make([]string, 0, len(a))
	for s := range a {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Validate checks that the allocation is usable for investing: non-empty,
// with fractions summing to 1.0 within the tolerance band. It wraps
// ErrInvalidAllocation on failure.
//
// Savings-only configurations never call Validate; an empty allocation is
// valid when no investment will occur.
func (a Allocation) Validate() error {
	if len(a) == 0 {
		return fmt.Errorf("%w: allocation cannot be empty when an investment amount is set", ErrInvalidAllocation)
	}
	if sum := a.Sum(); sum < allocationSumMin || sum > allocationSumMax {
		return fmt.Errorf("%w: fractions must sum to 100%%, got %.1f%%", ErrInvalidAllocation, sum*100)
	}
	return nil
}
