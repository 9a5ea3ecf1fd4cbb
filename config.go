package dcasim

import "fmt"

// SimulationConfig is the immutable input of one simulation run.
type SimulationConfig struct {
	// InitialCash is the starting balance of the savings account.
	InitialCash float64 `yaml:"initial_cash"`
	// AnnualRate is the savings interest rate as a percentage (4.5 for
	// 4.5%), compounded daily.
	AnnualRate float64 `yaml:"annual_rate"`
	// Amount is the fixed amount invested each period. 0 means
	// savings-only: no allocation is required and no lookups occur.
	Amount float64 `yaml:"investment_amount"`
	// Cadence decides how often an investment is attempted.
	Cadence Frequency `yaml:"frequency"`
	// Allocation splits each investment across instruments.
	Allocation Allocation `yaml:"allocation"`
	// Start and End bound the simulated period, both days included.
	Start Date `yaml:"start"`
	End   Date `yaml:"end"`
	// Currency is the display currency for reports. It never affects the
	// arithmetic. Empty defaults to USD.
	Currency string `yaml:"currency,omitempty"`
}

// Range returns the simulated calendar range.
func (c SimulationConfig) Range() Range { return Range{From: c.Start, To: c.End} }

// DisplayCurrency returns the ISO code used to format monetary outputs.
func (c SimulationConfig) DisplayCurrency() string {
	if c.Currency == "" {
		return "USD"
	}
	return c.Currency
}

// Validate checks the configuration before a run. The allocation gate only
// applies when a periodic investment is configured.
func (c SimulationConfig) Validate() error {
	if c.InitialCash < 0 {
		return fmt.Errorf("initial cash must be >= 0, got %v", c.InitialCash)
	}
	if c.AnnualRate < 0 {
		return fmt.Errorf("annual rate must be >= 0, got %v", c.AnnualRate)
	}
	if c.Amount < 0 {
		return fmt.Errorf("investment amount must be >= 0, got %v", c.Amount)
	}
	if c.Start.IsZero() || c.End.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if c.End.Before(c.Start) {
		return fmt.Errorf("end date %s is before start date %s", c.End, c.Start)
	}
	if c.Amount > 0 {
		if err := c.Allocation.Validate(); err != nil {
			return err
		}
	}
	return nil
}
