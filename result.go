package dcasim

// SimulationResult is the immutable outcome of one simulation run, owned by
// the caller. The two history sequences hold exactly one entry per calendar
// day of the simulated range, in ascending order, no gaps.
type SimulationResult struct {
	Config SimulationConfig

	FinalCash           float64
	Shares              map[string]float64 // cumulative shares per instrument
	FinalPrices         map[string]float64 // price at end date, or last price in the raw series
	FinalPortfolioValue float64
	TotalInvested       float64
	NumInvestments      int

	// Derived metrics, each with a defined degenerate case (zero, never an
	// error, when the denominator is zero).
	SavingsInterestEarned float64
	TotalFinalValue       float64
	TotalReturn           float64
	ReturnRate            float64 // percent of initial cash
	InvestmentReturn      float64
	InvestmentReturnRate  float64 // percent of total invested

	Events       []InvestmentEvent
	CashHistory  []HistoryPoint // (date, cash after interest and deduction)
	ValueHistory []HistoryPoint // (date, forward-filled portfolio value)
}

// aggregate folds the final state and the recorded histories into a
// SimulationResult.
//
// The final price per instrument is the lookup for the last simulated day;
// when that day is not a trading day it falls back to the chronologically
// last price present anywhere in the raw series, not to the forward-fill
// memory.
func aggregate(cfg SimulationConfig, prices map[string]*PriceSeries, st *state, events []InvestmentEvent, totalInvested float64, cashHistory, valueHistory []HistoryPoint) *SimulationResult {
	finalPrices := make(map[string]float64)
	var finalValue float64
	if cfg.Amount > 0 {
		for _, symbol := range cfg.Allocation.Symbols() {
			price, ok := prices[symbol].Close(cfg.End)
			if !ok {
				_, price, _ = prices[symbol].Last()
			}
			finalPrices[symbol] = price
			finalValue += st.shares[symbol] * price
		}
	}

	r := &SimulationResult{
		Config:              cfg,
		FinalCash:           st.cash,
		Shares:              st.shares,
		FinalPrices:         finalPrices,
		FinalPortfolioValue: finalValue,
		TotalInvested:       totalInvested,
		NumInvestments:      len(events),
		Events:              events,
		CashHistory:         cashHistory,
		ValueHistory:        valueHistory,
	}

	r.SavingsInterestEarned = r.FinalCash - (cfg.InitialCash - totalInvested)
	r.TotalFinalValue = r.FinalCash + finalValue
	r.TotalReturn = r.TotalFinalValue - cfg.InitialCash
	if cfg.InitialCash > 0 {
		r.ReturnRate = r.TotalReturn / cfg.InitialCash * 100
	}
	r.InvestmentReturn = finalValue - totalInvested
	if totalInvested > 0 {
		r.InvestmentReturnRate = r.InvestmentReturn / totalInvested * 100
	}
	return r
}
