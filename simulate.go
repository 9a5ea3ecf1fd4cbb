package dcasim

import (
	"context"
	"fmt"
)

// InvestmentLine is the share of one investment event directed to a single
// instrument.
type InvestmentLine struct {
	Amount float64 // amount allocated to this instrument
	Price  float64 // closing price paid
	Shares float64 // shares purchased, fractional shares allowed
}

// InvestmentEvent records one atomic execution of the periodic investment
// across the full allocation basket. Events are immutable once recorded.
type InvestmentEvent struct {
	Date  Date
	Total float64 // the full periodic amount, deducted from cash once
	Lines map[string]InvestmentLine
}

// HistoryPoint is one entry of a per-day history sequence.
type HistoryPoint struct {
	Date  Date
	Value float64
}

// state is the engine-internal mutable state of one run. It is created at
// simulation start and discarded once the result is aggregated.
type state struct {
	cash      float64
	daysSince int // days elapsed since the last investment event
	shares    map[string]float64
	lastPrice map[string]float64 // forward-fill memory, per instrument
}

// Run fetches the price series of every allocated instrument through the
// provider, then simulates. Any fetch failure aborts before the day loop:
// no partial result is ever produced.
//
// Savings-only configurations (Amount == 0) skip fetching entirely.
func Run(ctx context.Context, cfg SimulationConfig, provider PriceProvider) (*SimulationResult, error) {
	prices, err := FetchPrices(ctx, cfg, provider)
	if err != nil {
		return nil, err
	}
	return Simulate(cfg, prices)
}

// FetchPrices retrieves the price series of every allocated instrument for
// the configured range. Savings-only configurations return an empty map
// without touching the provider.
func FetchPrices(ctx context.Context, cfg SimulationConfig, provider PriceProvider) (map[string]*PriceSeries, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	prices := make(map[string]*PriceSeries)
	if cfg.Amount > 0 {
		for _, symbol := range cfg.Allocation.Symbols() {
			series, err := provider.Fetch(ctx, symbol, cfg.Range())
			if err != nil {
				return nil, fmt.Errorf("fetching %s: %w", symbol, err)
			}
			prices[symbol] = series
		}
	}
	return prices, nil
}

// Simulate runs the day-by-day simulation over pre-fetched price series.
//
// It walks every calendar day from Start to End inclusive, in order:
// accrue interest, attempt a scheduled investment, record the cash balance,
// record the forward-filled portfolio value. See the package documentation
// for the full contract.
func Simulate(cfg SimulationConfig, prices map[string]*PriceSeries) (*SimulationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	symbols := cfg.Allocation.Symbols()
	if cfg.Amount > 0 {
		for _, symbol := range symbols {
			if s, ok := prices[symbol]; !ok || s.Len() == 0 {
				return nil, fmt.Errorf("%w: no price series for %s", ErrDataUnavailable, symbol)
			}
		}
	}

	dailyRate := DailyRate(cfg.AnnualRate)
	interval := cfg.Cadence.Interval()

	st := &state{
		cash:      cfg.InitialCash,
		shares:    make(map[string]float64, len(symbols)),
		lastPrice: make(map[string]float64, len(symbols)),
	}
	for _, symbol := range symbols {
		st.shares[symbol] = 0
		st.lastPrice[symbol] = 0
	}

	var (
		events        []InvestmentEvent
		cashHistory   = make([]HistoryPoint, 0, cfg.Range().Len())
		valueHistory  = make([]HistoryPoint, 0, cfg.Range().Len())
		totalInvested float64
	)

	for on := range cfg.Range().Days() {
		// 1. Interest accrues on every calendar day, weekends included.
		st.cash += st.cash * dailyRate

		// 2. Investment gate.
		if cfg.Amount > 0 {
			st.daysSince++
			if float64(st.daysSince) >= interval && st.cash >= cfg.Amount {
				if event, ok := investDay(cfg, prices, symbols, st, on); ok {
					events = append(events, event)
					totalInvested += cfg.Amount
					// Not reset on a skipped day: the next day retries.
					st.daysSince = 0
				}
			}
		}

		// 3. Cash balance, after interest and after any deduction.
		cashHistory = append(cashHistory, HistoryPoint{Date: on, Value: st.cash})

		// 4. Portfolio value with per-instrument forward-fill.
		var value float64
		if cfg.Amount > 0 {
			value = valueDay(prices, symbols, st, on)
		}
		valueHistory = append(valueHistory, HistoryPoint{Date: on, Value: value})
	}

	return aggregate(cfg, prices, st, events, totalInvested, cashHistory, valueHistory), nil
}

// investDay attempts one investment event. The basket is atomic: if any
// allocated instrument lacks a closing price for this exact day, nothing is
// bought and the caller retries the next day.
func investDay(cfg SimulationConfig, prices map[string]*PriceSeries, symbols []string, st *state, on Date) (InvestmentEvent, bool) {
	for _, symbol := range symbols {
		if _, ok := prices[symbol].Close(on); !ok {
			return InvestmentEvent{}, false
		}
	}

	event := InvestmentEvent{
		Date:  on,
		Total: cfg.Amount,
		Lines: make(map[string]InvestmentLine, len(symbols)),
	}
	for _, symbol := range symbols {
		price, _ := prices[symbol].Close(on)
		amount := cfg.Amount * cfg.Allocation[symbol]
		shares := amount / price
		st.shares[symbol] += shares
		event.Lines[symbol] = InvestmentLine{Amount: amount, Price: price, Shares: shares}
	}
	// The full periodic amount leaves the cash account once, not per line.
	st.cash -= cfg.Amount
	return event, true
}

// valueDay values the positions held today. Forward-fill is per instrument
// and independent: one instrument missing a price does not block the
// valuation of the others. An instrument never observed yet values at 0.
func valueDay(prices map[string]*PriceSeries, symbols []string, st *state, on Date) float64 {
	var total float64
	for _, symbol := range symbols {
		if st.shares[symbol] <= 0 {
			continue
		}
		if price, ok := prices[symbol].Close(on); ok {
			st.lastPrice[symbol] = price
		}
		total += st.shares[symbol] * st.lastPrice[symbol]
	}
	return total
}
