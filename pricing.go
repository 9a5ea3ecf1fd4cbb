package dcasim

import (
	"context"
	"iter"
)

// PriceSeries holds the daily closing prices of a single instrument,
// populated only on trading days. The engine treats it as read-only.
type PriceSeries struct {
	prices History[float64]
}

// NewPriceSeries returns an empty price series.
func NewPriceSeries() *PriceSeries { return &PriceSeries{} }

// Append records the closing price for a trading day.
func (s *PriceSeries) Append(on Date, close float64) { s.prices.Append(on, close) }

// Close returns the closing price recorded for that exact date, or false
// when the date is absent (weekend, holiday, pre-listing). No interpolation
// happens here: forward-fill is the day simulator's responsibility.
func (s *PriceSeries) Close(on Date) (float64, bool) { return s.prices.Get(on) }

// Last returns the chronologically last trading day and price present in
// the series, or false when the series is empty.
func (s *PriceSeries) Last() (Date, float64, bool) {
	if s.prices.Len() == 0 {
		return Date{}, 0, false
	}
	day, price := s.prices.Latest()
	return day, price, true
}

// Len returns the number of trading days in the series.
func (s *PriceSeries) Len() int { return s.prices.Len() }

// Values returns an iterator over (trading day, close) pairs in
// chronological order.
func (s *PriceSeries) Values() iter.Seq2[Date, float64] { return s.prices.Values() }

// PriceProvider retrieves the daily closing prices of one instrument over
// an inclusive date range. Implementations return an error wrapping
// ErrDataUnavailable when the symbol is unknown or yields no rows.
type PriceProvider interface {
	Fetch(ctx context.Context, symbol string, r Range) (*PriceSeries, error)
}
