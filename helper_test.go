package dcasim

import (
	"math"
	"time"
)

// almostEqual compares floats within a small epsilon; the engine promises
// no drift beyond floating-point rounding.
func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// jan1 is a Monday, which keeps weekday arithmetic in tests easy to follow.
var jan1 = NewDate(2024, time.January, 1)

// flatSeries builds a price series with the same closing price on every
// calendar day of the range, weekends included.
func flatSeries(r Range, price float64) *PriceSeries {
	s := NewPriceSeries()
	for on := range r.Days() {
		s.Append(on, price)
	}
	return s
}

// weekdaySeries builds a price series with the same closing price on every
// weekday of the range, like a market without holidays.
func weekdaySeries(r Range, price float64) *PriceSeries {
	s := NewPriceSeries()
	for on := range r.Days() {
		if wd := on.Weekday(); wd != time.Saturday && wd != time.Sunday {
			s.Append(on, price)
		}
	}
	return s
}

// weeklyDCA is the reference configuration of most engine tests: no
// interest, a weekly 100 investment into a single instrument.
func weeklyDCA(days int) SimulationConfig {
	return SimulationConfig{
		InitialCash: 1000,
		AnnualRate:  0,
		Amount:      100,
		Cadence:     Weekly,
		Allocation:  Allocation{"FLAT": 1.0},
		Start:       jan1,
		End:         jan1.Add(days - 1),
	}
}
