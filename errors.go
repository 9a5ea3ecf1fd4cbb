package dcasim

import "errors"

// ErrInvalidAllocation reports that a portfolio allocation is missing or
// that its fractions do not sum to ~100% while a periodic investment is
// configured. The simulation does not start.
var ErrInvalidAllocation = errors.New("invalid allocation")

// ErrDataUnavailable reports that a price provider returned no data for a
// requested instrument. The simulation does not start: series are fetched
// for every instrument up front, never lazily inside the day loop.
var ErrDataUnavailable = errors.New("price data unavailable")
