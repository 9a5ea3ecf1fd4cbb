// Package dcasim simulates a dollar-cost-averaging investment strategy
// funded from a daily-compounding savings account.
//
// The engine walks a closed range of calendar days. Each day it accrues
// interest on the cash balance, decides whether a scheduled investment is
// due, executes the investment atomically across the whole allocation
// basket when every instrument has a closing price for that exact day, and
// records the cash balance and the forward-filled portfolio value. The run
// is a pure, deterministic fold: given the same configuration and price
// series it always produces the same SimulationResult.
//
// Price series are fetched up front, before the day loop, through a
// PriceProvider such as the one in the yahoo subpackage. The engine itself
// never performs I/O and retains no state between runs.
package dcasim
