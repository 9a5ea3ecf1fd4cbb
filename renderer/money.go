package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats a monetary value in the given ISO currency, rounding to
// the currency's minor unit. The engine computes in float64; presentation
// goes through decimal so that 1234.565 renders as $1,234.57 and not
// whatever binary rounding fancies.
func Amount(v float64, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	units := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(units, cur.Code).Display()
}

// SignedAmount is like Amount with an explicit sign for positive values.
func SignedAmount(v float64, code string) string {
	if v > 0 {
		return "+" + Amount(v, code)
	}
	return Amount(v, code)
}

// Percent formats a rate with two decimals.
func Percent(v float64) string { return fmt.Sprintf("%.2f%%", v) }

// Shares formats a fractional share count with four decimals.
func Shares(v float64) string { return fmt.Sprintf("%.4f", v) }

// Price formats a per-share price with two decimals and no thousand
// separators.
func Price(v float64) string { return fmt.Sprintf("%.2f", v) }
