package dcasim

// DailyRate converts an annual interest rate expressed as a percentage
// (5 for 5%) into a daily rate expressed as a decimal.
//
// The conversion is a plain division by 365: no leap-year adjustment and no
// geometric derivation. Interest compounds because the rate is applied to
// the running balance every calendar day.
func DailyRate(annualPercent float64) float64 {
	return (annualPercent / 100) / 365
}
