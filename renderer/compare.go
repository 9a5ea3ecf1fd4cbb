package renderer

import "github.com/lazyinvest/dcasim"

// NamedResult pairs a scenario name with its simulation result for
// side-by-side comparison.
type NamedResult struct {
	Name   string
	Result *dcasim.SimulationResult
}

type compareView struct {
	Rows []compareRow
}

type compareRow struct {
	Name          string
	InitialCash   string
	TotalValue    string
	TotalReturn   string
	ReturnRate    string
	Invested      string
	Events        int
	FinalCash     string
	PortfolioVal  string
	InvestRate    string
	InterestTotal string
}

// Compare renders a comparison table across scenarios, one row each.
func Compare(results []NamedResult) string {
	view := &compareView{}
	for _, nr := range results {
		r := nr.Result
		cur := r.Config.DisplayCurrency()
		view.Rows = append(view.Rows, compareRow{
			Name:          nr.Name,
			InitialCash:   Amount(r.Config.InitialCash, cur),
			TotalValue:    Amount(r.TotalFinalValue, cur),
			TotalReturn:   SignedAmount(r.TotalReturn, cur),
			ReturnRate:    Percent(r.ReturnRate),
			Invested:      Amount(r.TotalInvested, cur),
			Events:        r.NumInvestments,
			FinalCash:     Amount(r.FinalCash, cur),
			PortfolioVal:  Amount(r.FinalPortfolioValue, cur),
			InvestRate:    Percent(r.InvestmentReturnRate),
			InterestTotal: Amount(r.SavingsInterestEarned, cur),
		})
	}
	return renderTemplate("compare", "compare.md", nil, view)
}
