package renderer

import (
	"github.com/lazyinvest/dcasim"
)

// reportView is the data shape consumed by the report templates. All
// monetary fields are pre-formatted strings.
type reportView struct {
	Title          string
	Period         string
	Cadence        string
	SavingsOnly    bool
	InitialCash    string
	TotalValue     string
	TotalReturn    string
	ReturnRate     string
	FinalCash      string
	Interest       string
	TotalInvested  string
	NumInvestments int
	PortfolioValue string
	InvestReturn   string
	InvestRate     string
	Positions      []positionView
	Events         []eventView
}

type positionView struct {
	Symbol     string
	Shares     string
	FinalPrice string
	Value      string
}

type eventView struct {
	Date  string
	Total string
	Lines []eventLineView
}

type eventLineView struct {
	Symbol string
	Amount string
	Price  string
	Shares string
}

// Report renders the full markdown report for one result: summary metrics,
// return breakdown, detailed savings/investment breakdown, and the
// investment history table.
func Report(title string, r *dcasim.SimulationResult) string {
	partials := map[string]string{
		"report_summary":   "report_summary.md",
		"report_breakdown": "report_breakdown.md",
		"report_events":    "report_events.md",
	}
	return renderTemplate("report", "report.md", partials, newReportView(title, r))
}

func newReportView(title string, r *dcasim.SimulationResult) *reportView {
	cur := r.Config.DisplayCurrency()
	v := &reportView{
		Title:          title,
		Period:         r.Config.Range().String(),
		Cadence:        r.Config.Cadence.String(),
		SavingsOnly:    r.Config.Amount == 0,
		InitialCash:    Amount(r.Config.InitialCash, cur),
		TotalValue:     Amount(r.TotalFinalValue, cur),
		TotalReturn:    SignedAmount(r.TotalReturn, cur),
		ReturnRate:     Percent(r.ReturnRate),
		FinalCash:      Amount(r.FinalCash, cur),
		Interest:       Amount(r.SavingsInterestEarned, cur),
		TotalInvested:  Amount(r.TotalInvested, cur),
		NumInvestments: r.NumInvestments,
		PortfolioValue: Amount(r.FinalPortfolioValue, cur),
		InvestReturn:   SignedAmount(r.InvestmentReturn, cur),
		InvestRate:     Percent(r.InvestmentReturnRate),
	}
	for _, symbol := range r.Config.Allocation.Symbols() {
		v.Positions = append(v.Positions, positionView{
			Symbol:     symbol,
			Shares:     Shares(r.Shares[symbol]),
			FinalPrice: Price(r.FinalPrices[symbol]),
			Value:      Amount(r.Shares[symbol]*r.FinalPrices[symbol], cur),
		})
	}
	for _, e := range r.Events {
		ev := eventView{Date: e.Date.String(), Total: Amount(e.Total, cur)}
		for _, symbol := range r.Config.Allocation.Symbols() {
			line, ok := e.Lines[symbol]
			if !ok {
				continue
			}
			ev.Lines = append(ev.Lines, eventLineView{
				Symbol: symbol,
				Amount: Amount(line.Amount, cur),
				Price:  Price(line.Price),
				Shares: Shares(line.Shares),
			})
		}
		v.Events = append(v.Events, ev)
	}
	return v
}
