package dcasim

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ExportRow is one row of the denormalized per-day export. When the
// allocation holds several instruments, each simulated day produces one row
// per instrument; scenario-level columns repeat. Savings-only runs produce
// one row per day with the instrument columns empty.
type ExportRow struct {
	Date          Date
	Scenario      string
	Symbol        string
	CashBalance   float64
	InterestDelta float64 // interest earned that day
	CumInterest   float64
	Invested      float64  // full periodic amount, on the event's rows only
	Price         *float64 // closing price that day, nil on non-trading days
	SharesBought  float64
	CumShares     float64
	PortfolioVal  float64
	TotalValue    float64
	TotalReturn   float64
	ReturnRate    float64 // percent of initial cash
}

// BuildExport derives the per-day breakdown from a result and the price
// series it was simulated against.
//
// The daily interest is recomputed from the previous day's recorded balance
// and the daily rate, using the event log for the outflows. It is never
// back-calculated from balance deltas, which would compound rounding error.
func BuildExport(scenario string, r *SimulationResult, prices map[string]*PriceSeries) []ExportRow {
	cfg := r.Config
	dailyRate := DailyRate(cfg.AnnualRate)
	symbols := cfg.Allocation.Symbols()

	eventByDate := make(map[Date]InvestmentEvent, len(r.Events))
	for _, e := range r.Events {
		eventByDate[e.Date] = e
	}

	var (
		rows        []ExportRow
		cumInterest float64
		cumShares   = make(map[string]float64, len(symbols))
	)
	prevCash := cfg.InitialCash
	for i, point := range r.CashHistory {
		interest := prevCash * dailyRate
		cumInterest += interest
		prevCash = point.Value

		event, invested := eventByDate[point.Date]
		portfolioValue := r.ValueHistory[i].Value
		totalValue := point.Value + portfolioValue
		totalReturn := totalValue - cfg.InitialCash
		var returnRate float64
		if cfg.InitialCash > 0 {
			returnRate = totalReturn / cfg.InitialCash * 100
		}

		base := ExportRow{
			Date:          point.Date,
			Scenario:      scenario,
			CashBalance:   point.Value,
			InterestDelta: interest,
			CumInterest:   cumInterest,
			PortfolioVal:  portfolioValue,
			TotalValue:    totalValue,
			TotalReturn:   totalReturn,
			ReturnRate:    returnRate,
		}
		if len(symbols) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, symbol := range symbols {
			row := base
			row.Symbol = symbol
			if price, ok := prices[symbol].Close(point.Date); ok {
				p := price
				row.Price = &p
			}
			if invested {
				row.Invested = event.Total
				row.SharesBought = event.Lines[symbol].Shares
				cumShares[symbol] += event.Lines[symbol].Shares
			}
			row.CumShares = cumShares[symbol]
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteCSV writes export rows with a header. Nullable prices render as an
// empty field.
func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	header := []string{
		"date", "scenario", "symbol", "cash_balance", "daily_interest",
		"cumulative_interest", "invested", "price", "shares_bought",
		"cumulative_shares", "portfolio_value", "total_value",
		"total_return", "return_rate",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		price := ""
		if r.Price != nil {
			price = formatFloat(*r.Price)
		}
		record := []string{
			r.Date.String(),
			r.Scenario,
			r.Symbol,
			formatFloat(r.CashBalance),
			formatFloat(r.InterestDelta),
			formatFloat(r.CumInterest),
			formatFloat(r.Invested),
			price,
			formatFloat(r.SharesBought),
			formatFloat(r.CumShares),
			formatFloat(r.PortfolioVal),
			formatFloat(r.TotalValue),
			formatFloat(r.TotalReturn),
			formatFloat(r.ReturnRate),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
