// Package chart renders simulation history sequences as PNG line charts.
package chart

import (
	"errors"

	"github.com/lazyinvest/dcasim"
	"github.com/vicanso/go-charts/v2"
)

// Render draws the cash balance and portfolio value histories of a result
// into one PNG. The two sequences are parallel by construction, one point
// per simulated calendar day.
func Render(title string, r *dcasim.SimulationResult) ([]byte, error) {
	n := len(r.CashHistory)
	if n < 2 {
		return nil, errors.New("not enough data points")
	}

	cash := make([]float64, n)
	value := make([]float64, n)
	total := make([]float64, n)
	labels := make([]string, n)
	var yMin, yMax float64
	for i, p := range r.CashHistory {
		cash[i] = p.Value
		value[i] = r.ValueHistory[i].Value
		total[i] = cash[i] + value[i]
		labels[i] = p.Date.Format("Jan 02")
		for _, v := range [...]float64{cash[i], value[i], total[i]} {
			if i == 0 || v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}

	// pad the y range so the flat savings-only case still gets a band
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	split := 10
	if n < split {
		split = n
	}

	painter, err := charts.LineRender([][]float64{cash, value, total},
		charts.TitleTextOptionFunc(title),
		charts.LegendLabelsOptionFunc([]string{"Savings", "Portfolio", "Total"}),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
