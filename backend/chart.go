package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/TheKrainBow/connect4/engine"
)

// renderScoreChart writes an HTML page with one bar per column. Closed
// columns have no bar.
func renderScoreChart(w io.Writer, decision decisionResponse) error {
	bar := charts.NewBar()
	subtitle := "no legal move"
	if decision.OK {
		subtitle = fmt.Sprintf("best column %d", decision.Column)
	}
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Root scores, side %d, depth %d", decision.Side, decision.Depth),
			Subtitle: subtitle,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	columns := make([]string, 0, engine.Columns)
	items := make([]opts.BarData, 0, engine.Columns)
	for col, score := range decision.Scores {
		columns = append(columns, fmt.Sprintf("%d", col))
		if score == nil {
			items = append(items, opts.BarData{Name: "closed", Value: nil})
			continue
		}
		items = append(items, opts.BarData{Value: *score})
	}
	bar.SetXAxis(columns).AddSeries("minimax", items)

	page := components.NewPage()
	page.AddCharts(bar)
	return page.Render(w)
}
