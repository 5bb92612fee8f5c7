package plot

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/worklife_dashboard/domain/models"
)

const (
	panelWidth  = "420px"
	panelHeight = "600px"
)

// RenderDashboard writes an HTML page with one bar chart per series, side by
// side. Every row is its own bar placed on its category slot.
func RenderDashboard(w io.Writer, series []models.Series) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	for _, s := range series {
		page.AddCharts(newHoursBar(s))
	}
	return page.Render(w)
}

func newHoursBar(s models.Series) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: panelWidth, Height: panelHeight}),
		charts.WithTitleOpts(opts.Title{Title: s.Spec.Title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Name: s.Spec.XAxis, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: s.Spec.YAxis, Type: "value"}),
	)

	data := make([]opts.BarData, len(s.X))
	for i := range s.X {
		data[i] = opts.BarData{Value: []interface{}{s.X[i], s.Y[i]}}
	}
	bar.SetXAxis(categories(s.X)).
		AddSeries(s.Spec.XAxis, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Spec.Color}))
	return bar
}

// categories returns the distinct values of x in order of first appearance.
func categories(x []string) []string {
	seen := make(map[string]bool, len(x))
	out := make([]string, 0)
	for _, v := range x {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
