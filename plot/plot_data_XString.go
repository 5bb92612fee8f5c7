package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pivolan/worklife_dashboard/domain/models"
)

const noDataLabel = "no data"

var chartColors = map[string]drawing.Color{
	"blue":   drawing.ColorFromHex("0000ff"),
	"green":  drawing.ColorFromHex("008000"),
	"orange": drawing.ColorFromHex("ffa500"),
	"purple": drawing.ColorFromHex("800080"),
}

// dataXStringsForGraph holds one bar per category label.
type dataXStringsForGraph struct {
	xValues   []string
	yValues   []float64
	nameXAxis string
	nameYAxis string
	nameGraph string
	color     drawing.Color
}

// NewCategoryMeansForGraph plots the mean hours of each category. An empty
// stats slice yields a single zero bar so the frame still renders.
func NewCategoryMeansForGraph(spec models.ChartSpec, stats []models.GroupStat) dataXStringsForGraph {
	color, ok := chartColors[spec.Color]
	if !ok {
		color = chartColors["purple"]
	}
	d := dataXStringsForGraph{
		nameXAxis: spec.XAxis,
		nameYAxis: "Mean " + spec.YAxis,
		nameGraph: spec.Title,
		color:     color,
	}
	for _, s := range stats {
		d.xValues = append(d.xValues, s.Category)
		d.yValues = append(d.yValues, s.Mean)
	}
	if len(d.xValues) == 0 {
		d.xValues = []string{noDataLabel}
		d.yValues = []float64{0}
	}
	return d
}

func (d dataXStringsForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataXStringsForGraph) getNameXAxis() string {
	return d.nameXAxis
}
func (d dataXStringsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataXStringsForGraph) getYValues() []float64 {
	return d.yValues
}

func (d dataXStringsForGraph) lenXValues() int {
	return len(d.xValues)
}

func (d dataXStringsForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	if len(d.yValues) == 0 || d.lenXValues() <= 0 || minBarWidth <= 0 {
		return 0, 0
	}
	x := 1.1
	if d.lenXValues() < 2 {
		x = 3.0
	} else if d.lenXValues() < 10 {
		x = 2.0
	}

	const (
		paddingY     = 100
		spacingRatio = 0.2
		aspectRatio  = 9.0 / 16.0
	)

	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(d.lenXValues()) + paddingY
	width = int(totalWidth*x) + paddingY
	height = int(float64(width) * aspectRatio)
	return width, height
}

func (d dataXStringsForGraph) generateBarValues() []chart.Value {
	bars := make([]chart.Value, 0, len(d.xValues))
	for i, label := range d.xValues {
		bars = append(bars, chart.Value{
			Value: d.yValues[i],
			Label: label,
			Style: chart.Style{
				FillColor:   d.color.WithAlpha(180),
				StrokeColor: d.color,
			},
		})
	}
	return bars
}
