package plot

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/pivolan/worklife_dashboard/domain/models"
)

// DrawCategoryMeans renders a PNG with the mean hours of every category.
func DrawCategoryMeans(spec models.ChartSpec, stats []models.GroupStat) ([]byte, error) {
	return DrawPlotBar(NewCategoryMeansForGraph(spec, stats))
}

func DrawPlotBar(data dataForGraph) ([]byte, error) {
	barValues := data.generateBarValues()
	if len(barValues) == 0 {
		return nil, fmt.Errorf("no bars to draw for %q", data.GetNameGraph())
	}
	paddingX := customizePaddingXBottom(barValues)
	width, height := data.calculateChartDimensions(100)

	for _, y := range data.getYValues() {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("non-finite value %v in %q", y, data.GetNameGraph())
		}
	}
	maxY := findMaxValue(data.getYValues())
	if maxY <= 0 {
		maxY = 1
	}
	gridStep := calculateGridStep(maxY)
	maxY = math.Ceil(maxY/gridStep) * gridStep

	bar := chart.BarChart{}
	bar.Title = fmt.Sprintf("%s (by %s)", data.GetNameGraph(), data.getNameXAxis())
	bar.Background = chart.Style{
		StrokeColor: chart.ColorBlack,
		Padding: chart.Box{
			Bottom: paddingX + 20,
			Top:    50,
		},
	}
	bar.Height = height + 50
	bar.Width = width + paddingX + 50
	bar.BarWidth = 60
	bar.Bars = barValues
	bar.YAxis = chart.YAxis{
		Name: data.getNameYAxis(),
		Range: &chart.ContinuousRange{
			Min: 0.0,
			Max: maxY,
		},
		Style: chart.Style{
			StrokeWidth: 2,
			StrokeColor: chart.ColorBlack,
			FontSize:    12,
		},
		Ticks: generateGrid(maxY, gridStep),
		GridMajorStyle: chart.Style{
			StrokeColor:     chart.ColorBlack,
			StrokeWidth:     1,
			DotWidth:        1,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
	bar.XAxis = chart.Style{
		StrokeWidth:         2,
		StrokeColor:         chart.ColorBlack,
		TextRotationDegrees: 45,
		FontSize:            12,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := bar.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func generateGrid(max, step float64) []chart.Tick {
	var ticks []chart.Tick
	for i := 0; float64(i)*step <= max+step/2; i++ {
		v := float64(i) * step
		ticks = append(ticks, chart.Tick{
			Value: v,
			Label: fmt.Sprintf("%.1f", v),
		})
	}
	return ticks
}

// calculateGridStep picks a 1-2-5 style step giving roughly five to ten ticks.
func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	if maxValue < 1e-10 {
		return 1e-10
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}
	return step * magnitude
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	max := y[0]
	for _, v := range y {
		if v > max {
			max = v
		}
	}
	return max
}

func customizePaddingXBottom(values []chart.Value) int {
	count := 0
	for _, v := range values {
		if len(v.Label) > count {
			count = len(v.Label)
		}
	}
	return count * 8
}
