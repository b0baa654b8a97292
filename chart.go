package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartFormat selects the renderer for the profit trajectory chart
type ChartFormat string

const (
	ChartPNG ChartFormat = "png"
	ChartSVG ChartFormat = "svg"
)

// Default chart size in pixels (12x6 inch figure at 100 dpi)
const (
	chartWidth  = 1200
	chartHeight = 600
)

// scenarioPalette colours one line per growth scenario, cycling if there are more
var scenarioPalette = []drawing.Color{
	drawing.ColorFromHex("2563eb"),
	drawing.ColorFromHex("ea580c"),
	drawing.ColorFromHex("16a34a"),
	drawing.ColorFromHex("dc2626"),
	drawing.ColorFromHex("7c3aed"),
	drawing.ColorFromHex("0891b2"),
}

// lineStyle renders a scenario as a line with a dot at each year
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
}

// BuildTrajectoryChart lays out the profit sensitivity chart: one series per growth
// rate, a dashed zero reference line, grid lines and a legend.
func BuildTrajectoryChart(d Dashboard, currency string, width, height int) chart.Chart {
	horizon := 1.0
	if n := len(d.Years); n > 1 {
		horizon = float64(d.Years[n-1])
	}

	var series []chart.Series
	for i, s := range d.Scenarios {
		xs := make([]float64, len(s.Years))
		for j, y := range s.Years {
			xs[j] = float64(y.Year)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: s.Profits(),
			Style:   lineStyle(scenarioPalette[i%len(scenarioPalette)]),
		})
	}
	// Unnamed, so the legend lists only the growth scenarios
	series = append(series, chart.ContinuousSeries{
		XValues: []float64{0, horizon},
		YValues: []float64{0, 0},
		Style: chart.Style{
			StrokeColor:     chart.ColorAlternateGray,
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{6, 4},
		},
	})

	lo, hi := profitRange(d.Scenarios)
	if hi-lo == 0 {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.08

	var xTicks []chart.Tick
	for _, y := range d.Years {
		xTicks = append(xTicks, chart.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}

	grid := chart.Style{StrokeColor: drawing.ColorFromHex("e2e8f0"), StrokeWidth: 1}

	graph := chart.Chart{
		Title:      "Profit Sensitivity Analysis by Growth Rate",
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           "Years",
			Range:          &chart.ContinuousRange{Min: 0, Max: horizon},
			Ticks:          xTicks,
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           fmt.Sprintf("Cumulative Profit (%s)", currency),
			Range:          &chart.ContinuousRange{Min: lo - pad, Max: hi + pad},
			GridMajorStyle: grid,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return FormatMoney(f, currency)
				}
				return ""
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph
}

// RenderTrajectoryChart writes the chart in the requested format
func RenderTrajectoryChart(w io.Writer, d Dashboard, currency string, format ChartFormat) error {
	graph := BuildTrajectoryChart(d, currency, chartWidth, chartHeight)

	provider := chart.PNG
	if format == ChartSVG {
		provider = chart.SVG
	}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("render %s chart: %w", format, err)
	}
	return nil
}

// RenderTrajectoryChartBytes renders the chart into memory
func RenderTrajectoryChartBytes(d Dashboard, currency string, format ChartFormat) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderTrajectoryChart(&buf, d, currency, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
