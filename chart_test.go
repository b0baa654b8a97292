package main

import (
	"bytes"
	"strings"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"
)

func TestRenderTrajectoryChart_PNG(t *testing.T) {
	config, _ := LoadDefaultConfig()
	d := Compute(config.Assumptions, config)

	data, err := RenderTrajectoryChartBytes(d, config.CurrencySymbol, ChartPNG)
	if err != nil {
		t.Fatalf("RenderTrajectoryChartBytes: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("PNG output should start with the PNG signature")
	}
}

func TestRenderTrajectoryChart_SVG(t *testing.T) {
	config, _ := LoadDefaultConfig()
	d := Compute(config.Assumptions, config)

	var buf bytes.Buffer
	if err := RenderTrajectoryChart(&buf, d, config.CurrencySymbol, ChartSVG); err != nil {
		t.Fatalf("RenderTrajectoryChart: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("SVG output should contain an <svg> element")
	}
}

func TestBuildTrajectoryChart_Series(t *testing.T) {
	config, _ := LoadDefaultConfig()
	d := Compute(config.Assumptions, config)

	graph := BuildTrajectoryChart(d, config.CurrencySymbol, chartWidth, chartHeight)
	// One line per scenario plus the zero reference line
	if len(graph.Series) != len(d.Scenarios)+1 {
		t.Fatalf("Expected %d series, got %d", len(d.Scenarios)+1, len(graph.Series))
	}

	for i, s := range d.Scenarios {
		line, ok := graph.Series[i].(chart.ContinuousSeries)
		if !ok {
			t.Fatalf("Series %d should be a continuous series", i)
		}
		if line.Name != s.Label {
			t.Errorf("Series %d: expected legend %q, got %q", i, s.Label, line.Name)
		}
		profits := s.Profits()
		for j := range profits {
			if line.YValues[j] != profits[j] {
				t.Errorf("%s year %d: expected %.2f, got %.2f", s.Label, j, profits[j], line.YValues[j])
			}
		}
	}

	// The legend skips unnamed series, so the zero line stays out of it
	if name := graph.Series[len(d.Scenarios)].GetName(); name != "" {
		t.Errorf("Zero reference line should be unnamed, got %q", name)
	}
}
