// Package plot renders benchmark timing charts as standalone HTML pages.
package plot

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineSeries is one timing curve: a name plus one value per x-axis label.
type LineSeries struct {
	Name   string
	Values []float64
}

// BuildLineChart constructs a configured go-echarts line chart with one
// x-axis label per sweep point.
func BuildLineChart(title, yAxisLabel string, labels []string, series []LineSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "spans"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisLabel}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "7%"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: 100},
			opts.DataZoom{Type: "inside"},
		),
	)

	line.SetXAxis(labels)

	for _, s := range series {
		lineData := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			lineData[i] = opts.LineData{Value: v}
		}

		line.AddSeries(s.Name, lineData)
	}

	return line
}

// WriteHTML renders the chart into a standalone HTML file at path.
func WriteHTML(path string, line *charts.Line) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}

	return nil
}
