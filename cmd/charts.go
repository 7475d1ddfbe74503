package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	sim "github.com/shelfsim/shelfsim/sim"
)

// WriteCharts renders the analytics history of a run as standalone HTML line
// charts: estimated vs. true observable total, filter uncertainty, and
// percentage error. One file per chart, written into dir.
func WriteCharts(results *sim.Results, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create charts directory: %w", err)
	}

	ticks := make([]int64, len(results.Reports))
	estimated := make([]opts.LineData, len(results.Reports))
	trueObserved := make([]opts.LineData, len(results.Reports))
	uncertainty := make([]opts.LineData, len(results.Reports))
	errorPct := make([]opts.LineData, len(results.Reports))
	for i, report := range results.Reports {
		ticks[i] = report.Tick
		estimated[i] = opts.LineData{Value: report.EstimatedTotal}
		trueObserved[i] = opts.LineData{Value: report.TrueTotalObserved}
		uncertainty[i] = opts.LineData{Value: report.KalmanUncertainty}
		errorPct[i] = opts.LineData{Value: report.TotalErrorPct}
	}

	totals := newLineChart("Total Inventory Estimation", "items")
	totals.SetXAxis(ticks).
		AddSeries("estimated", estimated).
		AddSeries("true (observable)", trueObserved)
	if err := renderChart(totals, filepath.Join(dir, "total_estimation.html")); err != nil {
		return err
	}

	covariance := newLineChart("Filter Uncertainty", "covariance")
	covariance.SetXAxis(ticks).AddSeries("P", uncertainty)
	if err := renderChart(covariance, filepath.Join(dir, "kalman_uncertainty.html")); err != nil {
		return err
	}

	errors := newLineChart("Estimation Error", "% error")
	errors.SetXAxis(ticks).AddSeries("error", errorPct)
	return renderChart(errors, filepath.Join(dir, "estimation_error.html"))
}

// newLineChart creates a line chart with the shared global options.
func newLineChart(title, yAxisName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "tick"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName}),
	)
	return line
}

// renderChart writes a chart to a standalone HTML file.
func renderChart(line *charts.Line, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render chart %s: %w", path, err)
	}
	return nil
}
