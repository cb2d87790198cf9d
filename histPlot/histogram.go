//Package histPlot renders the value distribution of a matrix as a histogram
package histPlot

import (
	"fmt"
	"io"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

//Plot creates a normalized histogram of values with bins bars and a horizontal line at the
//density of the uniform distribution over [low,high[
func Plot(values []float64, bins int, low, high float64) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("values are empty")
	}
	if bins <= 0 {
		return nil, fmt.Errorf("bins must be positive, got %v", bins)
	}
	if !(low < high) {
		return nil, fmt.Errorf("invalid interval [%v,%v[", low, high)
	}

	p := plot.New()
	p.Title.Text = "Value distribution"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Density"

	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, fmt.Errorf("failed creating histogram : %v", err)
	}
	hist.Normalize(1)
	hist.FillColor = colornames.Steelblue

	density := 1 / (high - low)
	expectedLine := plotter.NewFunction(func(x float64) float64 {
		return density
	})
	expectedLine.Color = colornames.Red

	p.Add(hist, expectedLine)
	p.Legend.Add("Values", hist)
	p.Legend.Add("Uniform density", expectedLine)
	p.Legend.Top = true
	p.X.Min = low
	p.X.Max = high
	p.Y.Min = 0

	return p, nil
}

//PlotAndStore wraps Plot and stores the result as png in out
func PlotAndStore(values []float64, bins int, low, high float64, out io.Writer) error {
	p, err := Plot(values, bins, low, high)
	if err != nil {
		return fmt.Errorf("failed to create plot :%v", err)
	}
	writerTo, err := p.WriterTo(800, 600, "png")
	if err != nil {
		return fmt.Errorf("failed to prepare plot for writing : %v", err)
	}
	if _, err := writerTo.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write plot : %v", err)
	}
	return nil
}
