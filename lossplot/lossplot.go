// Package lossplot renders training loss traces as diagnostic charts.
// It is a pure sink: plotting never feeds back into training.
package lossplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Save renders the loss trace as a line chart and writes it to path.
// The output format is inferred from the file extension (.png, .svg,
// .pdf, ...). The x axis is the iteration index, starting at 1.
func Save(losses []float64, path string) error {
	if len(losses) == 0 {
		return fmt.Errorf("empty loss trace")
	}

	pts := make(plotter.XYs, len(losses))
	for i, loss := range losses {
		pts[i].X = float64(i + 1)
		pts[i].Y = loss
	}

	p := plot.New()
	p.Title.Text = "Training Loss"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Mean half-squared error"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("building loss line: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	if err := p.Save(16*vg.Centimeter, 10*vg.Centimeter, path); err != nil {
		return fmt.Errorf("saving loss plot: %w", err)
	}
	return nil
}
