package plot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"gpu-benchmark-scraper/models"
)

const (
	XAxisLabel = "Benchmark"
	YAxisLabel = "Value (benchmark / price)"
	Title      = "GPU value score"
)

var ErrNoPoints = errors.New("plot: nothing to draw")

// pointStyle renders dots only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// ExportPNG renders the same scatter the window shows to a static PNG.
func ExportPNG(w io.Writer, cards []models.ScoredGPU, width, height int) error {
	if len(cards) == 0 {
		return ErrNoPoints
	}

	points := PointsOf(cards)
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	b := BoundsOf(points)

	ch := chart.Chart{
		Title:      Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  XAxisLabel,
			Range: &chart.ContinuousRange{Min: b.MinX, Max: b.MaxX},
			Ticks: chartTicks(Ticks(b.MinX, b.MaxX, 6)),
		},
		YAxis: chart.YAxis{
			Name:  YAxisLabel,
			Range: &chart.ContinuousRange{Min: b.MinY, Max: b.MaxY},
			Ticks: chartTicks(Ticks(b.MinY, b.MaxY, 6)),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "GPUs",
				XValues: xs,
				YValues: ys,
				Style:   pointStyle(chart.ColorBlue),
			},
		},
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func chartTicks(ticks []Tick) []chart.Tick {
	out := make([]chart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

// WritePNGFile exports the scatter to path. The file is closed before
// returning and a failed close is reported.
func WritePNGFile(path string, cards []models.ScoredGPU, width, height int) error {
	if len(cards) == 0 {
		return ErrNoPoints
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := ExportPNG(f, cards, width, height); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}
