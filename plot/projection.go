// Package plot holds the value-score scatter plot: axis scaling, hit testing
// and tooltip state, independent of any windowing toolkit.
package plot

import (
	"fmt"
	"math"

	"gpu-benchmark-scraper/models"
)

// Point is one dot of the scatter in data space.
type Point struct {
	X, Y float64
}

// PointsOf maps scored cards to (benchmark, value score) points.
func PointsOf(cards []models.ScoredGPU) []Point {
	points := make([]Point, len(cards))
	for i, c := range cards {
		points[i] = Point{X: c.Benchmark, Y: c.ValueScore}
	}
	return points
}

// Bounds is the visible data range of both axes.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsOf returns rounded axis bounds that contain every point.
func BoundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	var b Bounds
	b.MinX, b.MaxX = niceAxisBounds(minX, maxX)
	b.MinY, b.MaxY = niceAxisBounds(minY, maxY)
	return b
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// Tick is an axis label position in data space.
type Tick struct {
	Value float64
	Label string
}

// Ticks returns roughly n evenly spaced ticks between min and max.
func Ticks(min, max float64, n int) []Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// Preferred steps: 1, 2, 2.5, 5, 10 scaled by a power of 10
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}

	start := math.Ceil(min/bestStep) * bestStep
	var ticks []Tick
	for v := start; v <= max+bestStep/1e6; v += bestStep {
		ticks = append(ticks, Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case av >= 100, v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// Insets is the space around the plot area, in pixels.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Projection maps data coordinates onto a pixel canvas whose origin is the
// top-left corner.
type Projection struct {
	Bounds  Bounds
	Width   float64
	Height  float64
	Padding Insets
}

// Area returns the pixel rectangle that holds the dots.
func (p Projection) Area() (x, y, w, h float64) {
	w = math.Max(p.Width-p.Padding.Left-p.Padding.Right, 1)
	h = math.Max(p.Height-p.Padding.Top-p.Padding.Bottom, 1)
	return p.Padding.Left, p.Padding.Top, w, h
}

// ToPixel converts a data point to canvas pixels.
func (p Projection) ToPixel(pt Point) (float64, float64) {
	ax, ay, aw, ah := p.Area()
	spanX := p.Bounds.MaxX - p.Bounds.MinX
	spanY := p.Bounds.MaxY - p.Bounds.MinY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	px := ax + (pt.X-p.Bounds.MinX)/spanX*aw
	py := ay + ah - (pt.Y-p.Bounds.MinY)/spanY*ah
	return px, py
}

// Hits returns the indices of every point whose dot of the given pixel
// radius contains the cursor, in point order.
func (p Projection) Hits(points []Point, cursorX, cursorY, radius float64) []int {
	var hits []int
	r2 := radius * radius
	for i, pt := range points {
		px, py := p.ToPixel(pt)
		dx, dy := px-cursorX, py-cursorY
		if dx*dx+dy*dy <= r2 {
			hits = append(hits, i)
		}
	}
	return hits
}
