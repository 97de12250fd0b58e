package plot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gpu-benchmark-scraper/models"
)

func TestPointsOf(t *testing.T) {
	cards := []models.ScoredGPU{
		{Sample: models.Sample{Name: "Card A", Benchmark: 15000, Price: 200}, ValueScore: 75},
		{Sample: models.Sample{Name: "Card C", Benchmark: 9800, Price: 150}, ValueScore: 9800.0 / 150},
	}

	require.Equal(t, []Point{{X: 15000, Y: 75}, {X: 9800, Y: 9800.0 / 150}}, PointsOf(cards))
}

func TestBoundsOfContainsAllPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"scenario", []Point{{15000, 75}, {9800, 65.333}}},
		{"single point", []Point{{100, 1}}},
		{"identical points", []Point{{5, 5}, {5, 5}}},
		{"wide spread", []Point{{1, 0.01}, {40000, 900}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BoundsOf(tt.points)
			require.Less(t, b.MinX, b.MaxX)
			require.Less(t, b.MinY, b.MaxY)
			for _, p := range tt.points {
				require.GreaterOrEqual(t, p.X, b.MinX)
				require.LessOrEqual(t, p.X, b.MaxX)
				require.GreaterOrEqual(t, p.Y, b.MinY)
				require.LessOrEqual(t, p.Y, b.MaxY)
			}
		})
	}
}

func TestBoundsOfRoundsToMagnitude(t *testing.T) {
	b := BoundsOf([]Point{{15000, 75}, {9800, 9800.0 / 150}})
	require.Equal(t, 9000.0, b.MinX)
	require.Equal(t, 16000.0, b.MaxX)
	require.Equal(t, 64.0, b.MinY)
	require.Equal(t, 76.0, b.MaxY)
}

func TestTicks(t *testing.T) {
	ticks := Ticks(0, 100, 6)

	var labels []string
	for _, tk := range ticks {
		labels = append(labels, tk.Label)
	}
	require.Equal(t, []string{"0", "20", "40", "60", "80", "100"}, labels)

	require.Nil(t, Ticks(0, 100, 1))
}

func TestProjectionToPixel(t *testing.T) {
	p := Projection{
		Bounds: Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 10},
		Width:  200,
		Height: 100,
	}

	x, y := p.ToPixel(Point{X: 50, Y: 5})
	require.InDelta(t, 100, x, 1e-9)
	require.InDelta(t, 50, y, 1e-9)

	x, y = p.ToPixel(Point{X: 0, Y: 0})
	require.InDelta(t, 0, x, 1e-9)
	require.InDelta(t, 100, y, 1e-9, "origin is bottom-left")

	padded := p
	padded.Padding = Insets{Left: 10, Top: 5, Right: 10, Bottom: 5}
	x, y = padded.ToPixel(Point{X: 100, Y: 10})
	require.InDelta(t, 190, x, 1e-9)
	require.InDelta(t, 5, y, 1e-9)
}

func TestProjectionHits(t *testing.T) {
	p := Projection{
		Bounds: Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 10},
		Width:  200,
		Height: 100,
	}
	points := []Point{{50, 5}, {51, 5}, {100, 10}}

	tests := []struct {
		name   string
		cx, cy float64
		want   []int
	}{
		{"overlapping dots", 100, 50, []int{0, 1}},
		{"edge of dot", 200, 3, []int{2}},
		{"empty space", 20, 20, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, p.Hits(points, tt.cx, tt.cy, 3))
		})
	}
}
