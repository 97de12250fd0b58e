// Package gui shows the value-score scatter in a fyne window with a hover
// tooltip naming the cards under the cursor.
package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/plot"
)

const (
	dotRadius   = 4
	tickCount   = 6
	tooltipPad  = 6
	tooltipSize = 12
)

var (
	dotColor     = color.NRGBA{R: 0, G: 116, B: 217, A: 255}
	tooltipFill  = color.NRGBA{R: 255, G: 255, B: 240, A: 235}
	tooltipInk   = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	plotPadding  = plot.Insets{Left: 70, Top: 36, Right: 24, Bottom: 56}
	tooltipShift = fyne.NewPos(12, -12)
)

// Show opens the scatter window and blocks until it is closed.
func Show(cards []models.ScoredGPU, width, height int) {
	a := app.New()
	w := a.NewWindow(plot.Title)
	w.SetContent(NewScatter(cards))
	w.Resize(fyne.NewSize(float32(width), float32(height)))
	w.ShowAndRun()
}

// Scatter plots value score against benchmark, one dot per card.
type Scatter struct {
	widget.BaseWidget
	points []plot.Point
	bounds plot.Bounds
	hover  *plot.Hover
}

func NewScatter(cards []models.ScoredGPU) *Scatter {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	points := plot.PointsOf(cards)

	s := &Scatter{
		points: points,
		bounds: plot.BoundsOf(points),
		hover:  plot.NewHover(names),
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *Scatter) projection(size fyne.Size) plot.Projection {
	return plot.Projection{
		Bounds:  s.bounds,
		Width:   float64(size.Width),
		Height:  float64(size.Height),
		Padding: plotPadding,
	}
}

func (s *Scatter) MouseIn(ev *desktop.MouseEvent) { s.MouseMoved(ev) }

func (s *Scatter) MouseMoved(ev *desktop.MouseEvent) {
	hits := s.projection(s.Size()).Hits(s.points, float64(ev.Position.X), float64(ev.Position.Y), dotRadius)
	if s.hover.Update(hits) {
		s.Refresh()
	}
}

func (s *Scatter) MouseOut() {
	if s.hover.Clear() {
		s.Refresh()
	}
}

var _ desktop.Hoverable = (*Scatter)(nil)

func (s *Scatter) CreateRenderer() fyne.WidgetRenderer {
	r := &scatterRenderer{s: s}

	// background so the whole area receives hover events
	r.bg = canvas.NewRectangle(color.Transparent)
	r.xAxis = canvas.NewLine(theme.ForegroundColor())
	r.yAxis = canvas.NewLine(theme.ForegroundColor())
	r.title = canvas.NewText(plot.Title, theme.ForegroundColor())
	r.title.TextStyle = fyne.TextStyle{Bold: true}
	r.xLabel = canvas.NewText(plot.XAxisLabel, theme.ForegroundColor())
	r.yLabel = canvas.NewText(plot.YAxisLabel, theme.ForegroundColor())
	r.objs = []fyne.CanvasObject{r.bg, r.xAxis, r.yAxis, r.title, r.xLabel, r.yLabel}

	for _, tk := range plot.Ticks(s.bounds.MinX, s.bounds.MaxX, tickCount) {
		t := newTickText(tk.Label)
		r.xTicks = append(r.xTicks, tickLabel{tick: tk, text: t})
		r.objs = append(r.objs, t)
	}
	for _, tk := range plot.Ticks(s.bounds.MinY, s.bounds.MaxY, tickCount) {
		t := newTickText(tk.Label)
		r.yTicks = append(r.yTicks, tickLabel{tick: tk, text: t})
		r.objs = append(r.objs, t)
	}

	for range s.points {
		dot := canvas.NewCircle(dotColor)
		r.dots = append(r.dots, dot)
		r.objs = append(r.objs, dot)
	}

	r.tipBG = canvas.NewRectangle(tooltipFill)
	r.tipBG.StrokeColor = tooltipInk
	r.tipBG.StrokeWidth = 1
	r.tipText = canvas.NewText("", tooltipInk)
	r.tipText.TextSize = tooltipSize
	r.objs = append(r.objs, r.tipBG, r.tipText)
	return r
}

func newTickText(label string) *canvas.Text {
	t := canvas.NewText(label, theme.ForegroundColor())
	t.TextSize = 10
	return t
}

type tickLabel struct {
	tick plot.Tick
	text *canvas.Text
}

type scatterRenderer struct {
	s       *Scatter
	bg      *canvas.Rectangle
	xAxis   *canvas.Line
	yAxis   *canvas.Line
	title   *canvas.Text
	xLabel  *canvas.Text
	yLabel  *canvas.Text
	xTicks  []tickLabel
	yTicks  []tickLabel
	dots    []*canvas.Circle
	tipBG   *canvas.Rectangle
	tipText *canvas.Text
	objs    []fyne.CanvasObject
}

func (r *scatterRenderer) Destroy() {}

func (r *scatterRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	proj := r.s.projection(size)
	ax, ay, aw, ah := proj.Area()
	left, top := float32(ax), float32(ay)
	right, bottom := float32(ax+aw), float32(ay+ah)

	r.xAxis.Position1 = fyne.NewPos(left, bottom)
	r.xAxis.Position2 = fyne.NewPos(right, bottom)
	r.yAxis.Position1 = fyne.NewPos(left, top)
	r.yAxis.Position2 = fyne.NewPos(left, bottom)

	ts := r.title.MinSize()
	r.title.Move(fyne.NewPos((size.Width-ts.Width)/2, 6))
	xs := r.xLabel.MinSize()
	r.xLabel.Move(fyne.NewPos(left+(right-left-xs.Width)/2, size.Height-xs.Height-6))
	r.yLabel.Move(fyne.NewPos(6, top-r.yLabel.MinSize().Height-2))

	for _, tl := range r.xTicks {
		px, _ := proj.ToPixel(plot.Point{X: tl.tick.Value, Y: r.s.bounds.MinY})
		ms := tl.text.MinSize()
		tl.text.Move(fyne.NewPos(float32(px)-ms.Width/2, bottom+4))
	}
	for _, tl := range r.yTicks {
		_, py := proj.ToPixel(plot.Point{X: r.s.bounds.MinX, Y: tl.tick.Value})
		ms := tl.text.MinSize()
		tl.text.Move(fyne.NewPos(left-ms.Width-6, float32(py)-ms.Height/2))
	}

	d := float32(2 * dotRadius)
	for i, dot := range r.dots {
		px, py := proj.ToPixel(r.s.points[i])
		dot.Resize(fyne.NewSize(d, d))
		dot.Move(fyne.NewPos(float32(px)-dotRadius, float32(py)-dotRadius))
	}

	r.layoutTooltip(proj, size)
}

func (r *scatterRenderer) layoutTooltip(proj plot.Projection, size fyne.Size) {
	i, ok := r.s.hover.Anchor()
	if !ok {
		r.tipBG.Hide()
		r.tipText.Hide()
		return
	}

	r.tipText.Text = r.s.hover.Text()
	ts := fyne.MeasureText(r.tipText.Text, r.tipText.TextSize, r.tipText.TextStyle)
	bgW := ts.Width + 2*tooltipPad
	bgH := ts.Height + 2*tooltipPad

	px, py := proj.ToPixel(r.s.points[i])
	tx := float32(px) + tooltipShift.X
	ty := float32(py) + tooltipShift.Y - bgH
	if tx+bgW > size.Width {
		tx = float32(px) - tooltipShift.X - bgW
	}
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = float32(py) - tooltipShift.Y
	}

	r.tipBG.Resize(fyne.NewSize(bgW, bgH))
	r.tipBG.Move(fyne.NewPos(tx, ty))
	r.tipText.Move(fyne.NewPos(tx+tooltipPad, ty+tooltipPad))
	r.tipBG.Show()
	r.tipText.Show()
}

func (r *scatterRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(plotPadding.Left+plotPadding.Right+100), float32(plotPadding.Top+plotPadding.Bottom+100))
}

func (r *scatterRenderer) Objects() []fyne.CanvasObject { return r.objs }

// Refresh only redraws the tooltip; dots move with Layout on resize.
func (r *scatterRenderer) Refresh() {
	r.layoutTooltip(r.s.projection(r.s.Size()), r.s.Size())
	r.tipBG.Refresh()
	r.tipText.Refresh()
}
