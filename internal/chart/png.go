package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	pngWidth    = 1024
	pngHeight   = 480
	maxXTicks   = 20
	scatterDots = 5
)

// Exportable is a chart that can be drawn as an image.
type Exportable interface {
	PNG(w io.Writer) error
}

// RenderPNG writes c to w as a PNG image.
func RenderPNG(w io.Writer, c Exportable) error {
	if err := c.PNG(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}

// PNG implements Exportable. Labels are placed at their index on the x axis.
func (c LineChart) PNG(w io.Writer) error {
	xs := make([]float64, len(c.Labels))
	for i := range xs {
		xs[i] = float64(i)
	}

	series := make([]gochart.Series, 0, len(c.Series))
	for _, s := range c.Series {
		style := gochart.Style{
			StrokeColor: parseColor(s.Color),
			StrokeWidth: 2,
		}
		if s.Dashed {
			style.StrokeDashArray = []float64{5, 5}
		}
		if len(s.Points) > 0 && len(s.Points) == len(s.Values) {
			points := s.Points
			style.DotWidthProvider = func(_, _ gochart.Range, i int, _, _ float64) float64 {
				return points[i].Radius
			}
			style.DotColorProvider = func(_, _ gochart.Range, i int, _, _ float64) drawing.Color {
				return parseColor(points[i].Color)
			}
		}

		series = append(series, gochart.ContinuousSeries{
			Name:    s.Label,
			Style:   style,
			XValues: xs[:len(s.Values)],
			YValues: s.Values,
		})
	}

	graph := gochart.Chart{
		Title:      c.Title,
		Width:      pngWidth,
		Height:     pngHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Ticks: labelTicks(c.Labels)},
		YAxis:      gochart.YAxis{Name: c.YLabel},
		Series:     series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return graph.Render(gochart.PNG, w)
}

// PNG implements Exportable.
func (c ScatterChart) PNG(w io.Writer) error {
	series := make([]gochart.Series, 0, len(c.Series))
	for _, s := range c.Series {
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}

		color := parseColor(s.Color)
		style := gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotWidth:    scatterDots,
			DotColor:    color,
		}
		if s.Line {
			style = gochart.Style{
				StrokeColor:     color,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5, 5},
			}
		}

		series = append(series, gochart.ContinuousSeries{
			Name:    s.Label,
			Style:   style,
			XValues: xs,
			YValues: ys,
		})
	}

	title := c.Title
	if c.Subtitle != "" {
		title = fmt.Sprintf("%s (%s)", c.Title, c.Subtitle)
	}

	graph := gochart.Chart{
		Title:      title,
		Width:      pngWidth,
		Height:     pngHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: c.XLabel},
		YAxis:      gochart.YAxis{Name: c.YLabel},
		Series:     series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return graph.Render(gochart.PNG, w)
}

// labelTicks thins the labels out to at most maxXTicks ticks.
func labelTicks(labels []string) []gochart.Tick {
	if len(labels) == 0 {
		return nil
	}

	step := int(math.Ceil(float64(len(labels)) / maxXTicks))
	ticks := make([]gochart.Tick, 0, maxXTicks+1)
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: labels[i]})
	}

	return ticks
}

// parseColor accepts the CSS rgba() and hsla() colours used by the charts.
func parseColor(css string) drawing.Color {
	if !strings.HasPrefix(css, "hsla(") {
		return drawing.ParseColor(css)
	}

	var h, s, l, a float64
	if _, err := fmt.Sscanf(css, "hsla(%g, %g%%, %g%%, %g)", &h, &s, &l, &a); err != nil {
		return drawing.ColorBlack
	}

	return hsla(h, s/100, l/100, a)
}

func hsla(h, s, l, a float64) drawing.Color {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return drawing.Color{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: uint8(math.Round(a * 255)),
	}
}
