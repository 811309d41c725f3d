package export

import (
	"errors"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PNG chart dimensions.
const (
	PNGWidth  = 640
	PNGHeight = 320
)

var errNoPoints = errors.New("export: trend has no points")

// RenderTrendPNG draws the projected points of card as a line chart.
// color is a "#rrggbb" hex string; empty uses the default accent.
func RenderTrendPNG(w io.Writer, card CardTrend, color string) error {
	if len(card.Points) == 0 {
		return errNoPoints
	}
	xs := make([]float64, len(card.Points))
	ys := make([]float64, len(card.Points))
	ticks := make([]chart.Tick, len(card.Points))
	for i, point := range card.Points {
		xs[i] = float64(i)
		ys[i] = point.Value
		ticks[i] = chart.Tick{Value: float64(i), Label: point.Month}
	}

	stroke := drawing.ColorFromHex(strings.TrimPrefix(fallbackColor(color), "#"))
	style := chart.Style{
		StrokeColor: stroke,
		StrokeWidth: 3,
		DotColor:    stroke,
		DotWidth:    4,
		FillColor:   stroke.WithAlpha(48),
	}
	if !card.Available {
		style.StrokeDashArray = []float64{6, 4}
		style.FillColor = drawing.ColorTransparent
	}

	graph := chart.Chart{
		Title:      card.Title,
		Width:      PNGWidth,
		Height:     PNGHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis:      chart.YAxis{Range: yRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: card.Title, XValues: xs, YValues: ys, Style: style},
		},
	}
	return graph.Render(chart.PNG, w)
}

// yRange pads a flat series so the renderer has a non-empty domain.
func yRange(ys []float64) *chart.ContinuousRange {
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	if hi == lo {
		pad := max(1, hi*0.1)
		if hi < 0 {
			pad = max(1, -hi*0.1)
		}
		return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
	}
	pad := (hi - lo) * 0.1
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func fallbackColor(color string) string {
	if strings.TrimSpace(color) == "" {
		return "#6366f1"
	}
	return color
}
