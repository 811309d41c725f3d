package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Line renders a responsive SVG line chart for the given series and labels.
// With opts.Sparkline set, labels may be nil and only the stroke is drawn.
func Line(width, height int, series []float64, labels []string, opts LineOpts) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("svg: series required")
	}
	if !opts.Sparkline && len(series) != len(labels) {
		return "", fmt.Errorf("svg: labels length must match series")
	}
	padding := opts.Padding
	if opts.Sparkline && padding <= 0 {
		padding = 4
	}
	f, err := newFrame(width, height, padding)
	if err != nil {
		return "", err
	}
	f.axis = fallback(opts.AxisColor, axisColor)
	f.grid = fallback(opts.GridColor, gridColor)
	stroke := fallback(opts.StrokeColor, colorA)

	minVal, maxVal := bounds(series)
	if opts.Sparkline {
		// Sparklines follow the data range so small moves stay visible.
		if almostEqual(minVal, maxVal) {
			minVal, maxVal = minVal-1, maxVal+1
		}
		f.min, f.max = minVal, maxVal
	} else {
		f.fit(minVal, maxVal)
	}

	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "line", "Line chart", "Trend data")
	if !opts.Sparkline {
		f.gridLines(&b, opts.TickCount)
	}
	if opts.FillColor != "" {
		fmt.Fprintf(&b, `<path d="%s" fill="%s" stroke="none" aria-hidden="true"></path>`, f.closed(series), opts.FillColor)
	}
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="round" stroke-linecap="round"></path>`, f.path(series), stroke)
	if opts.ShowDots {
		for i, value := range series {
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="3" fill="%s"></circle>`, f.x(i, len(series)), f.y(value), stroke)
		}
	}
	if !opts.Sparkline {
		for i, label := range labels {
			f.label(&b, f.x(i, len(labels)), label)
		}
	}
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
