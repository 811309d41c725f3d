package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Area renders two filled series over shared labels. With IndependentScale
// each series is normalised to its own range so unlike units stay readable.
func Area(width, height int, seriesA, seriesB []float64, labels []string, opts AreaOpts) (template.HTML, error) {
	if len(seriesA) == 0 {
		return "", fmt.Errorf("svg: series required")
	}
	if len(seriesA) != len(labels) || (len(seriesB) > 0 && len(seriesB) != len(labels)) {
		return "", fmt.Errorf("svg: labels length must match series")
	}
	f, err := newFrame(width, height, opts.Padding)
	if err != nil {
		return "", err
	}
	f.axis = fallback(opts.AxisColor, axisColor)
	f.grid = fallback(opts.GridColor, gridColor)

	fillA := fallback(opts.ColorA, colorA)
	fillB := fallback(opts.ColorB, colorB)
	labelA := fallback(opts.SeriesALabel, "Series A")
	labelB := fallback(opts.SeriesBLabel, "Series B")

	frameB := f
	if opts.IndependentScale {
		f.fit(bounds(seriesA))
		frameB.fit(bounds(seriesB))
	} else {
		f.fit(bounds(seriesA, seriesB))
		frameB = f
	}

	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "area", "Area chart", "Stacked trend data")
	f.gridLines(&b, opts.TickCount)

	fmt.Fprintf(&b, `<path d="%s" fill="%s" fill-opacity="0.3" stroke="%s" stroke-width="2"></path>`, f.closed(seriesA), fillA, fillA)
	legend := [][2]string{{labelA, fillA}}
	if len(seriesB) > 0 {
		fmt.Fprintf(&b, `<path d="%s" fill="%s" fill-opacity="0.3" stroke="%s" stroke-width="2"></path>`, frameB.closed(seriesB), fillB, fillB)
		legend = append(legend, [2]string{labelB, fillB})
	}
	for i, label := range labels {
		f.label(&b, f.x(i, len(labels)), label)
	}
	f.legend(&b, legend...)

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
