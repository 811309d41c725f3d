package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Bars renders a grouped bar chart comparing two series.
func Bars(width, height int, seriesA, seriesB []float64, labels []string, opts BarOpts) (template.HTML, error) {
	if len(seriesA) == 0 && len(seriesB) == 0 {
		return "", fmt.Errorf("svg: at least one series required")
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("svg: labels required")
	}
	if len(seriesA) > 0 && len(seriesA) != len(labels) {
		return "", fmt.Errorf("svg: seriesA length must match labels")
	}
	if len(seriesB) > 0 && len(seriesB) != len(labels) {
		return "", fmt.Errorf("svg: seriesB length must match labels")
	}
	f, err := newFrame(width, height, opts.Padding)
	if err != nil {
		return "", err
	}
	f.axis = fallback(opts.AxisColor, axisColor)
	f.grid = fallback(opts.GridColor, gridColor)
	f.fit(bounds(seriesA, seriesB))

	fillA := fallback(opts.ColorA, colorA)
	fillB := fallback(opts.ColorB, colorB)
	labelA := fallback(opts.SeriesALabel, "Series A")
	labelB := fallback(opts.SeriesBLabel, "Series B")

	groupWidth := f.chartWidth / float64(len(labels))
	barWidth := groupWidth / 3

	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "bar", "Bar chart", "Grouped bar comparison")
	f.gridLines(&b, opts.TickCount)

	for i, label := range labels {
		left := f.padding + float64(i)*groupWidth
		if len(seriesA) > 0 {
			f.bar(&b, left+barWidth*0.3, barWidth, seriesA[i], fillA, labelA+" "+label)
		}
		if len(seriesB) > 0 {
			f.bar(&b, left+barWidth*1.4, barWidth, seriesB[i], fillB, labelB+" "+label)
		}
		f.label(&b, left+groupWidth/2, label)
	}

	var legend [][2]string
	if len(seriesA) > 0 {
		legend = append(legend, [2]string{labelA, fillA})
	}
	if len(seriesB) > 0 {
		legend = append(legend, [2]string{labelB, fillB})
	}
	f.legend(&b, legend...)

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

// bar draws one rect between the zero line and value, clipped to the frame.
func (f frame) bar(b *strings.Builder, x, width, value float64, fill, aria string) {
	zero := f.y(0)
	top := math.Max(math.Min(f.y(value), zero), f.padding)
	end := math.Min(math.Max(f.y(value), zero), f.bottom())
	height := math.Max(end-top, 0)
	fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="3" fill="%s" aria-label="%s"></rect>`, x, top, width, height, fill, template.HTMLEscapeString(aria))
}
