package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// frame is the plotting rectangle shared by the cartesian renderers.
type frame struct {
	width, height int
	padding       float64
	chartWidth    float64
	chartHeight   float64
	min, max      float64
	axis, grid    string
}

func newFrame(width, height int, padding float64) (frame, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if padding <= 0 {
		padding = DefaultPadding
	}
	f := frame{
		width:       width,
		height:      height,
		padding:     padding,
		chartWidth:  float64(width) - 2*padding,
		chartHeight: float64(height) - 2*padding,
	}
	if f.chartWidth <= 0 || f.chartHeight <= 0 {
		return frame{}, fmt.Errorf("svg: viewport too small")
	}
	return f, nil
}

// fit sets the value range, always including zero.
func (f *frame) fit(minVal, maxVal float64) {
	minVal = math.Min(minVal, 0)
	maxVal = math.Max(maxVal, 0)
	if almostEqual(maxVal, minVal) {
		maxVal = minVal + 1
	}
	f.min, f.max = minVal, maxVal
}

func (f frame) bottom() float64 { return f.padding + f.chartHeight }

func (f frame) y(value float64) float64 {
	return f.bottom() - (value-f.min)*f.chartHeight/(f.max-f.min)
}

// x spreads n points across the width; a single point is centred.
func (f frame) x(i, n int) float64 {
	if n <= 1 {
		return f.padding + f.chartWidth/2
	}
	return f.padding + float64(i)*f.chartWidth/float64(n-1)
}

func (f frame) open(b *strings.Builder, title, desc, kind, defaultTitle, defaultDesc string) {
	titleID := makeID(title, kind+"-title")
	descID := makeID(title, kind+"-desc")
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-labelledby="%s %s">`, f.width, f.height, titleID, descID)
	fmt.Fprintf(b, `<title id="%s">%s</title>`, titleID, template.HTMLEscapeString(fallback(title, defaultTitle)))
	fmt.Fprintf(b, `<desc id="%s">%s</desc>`, descID, template.HTMLEscapeString(fallback(desc, defaultDesc)))
}

func (f frame) gridLines(b *strings.Builder, ticks int) {
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	for i := 0; i <= ticks; i++ {
		ratio := float64(i) / float64(ticks)
		y := f.bottom() - ratio*f.chartHeight
		value := f.min + (f.max-f.min)*ratio
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.5" stroke-dasharray="3,3" aria-hidden="true"></line>`, f.padding, y, f.padding+f.chartWidth, y, f.grid)
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="end">%s</text>`, f.padding-6, y+4, f.axis, template.HTMLEscapeString(formatTick(value)))
	}
	fmt.Fprintf(b, `<g stroke="%s" aria-label="Axes">`, f.axis)
	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="1"></line>`, f.padding, f.padding, f.padding, f.bottom())
	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="1"></line>`, f.padding, f.y(0), f.padding+f.chartWidth, f.y(0))
	b.WriteString("</g>")
}

func (f frame) label(b *strings.Builder, x float64, text string) {
	fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="middle">%s</text>`, x, f.bottom()+14, f.axis, template.HTMLEscapeString(text))
}

func (f frame) legend(b *strings.Builder, entries ...[2]string) {
	y := math.Max(f.padding-12, 12)
	x := f.padding
	for _, entry := range entries {
		fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="10" height="10" rx="2" fill="%s"></rect>`, x, y-8, entry[1])
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="start">%s</text>`, x+14, y, f.axis, template.HTMLEscapeString(entry[0]))
		x += 100
	}
}

// path joins the points of series into an SVG path.
func (f frame) path(series []float64) string {
	var p strings.Builder
	for i, value := range series {
		cmd := " L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&p, "%s%.2f %.2f", cmd, f.x(i, len(series)), f.y(value))
	}
	return p.String()
}

// closed drops the path of series down to the baseline to form an area.
func (f frame) closed(series []float64) string {
	n := len(series)
	return fmt.Sprintf("%s L%.2f %.2f L%.2f %.2f Z", f.path(series), f.x(n-1, n), f.bottom(), f.x(0, n), f.bottom())
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func bounds(series ...[]float64) (float64, float64) {
	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	if math.IsInf(minVal, 1) {
		return 0, 0
	}
	return minVal, maxVal
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "chart"
	}
	return cleaned + "-" + suffix
}

func formatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	case almostEqual(v, math.Round(v)):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
