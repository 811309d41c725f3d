package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Donut renders a proportion chart. Slices with non-positive values are
// skipped; at least one positive slice is required.
func Donut(width, height int, slices []DonutSlice, opts DonutOpts) (template.HTML, error) {
	total := 0.0
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total <= 0 {
		return "", fmt.Errorf("svg: donut needs a positive slice")
	}
	if width <= 0 {
		width = DefaultHeight
	}
	if height <= 0 {
		height = DefaultHeight
	}
	inner := opts.InnerRatio
	if inner <= 0 || inner >= 1 {
		inner = 0.6
	}
	text := fallback(opts.TextColor, axisColor)

	legendWidth := 0.0
	if opts.ShowLegend {
		legendWidth = float64(width) * 0.4
	}
	cx := (float64(width) - legendWidth) / 2
	cy := float64(height) / 2
	outer := math.Min(cx, cy) - 8
	if outer <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}
	hole := outer * inner

	f := frame{width: width, height: height}
	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "donut", "Donut chart", "Category proportions")

	angle := -math.Pi / 2
	row := 0
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		sweep := 2 * math.Pi * s.Value / total
		share := s.Value / total * 100
		aria := fmt.Sprintf("%s %.0f%%", s.Label, share)
		if sweep >= 2*math.Pi-1e-9 {
			// A full ring cannot be drawn as a single arc.
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f" aria-label="%s"></circle>`, cx, cy, (outer+hole)/2, s.Color, outer-hole, template.HTMLEscapeString(aria))
		} else {
			fmt.Fprintf(&b, `<path d="%s" fill="%s" aria-label="%s"></path>`, wedge(cx, cy, outer, hole, angle, angle+sweep), s.Color, template.HTMLEscapeString(aria))
		}
		angle += sweep

		if opts.ShowLegend {
			x := float64(width) - legendWidth + 8
			y := 20 + float64(row)*18
			fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="10" height="10" rx="2" fill="%s"></rect>`, x, y-9, s.Color)
			fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="11">%s</text>`, x+16, y, text, template.HTMLEscapeString(aria))
			row++
		}
	}
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

func wedge(cx, cy, outer, inner, from, to float64) string {
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	ox1, oy1 := cx+outer*math.Cos(from), cy+outer*math.Sin(from)
	ox2, oy2 := cx+outer*math.Cos(to), cy+outer*math.Sin(to)
	ix1, iy1 := cx+inner*math.Cos(to), cy+inner*math.Sin(to)
	ix2, iy2 := cx+inner*math.Cos(from), cy+inner*math.Sin(from)
	return fmt.Sprintf("M%.2f %.2f A%.2f %.2f 0 %d 1 %.2f %.2f L%.2f %.2f A%.2f %.2f 0 %d 0 %.2f %.2f Z",
		ox1, oy1, outer, outer, large, ox2, oy2,
		ix1, iy1, inner, inner, large, ix2, iy2)
}
