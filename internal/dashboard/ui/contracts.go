package ui

import (
	"html/template"
	"strings"

	"github.com/sysaltruism/dashboard/internal/dashboard"
	"github.com/sysaltruism/dashboard/internal/dashboard/svg"
	"github.com/sysaltruism/dashboard/internal/trend"
	"github.com/sysaltruism/dashboard/internal/view"
)

// LineRenderer abstracts SVG line chart rendering.
type LineRenderer interface {
	Line(width, height int, series []float64, labels []string, opts svg.LineOpts) (template.HTML, error)
}

// BarRenderer abstracts SVG bar chart rendering.
type BarRenderer interface {
	Bars(width, height int, seriesA, seriesB []float64, labels []string, opts svg.BarOpts) (template.HTML, error)
}

// AreaRenderer abstracts SVG area chart rendering.
type AreaRenderer interface {
	Area(width, height int, seriesA, seriesB []float64, labels []string, opts svg.AreaOpts) (template.HTML, error)
}

// DonutRenderer abstracts SVG donut chart rendering.
type DonutRenderer interface {
	Donut(width, height int, slices []svg.DonutSlice, opts svg.DonutOpts) (template.HTML, error)
}

// Renderers bundles the chart renderers used by the pages.
type Renderers struct {
	Line  LineRenderer
	Bar   BarRenderer
	Area  AreaRenderer
	Donut DonutRenderer
}

// Complete reports whether every renderer is set.
func (r Renderers) Complete() bool {
	return r.Line != nil && r.Bar != nil && r.Area != nil && r.Donut != nil
}

// CardViewModel is a stat card on the overview grid.
type CardViewModel struct {
	Slug           string
	Title          string
	Icon           string
	Value          string
	Growth         string
	GrowthColor    string
	Href           string
	TrendAvailable bool
	Sparkline      template.HTML
}

// ChartViewModel is a rendered overview chart.
type ChartViewModel struct {
	Title string
	SVG   template.HTML
}

// DashboardViewModel combines the overview page data.
type DashboardViewModel struct {
	Cards      []CardViewModel
	Charts     []ChartViewModel
	PDFEnabled bool
}

// DetailViewModel combines the card detail page data.
type DetailViewModel struct {
	Card           CardViewModel
	Trend          []trend.Point
	TrendSVG       template.HTML
	Metrics        []dashboard.DetailMetric
	BreakdownTitle string
	Breakdown      []dashboard.BreakdownEntry
	BreakdownSVG   template.HTML
	PNGHref        string
}

// CardHref is the detail page path of a card.
func CardHref(slug string) string {
	return "/cards/" + slug
}

// ToCardViewModel converts a service card; the sparkline is filled in later.
func ToCardViewModel(card dashboard.CardView) CardViewModel {
	return CardViewModel{
		Slug:           card.Slug,
		Title:          card.Title,
		Icon:           card.Icon,
		Value:          card.Value,
		Growth:         card.Growth,
		GrowthColor:    card.GrowthColor,
		Href:           CardHref(card.Slug),
		TrendAvailable: card.TrendAvailable,
	}
}

// ToNavLinks marks the entry matching currentPath as active.
func ToNavLinks(items []dashboard.NavItem, currentPath string) []view.NavLink {
	links := make([]view.NavLink, 0, len(items))
	for _, item := range items {
		href := "/"
		if item.CardSlug != "" {
			href = CardHref(item.CardSlug)
		}
		active := currentPath == href || (href != "/" && strings.HasPrefix(currentPath, href+"/"))
		links = append(links, view.NavLink{
			Icon:   item.Icon,
			Label:  item.Label,
			Href:   href,
			Badge:  item.Badge,
			Active: active,
		})
	}
	return links
}

// TrendSeries splits points into chart values and month labels.
func TrendSeries(points []trend.Point) ([]float64, []string) {
	values := make([]float64, 0, len(points))
	labels := make([]string, 0, len(points))
	for _, point := range points {
		values = append(values, point.Value)
		labels = append(labels, point.Month)
	}
	return values, labels
}

// DonutSlices maps pie data onto the renderer's slice type.
func DonutSlices(slices []dashboard.Slice) []svg.DonutSlice {
	out := make([]svg.DonutSlice, 0, len(slices))
	for _, s := range slices {
		out = append(out, svg.DonutSlice{Label: s.Name, Value: s.Value, Color: s.Color})
	}
	return out
}

// BreakdownSlices maps a detail breakdown onto the renderer's slice type.
func BreakdownSlices(entries []dashboard.BreakdownEntry) []svg.DonutSlice {
	out := make([]svg.DonutSlice, 0, len(entries))
	for _, e := range entries {
		out = append(out, svg.DonutSlice{Label: e.Name, Value: float64(e.Percent), Color: e.Color})
	}
	return out
}
