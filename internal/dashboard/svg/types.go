package svg

// LineOpts customises the line chart renderer.
type LineOpts struct {
	Title       string
	Description string
	StrokeColor string
	FillColor   string
	AxisColor   string
	GridColor   string
	Padding     float64
	ShowDots    bool
	TickCount   int
	// Sparkline drops the grid, axes and labels, leaving only the path.
	Sparkline bool
}

// BarOpts customises the grouped bar chart renderer.
type BarOpts struct {
	Title        string
	Description  string
	SeriesALabel string
	SeriesBLabel string
	ColorA       string
	ColorB       string
	AxisColor    string
	GridColor    string
	Padding      float64
	TickCount    int
}

// AreaOpts customises the two-series area chart renderer.
type AreaOpts struct {
	Title        string
	Description  string
	SeriesALabel string
	SeriesBLabel string
	ColorA       string
	ColorB       string
	AxisColor    string
	GridColor    string
	Padding      float64
	TickCount    int
	// IndependentScale plots series B against its own range.
	IndependentScale bool
}

// DonutSlice is one wedge of a donut chart.
type DonutSlice struct {
	Label string
	Value float64
	Color string
}

// DonutOpts customises the donut renderer.
type DonutOpts struct {
	Title       string
	Description string
	TextColor   string
	// InnerRatio is the hole radius relative to the outer radius.
	InnerRatio float64
	ShowLegend bool
}

// Chart defaults, tuned for the dark dashboard theme.
const (
	DefaultWidth   = 720
	DefaultHeight  = 240
	DefaultPadding = 28.0
	DefaultTicks   = 4

	SparklineWidth  = 160
	SparklineHeight = 48

	// MutedColor strokes placeholder trends.
	MutedColor = "#64748b"

	axisColor = "#94a3b8"
	gridColor = "#334155"
	colorA    = "#6366f1"
	colorB    = "#4ade80"
)
