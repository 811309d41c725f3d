package dashboard

import (
	"strings"

	"github.com/sysaltruism/dashboard/internal/trend"
)

// Theme is the colour scheme used by a card's detail charts.
type Theme struct {
	Colors    [4]string
	Highlight string
	TextColor string
}

// MetricRule derives one detail metric from the card value. Exactly one of
// Factor, Divisor or Fixed is meaningful: Fixed wins, then Divisor, then Factor.
type MetricRule struct {
	Label   string
	Factor  float64
	Divisor float64
	Fixed   string
	Prefix  string
	Trend   string
}

// BreakdownSlice is one category of a card's proportion view.
type BreakdownSlice struct {
	Name       string
	Percent    int
	WithAmount bool
}

// Breakdown groups the proportion view of a card.
type Breakdown struct {
	Title  string
	Slices []BreakdownSlice
}

// CardConfig is a row of the per-title configuration table.
type CardConfig struct {
	Slug      string
	Title     string
	Icon      string
	Value     string
	Growth    string
	Rounding  trend.Rounding
	Theme     Theme
	Metrics   []MetricRule
	Breakdown Breakdown
	Hidden    bool
}

// NavItem is an entry of the side navigation.
type NavItem struct {
	Icon     string
	Label    string
	CardSlug string
	Badge    int
}

// DefaultTheme applies to titles without their own theme.
var DefaultTheme = Theme{
	Colors:    [4]string{"#6366f1", "#22c55e", "#f59e0b", "#ec4899"},
	Highlight: "#818cf8",
	TextColor: "#a5b4fc",
}

const (
	trendUp   = "#22c55e"
	trendDown = "#ef4444"
)

// Catalog is the literal configuration of the dashboard.
type Catalog struct {
	Cards  []CardConfig
	Nav    []NavItem
	Charts Charts
}

// DefaultCatalog returns the Systemic Altruism dashboard definition.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Cards:  defaultCards(),
		Nav:    defaultNav(),
		Charts: defaultCharts(),
	}
}

// Visible returns the cards rendered on the overview grid, in order.
func (c *Catalog) Visible() []CardConfig {
	cards := make([]CardConfig, 0, len(c.Cards))
	for _, card := range c.Cards {
		if !card.Hidden {
			cards = append(cards, card)
		}
	}
	return cards
}

// Lookup finds a card by slug or by exact title.
func (c *Catalog) Lookup(key string) (CardConfig, bool) {
	key = strings.TrimSpace(key)
	for _, card := range c.Cards {
		if card.Slug == key || card.Title == key {
			return card, true
		}
	}
	return CardConfig{}, false
}

// ThemeFor returns the theme configured for title, or DefaultTheme.
func (c *Catalog) ThemeFor(title string) Theme {
	if card, ok := c.Lookup(title); ok && card.Theme != (Theme{}) {
		return card.Theme
	}
	return DefaultTheme
}

// Projector builds a trend projector from the rounding column of the table.
func (c *Catalog) Projector() *trend.Projector {
	table := make(map[string]trend.Rounding, len(c.Cards))
	for _, card := range c.Cards {
		table[card.Title] = card.Rounding
	}
	return trend.NewProjector(table)
}

func growthColor(growth string) string {
	if trend.IsPositive(growth) {
		return trendUp
	}
	return trendDown
}

func defaultCards() []CardConfig {
	return []CardConfig{
		{
			Slug:   "altruism-clubs",
			Title:  "Altruism Clubs",
			Icon:   "🎓",
			Value:  "42",
			Growth: "+8 this month",
			Theme:  DefaultTheme,
			Metrics: []MetricRule{
				{Label: "Active Members", Factor: 25, Trend: "+20% this month"},
				{Label: "Events This Month", Factor: 2, Trend: "+5 from last month"},
				{Label: "Average Attendance", Factor: 15, Trend: "+12% this month"},
				{Label: "Member Satisfaction", Fixed: "92%", Trend: "+3% this month"},
			},
			Breakdown: Breakdown{
				Title: "Club Activities Distribution",
				Slices: []BreakdownSlice{
					{Name: "Community Service", Percent: 40},
					{Name: "Fundraising", Percent: 25},
					{Name: "Workshops", Percent: 20},
					{Name: "Social Events", Percent: 15},
				},
			},
		},
		{
			Slug:   "bloom-downloads",
			Title:  "Bloom Downloads",
			Icon:   "📱",
			Value:  "12,543",
			Growth: "+2.3k this week",
			Theme: Theme{
				Colors:    [4]string{"#6366f1", "#f43f5e", "#84cc16", "#8b5cf6"},
				Highlight: "#818cf8",
				TextColor: "#a5b4fc",
			},
			Metrics: []MetricRule{
				{Label: "iOS Downloads", Factor: 0.6, Trend: "+12% this month"},
				{Label: "Android Downloads", Factor: 0.4, Trend: "+8% this month"},
				{Label: "Active Users", Factor: 0.75, Trend: "+15% this month"},
				{Label: "User Engagement", Fixed: "85%", Trend: "+5% this month"},
			},
			Breakdown: Breakdown{
				Title: "User Distribution",
				Slices: []BreakdownSlice{
					{Name: "Metro Cities", Percent: 45},
					{Name: "Tier 2 Cities", Percent: 30},
					{Name: "Tier 3 Cities", Percent: 15},
					{Name: "Other Regions", Percent: 10},
				},
			},
		},
		{
			Slug:     "luxury-goods-revenue",
			Title:    trend.CurrencyTitle,
			Icon:     "✨",
			Value:    "₹8.2L",
			Growth:   "+32% MTD",
			Rounding: trend.RoundCents,
			Theme: Theme{
				Colors:    [4]string{"#eab308", "#06b6d4", "#ef4444", "#10b981"},
				Highlight: "#fbbf24",
				TextColor: "#fcd34d",
			},
			Metrics: []MetricRule{
				{Label: "Average Order Value", Divisor: 100, Prefix: "₹", Trend: "+18% this month"},
				{Label: "Total Orders", Divisor: 10000, Trend: "+25 orders today"},
				{Label: "Customer Retention", Fixed: "78%", Trend: "+5% this month"},
				{Label: "New Customers", Divisor: 20000, Trend: "+12 today"},
			},
			Breakdown: Breakdown{
				Title: "Revenue by Category",
				Slices: []BreakdownSlice{
					{Name: "Premium Jewelry", Percent: 45, WithAmount: true},
					{Name: "Designer Watches", Percent: 30, WithAmount: true},
					{Name: "Limited Editions", Percent: 15, WithAmount: true},
					{Name: "Exclusive Items", Percent: 10, WithAmount: true},
				},
			},
		},
		{
			Slug:   "fellowship-applications",
			Title:  "Fellowship Applications",
			Icon:   "🌟",
			Value:  "789",
			Growth: "+124 this batch",
			Theme: Theme{
				Colors:    [4]string{"#d946ef", "#0ea5e9", "#f97316", "#14b8a6"},
				Highlight: "#f472b6",
				TextColor: "#f9a8d4",
			},
			Metrics: []MetricRule{
				{Label: "Completed Applications", Factor: 0.8, Trend: "+45 this week"},
				{Label: "Shortlisted", Factor: 0.3, Trend: "+15 this week"},
				{Label: "Interview Stage", Factor: 0.15, Trend: "+8 this week"},
				{Label: "Success Rate", Fixed: "18%", Trend: "+2% this month"},
			},
			Breakdown: Breakdown{
				Title: "Application Status Distribution",
				Slices: []BreakdownSlice{
					{Name: "Under Review", Percent: 40},
					{Name: "Shortlisted", Percent: 30},
					{Name: "Interview", Percent: 20},
					{Name: "Selected", Percent: 10},
				},
			},
		},
		{
			Slug:   "total-donations",
			Title:  "Total Donations",
			Icon:   "💰",
			Value:  "₹12,45,000",
			Growth: "+15% this month",
			Hidden: true,
			Theme: Theme{
				Colors:    [4]string{"#22c55e", "#3b82f6", "#f59e0b", "#ec4899"},
				Highlight: "#34d399",
				TextColor: "#6ee7b7",
			},
			Metrics: []MetricRule{
				{Label: "Average Donation", Factor: 0.002, Prefix: "₹", Trend: "+15% this month"},
				{Label: "Total Donors", Factor: 0.005, Trend: "+28 today"},
				{Label: "Recurring Donors", Factor: 0.003, Trend: "+12% this month"},
				{Label: "Donation Success Rate", Fixed: "94%", Trend: "+2% this month"},
			},
			Breakdown: Breakdown{
				Title: "Donations by Category",
				Slices: []BreakdownSlice{
					{Name: "Education", Percent: 40, WithAmount: true},
					{Name: "Healthcare", Percent: 30, WithAmount: true},
					{Name: "Community", Percent: 20, WithAmount: true},
					{Name: "Emergency", Percent: 10, WithAmount: true},
				},
			},
		},
	}
}

func defaultNav() []NavItem {
	return []NavItem{
		{Icon: "🏠", Label: "Dashboard"},
		{Icon: "🎭", Label: "SA Club", CardSlug: "altruism-clubs"},
		{Icon: "🌸", Label: "Bloom Insights", CardSlug: "bloom-downloads", Badge: 3},
		{Icon: "💎", Label: "Luxury Goods", CardSlug: "luxury-goods-revenue"},
		{Icon: "🌟", Label: "Fellowship", CardSlug: "fellowship-applications"},
	}
}
