package dashboard

// Series is a named column of a chart dataset.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// SeriesChart is a category axis with up to two series.
type SeriesChart struct {
	Title  string
	Labels []string
	A      Series
	B      Series
}

// Slice is one wedge of a pie chart.
type Slice struct {
	Name  string
	Value float64
	Color string
}

// PieChart is a categorical proportion chart.
type PieChart struct {
	Title  string
	Slices []Slice
}

// Charts holds the four overview charts.
type Charts struct {
	Donations  SeriesChart
	Social     SeriesChart
	Engagement SeriesChart
	Clubs      PieChart
}

func defaultCharts() Charts {
	return Charts{
		Donations: SeriesChart{
			Title:  "Monthly Donations Growth",
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May"},
			A:      Series{Name: "Donations", Color: "#6366f1", Values: []float64{250000, 320000, 280000, 450000, 520000}},
			B:      Series{Name: "Campaigns", Color: "#4ade80", Values: []float64{3, 4, 3, 5, 6}},
		},
		Social: SeriesChart{
			Title:  "Social Media Impact",
			Labels: []string{"Instagram", "LinkedIn", "Twitter", "YouTube", "Facebook"},
			A:      Series{Name: "Views", Color: "#6366f1", Values: []float64{25000, 15000, 18000, 12000, 20000}},
			B:      Series{Name: "Shares", Color: "#4ade80", Values: []float64{1200, 800, 1500, 600, 900}},
		},
		Engagement: SeriesChart{
			Title:  "Bloom App Engagement",
			Labels: []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"},
			A:      Series{Name: "Active Users", Color: "#6366f1", Values: []float64{8400, 9300, 8900, 11200, 12600}},
			B:      Series{Name: "Session Time", Color: "#4ade80", Values: []float64{24, 28, 25, 32, 35}},
		},
		Clubs: PieChart{
			Title: "College Club Distribution",
			Slices: []Slice{
				{Name: "Engineering", Value: 18, Color: "#6366f1"},
				{Name: "Medical", Value: 8, Color: "#4ade80"},
				{Name: "Arts & Science", Value: 10, Color: "#f472b6"},
				{Name: "Management", Value: 6, Color: "#fb923c"},
			},
		},
	}
}
