package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailFor(t *testing.T, slug string) Detail {
	t.Helper()
	catalog := DefaultCatalog()
	card, ok := catalog.Lookup(slug)
	require.True(t, ok, slug)
	detail, err := BuildDetail(card, catalog.ThemeFor(card.Title))
	require.NoError(t, err)
	return detail
}

func metricValues(detail Detail) []string {
	values := make([]string, 0, len(detail.Metrics))
	for _, m := range detail.Metrics {
		values = append(values, m.Value)
	}
	return values
}

func TestBuildDetailMetrics(t *testing.T) {
	cases := map[string][]string{
		"altruism-clubs":          {"1,050", "84", "630", "92%"},
		"bloom-downloads":         {"7,525", "5,017", "9,407", "85%"},
		"luxury-goods-revenue":    {"₹8,200", "82", "78%", "41"},
		"fellowship-applications": {"631", "236", "118", "18%"},
	}
	for slug, want := range cases {
		t.Run(slug, func(t *testing.T) {
			assert.Equal(t, want, metricValues(detailFor(t, slug)))
		})
	}
}

func TestBuildDetailBreakdownAmounts(t *testing.T) {
	detail := detailFor(t, "luxury-goods-revenue")
	require.Len(t, detail.Breakdown, 4)

	assert.Equal(t, "Revenue by Category", detail.BreakdownTitle)
	assert.Equal(t, "₹369,000", detail.Breakdown[0].Amount)
	assert.Equal(t, "₹246,000", detail.Breakdown[1].Amount)
	assert.Equal(t, "₹123,000", detail.Breakdown[2].Amount)
	assert.Equal(t, "₹82,000", detail.Breakdown[3].Amount)
	assert.Equal(t, "#eab308", detail.Breakdown[0].Color)
}

func TestBuildDetailWithoutAmounts(t *testing.T) {
	detail := detailFor(t, "altruism-clubs")
	for _, entry := range detail.Breakdown {
		assert.Empty(t, entry.Amount)
	}
	assert.Equal(t, 40, detail.Breakdown[0].Percent)
}

func TestBuildDetailTrendColors(t *testing.T) {
	card := CardConfig{
		Title: "Mixed",
		Value: "100",
		Metrics: []MetricRule{
			{Label: "Up", Factor: 1, Trend: "+3 today"},
			{Label: "Down", Factor: 1, Trend: "-3 today"},
		},
	}
	detail, err := BuildDetail(card, DefaultTheme)
	require.NoError(t, err)
	assert.Equal(t, trendUp, detail.Metrics[0].TrendColor)
	assert.Equal(t, trendDown, detail.Metrics[1].TrendColor)
}

func TestBuildDetailEmptyCard(t *testing.T) {
	detail, err := BuildDetail(CardConfig{Title: "Unknown", Value: "n/a"}, DefaultTheme)
	require.NoError(t, err)
	assert.Empty(t, detail.Metrics)
	assert.Empty(t, detail.Breakdown)
}

func TestBuildDetailRejectsUnparseableValue(t *testing.T) {
	card := CardConfig{Title: "Bad", Value: "n/a", Metrics: []MetricRule{{Label: "x", Factor: 2}}}
	_, err := BuildDetail(card, DefaultTheme)
	assert.Error(t, err)
}
