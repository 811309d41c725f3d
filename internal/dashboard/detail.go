package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sysaltruism/dashboard/internal/trend"
)

// DetailMetric is a rendered cell of the detail metrics grid.
type DetailMetric struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	Trend      string `json:"trend"`
	TrendColor string `json:"trend_color"`
}

// BreakdownEntry is a rendered slice of the breakdown view.
type BreakdownEntry struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
	Amount  string `json:"amount,omitempty"`
	Color   string `json:"color"`
}

// Detail is the expanded view of a card.
type Detail struct {
	Metrics        []DetailMetric   `json:"metrics"`
	BreakdownTitle string           `json:"breakdown_title"`
	Breakdown      []BreakdownEntry `json:"breakdown"`
}

var numberPrinter = message.NewPrinter(language.AmericanEnglish)

// BuildDetail derives the metrics grid and breakdown of a card from its
// parsed value. Unknown cards produce an empty detail.
func BuildDetail(card CardConfig, theme Theme) (Detail, error) {
	detail := Detail{
		Metrics:        make([]DetailMetric, 0, len(card.Metrics)),
		BreakdownTitle: card.Breakdown.Title,
		Breakdown:      make([]BreakdownEntry, 0, len(card.Breakdown.Slices)),
	}
	if len(card.Metrics) == 0 && len(card.Breakdown.Slices) == 0 {
		return detail, nil
	}

	value, err := trend.ParseValue(card.Value)
	if err != nil {
		return Detail{}, fmt.Errorf("dashboard: detail for %q: %w", card.Title, err)
	}
	base := decimal.NewFromFloat(value.Number())

	for _, rule := range card.Metrics {
		detail.Metrics = append(detail.Metrics, DetailMetric{
			Label:      rule.Label,
			Value:      metricValue(rule, base),
			Trend:      rule.Trend,
			TrendColor: growthColor(rule.Trend),
		})
	}

	for i, slice := range card.Breakdown.Slices {
		entry := BreakdownEntry{
			Name:    slice.Name,
			Percent: slice.Percent,
			Color:   theme.Colors[i%len(theme.Colors)],
		}
		if slice.WithAmount {
			share := base.Mul(decimal.NewFromInt(int64(slice.Percent))).Div(decimal.NewFromInt(100)).Floor()
			entry.Amount = "₹" + formatCount(share)
		}
		detail.Breakdown = append(detail.Breakdown, entry)
	}
	return detail, nil
}

func metricValue(rule MetricRule, base decimal.Decimal) string {
	if rule.Fixed != "" {
		return rule.Fixed
	}
	var derived decimal.Decimal
	switch {
	case rule.Divisor != 0:
		derived = base.Div(decimal.NewFromFloat(rule.Divisor))
	default:
		derived = base.Mul(decimal.NewFromFloat(rule.Factor))
	}
	return rule.Prefix + formatCount(derived.Floor())
}

func formatCount(d decimal.Decimal) string {
	return numberPrinter.Sprintf("%d", d.IntPart())
}
