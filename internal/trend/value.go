package trend

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ValueKind classifies how a metric value was written on the card.
type ValueKind int

const (
	// PlainNumber is a bare numeric literal such as "42" or 42.
	PlainNumber ValueKind = iota
	// FormattedInteger carries thousands separators, e.g. "12,543".
	FormattedInteger
	// Currency is prefixed with a currency symbol, e.g. "$1,200" or "₹8.2L".
	Currency
	// Percentage ends with a percent sign, e.g. "94%".
	Percentage
)

func (k ValueKind) String() string {
	switch k {
	case FormattedInteger:
		return "formatted_integer"
	case Currency:
		return "currency"
	case Percentage:
		return "percentage"
	default:
		return "plain_number"
	}
}

var currencySymbols = []string{"$", "₹", "€", "£"}

// Magnitude suffixes accepted after the number. Longest first so "Cr" wins over "C".
var magnitudeSuffixes = []struct {
	token string
	scale decimal.Decimal
}{
	{"cr", decimal.New(1, 7)},
	{"k", decimal.New(1, 3)},
	{"l", decimal.New(1, 5)},
	{"m", decimal.New(1, 6)},
	{"b", decimal.New(1, 9)},
}

var numberPattern = regexp.MustCompile(`[-+]?(\d+(\.\d+)?|\.\d+)`)

// MetricValue is a card value after the one-time parse at the input boundary.
type MetricValue struct {
	Kind   ValueKind
	Amount float64
	Symbol string
	Raw    string
}

// NumberValue wraps a value that was already numeric.
func NumberValue(v float64) MetricValue {
	return MetricValue{Kind: PlainNumber, Amount: v, Raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

// ParseValue decides the value kind once and extracts its amount. Every
// thousands separator is removed, not only the first one.
func ParseValue(raw string) (MetricValue, error) {
	text := strings.TrimSpace(raw)
	value := MetricValue{Kind: PlainNumber, Raw: raw}

	switch {
	case containsCurrency(text):
		value.Kind = Currency
		for _, symbol := range currencySymbols {
			if strings.Contains(text, symbol) {
				value.Symbol = symbol
				text = strings.ReplaceAll(text, symbol, "")
			}
		}
	case strings.Contains(text, "%"):
		value.Kind = Percentage
		value.Symbol = "%"
		text = strings.ReplaceAll(text, "%", "")
	case strings.Contains(text, ","):
		value.Kind = FormattedInteger
	}
	text = strings.ReplaceAll(text, ",", "")
	text = strings.TrimSpace(text)

	loc := numberPattern.FindStringIndex(text)
	if loc == nil {
		return MetricValue{}, fmt.Errorf("%w: %q", ErrUnparseableValue, raw)
	}
	amount, err := decimal.NewFromString(strings.TrimPrefix(text[loc[0]:loc[1]], "+"))
	if err != nil {
		return MetricValue{}, fmt.Errorf("%w: %q", ErrUnparseableValue, raw)
	}
	if value.Kind != Percentage {
		amount = amount.Mul(magnitude(text[loc[1]:]))
	}
	value.Amount = amount.InexactFloat64()
	if math.IsInf(value.Amount, 0) {
		return MetricValue{}, fmt.Errorf("%w: %q", ErrUnparseableValue, raw)
	}
	return value, nil
}

// Number returns the numeric amount used as the anchor of a projection.
func (v MetricValue) Number() float64 {
	return v.Amount
}

func containsCurrency(text string) bool {
	for _, symbol := range currencySymbols {
		if strings.Contains(text, symbol) {
			return true
		}
	}
	return false
}

func magnitude(rest string) decimal.Decimal {
	one := decimal.New(1, 0)
	rest = strings.ToLower(strings.TrimSpace(rest))
	if rest == "" {
		return one
	}
	for _, suffix := range magnitudeSuffixes {
		if !strings.HasPrefix(rest, suffix.token) {
			continue
		}
		tail := rest[len(suffix.token):]
		if tail == "" || !isLetter(tail[0]) {
			return suffix.scale
		}
	}
	return one
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
