// Package trend synthesises the six month history shown behind a metric card
// from its current value and growth descriptor.
package trend

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformedGrowth is returned when a growth descriptor has no numeric token.
	ErrMalformedGrowth = errors.New("trend: malformed growth descriptor")
	// ErrDivisionByZero is returned when the growth rate is exactly -100%.
	ErrDivisionByZero = errors.New("trend: growth rate produces division by zero")
	// ErrUnparseableValue is returned when a metric value holds no number.
	ErrUnparseableValue = errors.New("trend: unparseable metric value")
)

// Points is the fixed length of every projection.
const Points = 6

// Months labels the projected points, oldest first.
var Months = [Points]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// CurrencyTitle is the card whose projection keeps two decimals.
const CurrencyTitle = "Luxury Goods Revenue"

var growthToken = regexp.MustCompile(`-?\d+`)

// Rounding selects how projected values are rounded.
type Rounding int

const (
	// RoundInteger rounds to the nearest whole number, halves upward.
	RoundInteger Rounding = iota
	// RoundCents keeps two decimal places.
	RoundCents
)

// Point is one month of a projected trend.
type Point struct {
	Month  string  `json:"month"`
	Value  float64 `json:"value"`
	Change string  `json:"change"`
}

// Projector derives trends using a title to rounding table. Titles missing
// from the table use RoundInteger.
type Projector struct {
	rounding map[string]Rounding
}

// NewProjector copies the rounding table into a Projector.
func NewProjector(rounding map[string]Rounding) *Projector {
	table := make(map[string]Rounding, len(rounding))
	for title, policy := range rounding {
		table[title] = policy
	}
	return &Projector{rounding: table}
}

var defaultProjector = NewProjector(map[string]Rounding{CurrencyTitle: RoundCents})

// Project runs the default projector, where only CurrencyTitle keeps cents.
func Project(value MetricValue, title, growth string) ([]Point, error) {
	return defaultProjector.Project(value, title, growth)
}

// ProjectRaw parses a card value string and projects it with the default projector.
func ProjectRaw(raw, title, growth string) ([]Point, error) {
	value, err := ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return defaultProjector.Project(value, title, growth)
}

// RoundingFor reports the rounding policy applied to title.
func (p *Projector) RoundingFor(title string) Rounding {
	if p == nil {
		return RoundInteger
	}
	if policy, ok := p.rounding[title]; ok {
		return policy
	}
	return RoundInteger
}

// Project back-projects six monthly points ending exactly at value. An empty
// growth descriptor means a flat rate of zero.
func (p *Projector) Project(value MetricValue, title, growth string) ([]Point, error) {
	current := value.Number()
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return nil, fmt.Errorf("%w: %q", ErrUnparseableValue, value.Raw)
	}
	rate, err := ParseGrowthRate(growth)
	if err != nil {
		return nil, err
	}
	if 1+rate == 0 {
		return nil, fmt.Errorf("%w: growth %q", ErrDivisionByZero, growth)
	}

	previous := current / (1 + rate)
	step := (current - previous) / 5
	policy := p.RoundingFor(title)

	points := make([]Point, Points)
	for i := 0; i < Points; i++ {
		var raw float64
		switch {
		case i == Points-1:
			raw = current
		case i == Points-2:
			raw = previous
		default:
			raw = previous - float64(Points-2-i)*step
		}
		if math.IsNaN(raw) || math.IsInf(raw, 0) {
			return nil, fmt.Errorf("%w: growth %q", ErrDivisionByZero, growth)
		}
		points[i] = Point{Month: Months[i], Value: round(raw, policy), Change: "0%"}
		if i > 0 {
			points[i].Change = changeLabel(points[i-1].Value, points[i].Value)
		}
	}
	return points, nil
}

// ParseGrowthRate turns a descriptor like "+8 this month" into 0.08. The first
// signed integer is always read as a percentage, whether or not a % follows it.
func ParseGrowthRate(growth string) (float64, error) {
	if growth == "" {
		return 0, nil
	}
	token := growthToken.FindString(growth)
	if token == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedGrowth, growth)
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedGrowth, growth)
	}
	return n / 100, nil
}

// IsPositive reports whether a growth descriptor renders as an upward trend.
func IsPositive(growth string) bool {
	return strings.HasPrefix(growth, "+")
}

func changeLabel(prev, cur float64) string {
	if prev == 0 {
		return toFixed(0, 1) + "%"
	}
	return toFixed((cur-prev)/prev*100, 1) + "%"
}

func round(v float64, policy Rounding) float64 {
	if policy == RoundCents {
		out, _ := strconv.ParseFloat(toFixed(v, 2), 64)
		return out
	}
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return r
}

// toFixed formats v with the given number of decimals, resolving ties away
// from zero on the exact binary value.
func toFixed(v float64, digits int) string {
	neg := v < 0
	abs := math.Abs(v)
	scale := new(big.Float).SetPrec(256).SetFloat64(math.Pow10(digits))
	scaled := new(big.Float).SetPrec(256).SetFloat64(abs)
	scaled.Mul(scaled, scale)
	scaled.Add(scaled, big.NewFloat(0.5))
	n, _ := scaled.Int(nil)

	digitsStr := n.String()
	if digits > 0 {
		for len(digitsStr) <= digits {
			digitsStr = "0" + digitsStr
		}
		cut := len(digitsStr) - digits
		digitsStr = digitsStr[:cut] + "." + digitsStr[cut:]
	}
	if neg {
		return "-" + digitsStr
	}
	return digitsStr
}
