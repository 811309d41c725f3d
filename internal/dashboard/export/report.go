// Package export renders dashboard trends into downloadable formats.
package export

import (
	"strconv"
	"time"

	"github.com/sysaltruism/dashboard/internal/trend"
)

// CardTrend is the exported view of one stat card.
type CardTrend struct {
	Title     string
	Value     string
	Growth    string
	Available bool
	Points    []trend.Point
}

// Report is everything an export needs.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Cards       []CardTrend
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
