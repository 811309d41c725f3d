package svg

import (
	"strings"
	"testing"
)

func TestBarsProducesSVG(t *testing.T) {
	html, err := Bars(420, 220, []float64{25000, 15000}, []float64{1200, 800}, []string{"Instagram", "LinkedIn"}, BarOpts{
		Title:        "Social Media Impact",
		Description:  "Views and shares per platform",
		SeriesALabel: "Views",
		SeriesBLabel: "Shares",
	})
	if err != nil {
		t.Fatalf("bars renderer error: %v", err)
	}
	output := string(html)
	if !strings.HasPrefix(output, "<svg") {
		t.Fatalf("expected svg output, got %s", output)
	}
	if !strings.Contains(output, `aria-label="Views Instagram"`) {
		t.Fatalf("expected labelled bars in svg")
	}
	if !strings.Contains(output, "Shares") {
		t.Fatalf("expected legend label")
	}
}

func TestBarsValidatesLengths(t *testing.T) {
	if _, err := Bars(420, 220, []float64{1}, nil, []string{"a", "b"}, BarOpts{}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
	if _, err := Bars(10, 10, []float64{1}, nil, []string{"a"}, BarOpts{Padding: 20}); err == nil {
		t.Fatalf("expected viewport error")
	}
}
