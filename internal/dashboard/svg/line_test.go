package svg

import (
	"strings"
	"testing"
)

func TestLineProducesSVG(t *testing.T) {
	html, err := Line(400, 200, []float64{10871, 11056, 12543}, []string{"Jan", "Feb", "Mar"}, LineOpts{
		Title:       "Bloom Downloads",
		Description: "Projected downloads",
		ShowDots:    true,
	})
	if err != nil {
		t.Fatalf("line renderer error: %v", err)
	}
	output := string(html)
	if !strings.HasPrefix(output, "<svg") {
		t.Fatalf("expected svg output, got %s", output)
	}
	if !strings.Contains(output, "<path") {
		t.Fatalf("expected path element in svg")
	}
	if !strings.Contains(output, `aria-labelledby="bloom-downloads-line-title bloom-downloads-line-desc"`) {
		t.Fatalf("expected accessibility attributes")
	}
	if strings.Count(output, "<circle") != 3 {
		t.Fatalf("expected one dot per point")
	}
}

func TestLineSparklineOmitsAxes(t *testing.T) {
	html, err := Line(SparklineWidth, SparklineHeight, []float64{5, 5, 5, 5, 5, 5}, nil, LineOpts{Sparkline: true})
	if err != nil {
		t.Fatalf("sparkline error: %v", err)
	}
	output := string(html)
	if strings.Contains(output, "<text") || strings.Contains(output, "Axes") {
		t.Fatalf("sparkline should not draw labels or axes: %s", output)
	}
	if strings.Contains(output, "NaN") {
		t.Fatalf("flat series produced NaN coordinates")
	}
}

func TestLineRejectsMismatchedLabels(t *testing.T) {
	if _, err := Line(400, 200, []float64{1, 2}, []string{"Jan"}, LineOpts{}); err == nil {
		t.Fatalf("expected label mismatch error")
	}
	if _, err := Line(400, 200, nil, nil, LineOpts{}); err == nil {
		t.Fatalf("expected empty series error")
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{
		820000:  "820.0k",
		1500000: "1.5M",
		42:      "42",
		0.5:     "0.50",
	}
	for in, want := range cases {
		if got := formatTick(in); got != want {
			t.Fatalf("formatTick(%v) = %q, want %q", in, got, want)
		}
	}
}
