package perf

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sysaltruism/dashboard/internal/dashboard"
	dashboardhttp "github.com/sysaltruism/dashboard/internal/dashboard/http"
	"github.com/sysaltruism/dashboard/internal/dashboard/ui"
	"github.com/sysaltruism/dashboard/internal/view"
)

const sampleCount = 50

func newRouter(t testing.TB) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine, err := view.NewEngine()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	handler := dashboardhttp.NewHandler(logger, dashboard.NewService(nil, nil, logger), engine, ui.Renderers{}, nil)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestDashboardLatencyTargets(t *testing.T) {
	router := newRouter(t)
	scenarios := []struct {
		name      string
		target    string
		threshold time.Duration
	}{
		{name: "cards", target: "/api/cards", threshold: 50 * time.Millisecond},
		{name: "card detail", target: "/api/cards/luxury-goods-revenue", threshold: 50 * time.Millisecond},
		{name: "trend", target: "/api/trend?value=%E2%82%B98.2L&growth=%2B32%25", threshold: 25 * time.Millisecond},
	}

	for _, scenario := range scenarios {
		samples := make([]time.Duration, 0, sampleCount)
		for i := 0; i < sampleCount; i++ {
			req := httptest.NewRequest(http.MethodGet, scenario.target, nil)
			rr := httptest.NewRecorder()
			start := time.Now()
			router.ServeHTTP(rr, req)
			samples = append(samples, time.Since(start))
			if rr.Code != http.StatusOK {
				t.Fatalf("%s: unexpected status %d", scenario.name, rr.Code)
			}
		}
		p95 := percentile95(samples)
		if p95 > scenario.threshold {
			t.Fatalf("%s latency regression: p95=%s threshold=%s", scenario.name, p95, scenario.threshold)
		}
	}
}

func BenchmarkOverview(b *testing.B) {
	svc := dashboard.NewService(nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Overview(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func percentile95(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	index := int(float64(len(sorted)-1) * 0.95)
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
