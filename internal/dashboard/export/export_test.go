package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sysaltruism/dashboard/internal/trend"
)

func sampleCards(t *testing.T) []CardTrend {
	t.Helper()
	bloom, err := trend.ProjectRaw("12,543", "Bloom Downloads", "+2.3k this week")
	require.NoError(t, err)
	luxury, err := trend.ProjectRaw("₹8.2L", "Luxury Goods Revenue", "+32% MTD")
	require.NoError(t, err)
	return []CardTrend{
		{Title: "Bloom Downloads", Value: "12,543", Growth: "+2.3k this week", Available: true, Points: bloom},
		{Title: "Luxury Goods Revenue", Value: "₹8.2L", Growth: "+32% MTD", Available: true, Points: luxury},
	}
}

func TestWriteTrendCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteTrendCSV(buf, sampleCards(t)))

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+2*trend.Points)
	assert.Equal(t, []string{"Card", "Month", "Value", "Change", "Projected"}, records[0])
	assert.Equal(t, []string{"Luxury Goods Revenue", "May", "621212.12", "6.8%", "true"}, records[11])
	assert.Equal(t, []string{"Luxury Goods Revenue", "Jun", "820000", "32.0%", "true"}, records[12])
}

func TestWriteSummaryCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteSummaryCSV(buf, sampleCards(t)))
	assert.Contains(t, buf.String(), "Bloom Downloads,\"12,543\",+2.3k this week")
}

func TestWriteWorkbook(t *testing.T) {
	buf := &bytes.Buffer{}
	report := Report{Title: "Systemic Altruism", GeneratedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), Cards: sampleCards(t)}
	require.NoError(t, WriteWorkbook(buf, report))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Summary", "Bloom Downloads", "Luxury Goods Revenue"}, f.GetSheetList())

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Systemic Altruism", title)

	card, err := f.GetCellValue("Summary", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Luxury Goods Revenue", card)

	month, err := f.GetCellValue("Luxury Goods Revenue", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jan", month)
	change, err := f.GetCellValue("Luxury Goods Revenue", "C7")
	require.NoError(t, err)
	assert.Equal(t, "32.0%", change)
}

func TestUniqueSheetName(t *testing.T) {
	used := map[string]int{"summary": 1}
	assert.Equal(t, "Summary 2", uniqueSheetName("Summary", used))
	assert.Equal(t, "a b c", uniqueSheetName("a/b?c", used))
	long := strings.Repeat("x", 40)
	assert.Len(t, uniqueSheetName(long, used), maxSheetName)
	assert.Len(t, uniqueSheetName(long, used), maxSheetName)
	assert.Equal(t, "Card", uniqueSheetName("  ", used))
}

func TestRenderTrendPNG(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, RenderTrendPNG(buf, sampleCards(t)[0], "#6366f1"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRenderTrendPNGFlatPlaceholder(t *testing.T) {
	points := make([]trend.Point, trend.Points)
	for i := range points {
		points[i] = trend.Point{Month: trend.Months[i], Value: 0, Change: "0%"}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, RenderTrendPNG(buf, CardTrend{Title: "Broken", Points: points}, ""))
	assert.NotZero(t, buf.Len())
}

func TestRenderTrendPNGRequiresPoints(t *testing.T) {
	assert.ErrorIs(t, RenderTrendPNG(io.Discard, CardTrend{}, ""), errNoPoints)
}

func TestPDFExporterRender(t *testing.T) {
	var html string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forms/chromium/convert/html" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		file, _, err := r.FormFile("files")
		if err != nil {
			t.Errorf("missing html part: %v", err)
			return
		}
		data, _ := io.ReadAll(file)
		html = string(data)
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	exporter := &PDFExporter{Endpoint: srv.URL + "/"}
	data, err := exporter.RenderReport(context.Background(), Report{Title: "Systemic Altruism", Cards: sampleCards(t)})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
	assert.Contains(t, html, "<h1>Systemic Altruism</h1>")
	assert.Contains(t, html, "621212.12")
}

func TestPDFExporterUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "chromium down", http.StatusBadGateway)
	}))
	defer srv.Close()

	exporter := &PDFExporter{Endpoint: srv.URL}
	_, err := exporter.RenderReport(context.Background(), Report{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Error(t, exporter.Ping(context.Background()))
}

func TestPDFExporterRequiresEndpoint(t *testing.T) {
	_, err := (&PDFExporter{}).RenderReport(context.Background(), Report{})
	assert.Error(t, err)
}
