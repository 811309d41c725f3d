package dashboardhttp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/sysaltruism/dashboard/internal/dashboard"
	"github.com/sysaltruism/dashboard/internal/dashboard/export"
	"github.com/sysaltruism/dashboard/internal/dashboard/svg"
	"github.com/sysaltruism/dashboard/internal/dashboard/ui"
	"github.com/sysaltruism/dashboard/internal/platform/httpx"
	"github.com/sysaltruism/dashboard/internal/trend"
	"github.com/sysaltruism/dashboard/internal/view"
)

const requestTimeout = 2 * time.Second

// DashboardService defines the data contract used by the handler.
type DashboardService interface {
	Overview(ctx context.Context) (dashboard.Overview, error)
	Detail(ctx context.Context, key string) (dashboard.CardDetail, error)
	Project(ctx context.Context, req dashboard.ProjectRequest) ([]trend.Point, error)
}

// PDFService renders the export report to PDF bytes.
type PDFService interface {
	RenderReport(ctx context.Context, report export.Report) ([]byte, error)
}

// Handler serves the dashboard pages, JSON API and exports.
type Handler struct {
	logger      *slog.Logger
	service     DashboardService
	templates   *view.Engine
	renderers   ui.Renderers
	pdf         PDFService
	validate    *validator.Validate
	bufPool     sync.Pool
	now         func() time.Time
	appTitle    string
	exportLimit int
}

// NewHandler constructs the dashboard HTTP handler. pdf may be nil, which
// disables the PDF export.
func NewHandler(logger *slog.Logger, service DashboardService, templates *view.Engine, renderers ui.Renderers, pdf PDFService) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		logger:      logger,
		service:     service,
		templates:   templates,
		renderers:   renderers,
		pdf:         pdf,
		validate:    validator.New(),
		now:         time.Now,
		appTitle:    "Systemic Altruism",
		exportLimit: 10,
	}
	h.bufPool.New = func() interface{} { return new(bytes.Buffer) }
	return h
}

// WithNow overrides the handler clock for testing.
func (h *Handler) WithNow(fn func() time.Time) {
	if fn != nil {
		h.now = fn
	}
}

// WithTitle sets the application title shown in the layout and exports.
func (h *Handler) WithTitle(title string) {
	if strings.TrimSpace(title) != "" {
		h.appTitle = title
	}
}

// WithExportLimit sets the per-minute request budget of the export routes.
func (h *Handler) WithExportLimit(perMinute int) {
	if perMinute > 0 {
		h.exportLimit = perMinute
	}
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	overview, err := h.service.Overview(ctx)
	if err != nil {
		h.handleServerError(w, "load overview", err)
		return
	}
	vm, err := h.buildDashboardViewModel(ctx, overview)
	if err != nil {
		h.handleServerError(w, "render charts", err)
		return
	}

	h.render(w, r, "pages/dashboard.html", "", overview.Nav, vm)
}

func (h *Handler) handleCard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	detail, err := h.service.Detail(ctx, chi.URLParam(r, "slug"))
	if errors.Is(err, dashboard.ErrCardNotFound) {
		h.renderNotFound(ctx, w, r)
		return
	}
	if err != nil {
		h.handleServerError(w, "load card", err)
		return
	}
	vm, err := h.buildDetailViewModel(detail)
	if err != nil {
		h.handleServerError(w, "render charts", err)
		return
	}

	overview, err := h.service.Overview(ctx)
	if err != nil {
		h.handleServerError(w, "load navigation", err)
		return
	}
	h.render(w, r, "pages/card.html", detail.Card.Title, overview.Nav, vm)
}

func (h *Handler) handleTrendPNG(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	detail, err := h.service.Detail(ctx, chi.URLParam(r, "slug"))
	if errors.Is(err, dashboard.ErrCardNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.handleServerError(w, "load card", err)
		return
	}

	buf := h.getBuffer()
	defer h.putBuffer(buf)
	if err := export.RenderTrendPNG(buf, toCardTrend(detail.Card), detail.Card.Theme.Colors[0]); err != nil {
		h.handleServerError(w, "render png", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream png", err)
	}
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	buf := h.getBuffer()
	defer h.putBuffer(buf)

	if err := export.WriteSummaryCSV(buf, report.Cards); err != nil {
		h.handleServerError(w, "write summary csv", err)
		return
	}
	buf.WriteString("\n")
	if err := export.WriteTrendCSV(buf, report.Cards); err != nil {
		h.handleServerError(w, "write trend csv", err)
		return
	}

	h.attachment(w, "text/csv; charset=utf-8", h.filename("csv"))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream csv", err)
	}
}

func (h *Handler) handleXLSX(w http.ResponseWriter, r *http.Request) {
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	buf := h.getBuffer()
	defer h.putBuffer(buf)
	if err := export.WriteWorkbook(buf, report); err != nil {
		h.handleServerError(w, "write workbook", err)
		return
	}

	h.attachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", h.filename("xlsx"))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream xlsx", err)
	}
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	if h.pdf == nil {
		http.Error(w, "PDF export is not configured", http.StatusServiceUnavailable)
		return
	}
	report, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 4*requestTimeout)
	defer cancel()
	data, err := h.pdf.RenderReport(ctx, report)
	if err != nil {
		h.handleServerError(w, "render pdf", err)
		return
	}

	h.attachment(w, "application/pdf", h.filename("pdf"))
	if _, err := w.Write(data); err != nil {
		h.logError("stream pdf", err)
	}
}

func (h *Handler) loadReport(w http.ResponseWriter, r *http.Request) (export.Report, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	overview, err := h.service.Overview(ctx)
	if err != nil {
		h.handleServerError(w, "load overview", err)
		return export.Report{}, false
	}
	report := export.Report{Title: h.appTitle, GeneratedAt: h.now().UTC()}
	for _, card := range overview.Cards {
		report.Cards = append(report.Cards, toCardTrend(card))
	}
	return report, true
}

func (h *Handler) buildDashboardViewModel(ctx context.Context, overview dashboard.Overview) (ui.DashboardViewModel, error) {
	if !h.renderers.Complete() {
		return ui.DashboardViewModel{}, fmt.Errorf("svg renderer missing")
	}
	vm := ui.DashboardViewModel{
		Cards:      make([]ui.CardViewModel, len(overview.Cards)),
		Charts:     make([]ui.ChartViewModel, 4),
		PDFEnabled: h.pdf != nil,
	}
	charts := overview.Charts

	g, ctx := errgroup.WithContext(ctx)
	for i, card := range overview.Cards {
		i, card := i, card
		vm.Cards[i] = ui.ToCardViewModel(card)
		g.Go(func() error {
			values, _ := ui.TrendSeries(card.Trend)
			stroke := card.Theme.Colors[0]
			if !card.TrendAvailable {
				stroke = svg.MutedColor
			}
			spark, err := h.renderers.Line.Line(svg.SparklineWidth, svg.SparklineHeight, values, nil, svg.LineOpts{
				Title:       card.Title + " trend",
				Description: "Six month projection",
				StrokeColor: stroke,
				Sparkline:   true,
			})
			if err != nil {
				return fmt.Errorf("sparkline %s: %w", card.Slug, err)
			}
			vm.Cards[i].Sparkline = spark
			return ctx.Err()
		})
	}

	g.Go(func() error {
		out, err := h.renderers.Line.Line(svg.DefaultWidth, svg.DefaultHeight, charts.Donations.A.Values, charts.Donations.Labels, svg.LineOpts{
			Title:       charts.Donations.Title,
			Description: charts.Donations.A.Name + " per month",
			StrokeColor: charts.Donations.A.Color,
			ShowDots:    true,
		})
		vm.Charts[0] = ui.ChartViewModel{Title: charts.Donations.Title, SVG: out}
		return err
	})
	g.Go(func() error {
		out, err := h.renderers.Bar.Bars(svg.DefaultWidth, svg.DefaultHeight, charts.Social.A.Values, charts.Social.B.Values, charts.Social.Labels, svg.BarOpts{
			Title:        charts.Social.Title,
			Description:  "Views and shares per platform",
			SeriesALabel: charts.Social.A.Name,
			SeriesBLabel: charts.Social.B.Name,
			ColorA:       charts.Social.A.Color,
			ColorB:       charts.Social.B.Color,
		})
		vm.Charts[1] = ui.ChartViewModel{Title: charts.Social.Title, SVG: out}
		return err
	})
	g.Go(func() error {
		out, err := h.renderers.Area.Area(svg.DefaultWidth, svg.DefaultHeight, charts.Engagement.A.Values, charts.Engagement.B.Values, charts.Engagement.Labels, svg.AreaOpts{
			Title:            charts.Engagement.Title,
			Description:      "Weekly active users and session time",
			SeriesALabel:     charts.Engagement.A.Name,
			SeriesBLabel:     charts.Engagement.B.Name,
			ColorA:           charts.Engagement.A.Color,
			ColorB:           charts.Engagement.B.Color,
			IndependentScale: true,
		})
		vm.Charts[2] = ui.ChartViewModel{Title: charts.Engagement.Title, SVG: out}
		return err
	})
	g.Go(func() error {
		out, err := h.renderers.Donut.Donut(svg.DefaultWidth/2, svg.DefaultHeight, ui.DonutSlices(charts.Clubs.Slices), svg.DonutOpts{
			Title:      charts.Clubs.Title,
			ShowLegend: true,
		})
		vm.Charts[3] = ui.ChartViewModel{Title: charts.Clubs.Title, SVG: out}
		return err
	})

	if err := g.Wait(); err != nil {
		return ui.DashboardViewModel{}, err
	}
	return vm, nil
}

func (h *Handler) buildDetailViewModel(detail dashboard.CardDetail) (ui.DetailViewModel, error) {
	if !h.renderers.Complete() {
		return ui.DetailViewModel{}, fmt.Errorf("svg renderer missing")
	}
	card := detail.Card
	vm := ui.DetailViewModel{
		Card:           ui.ToCardViewModel(card),
		Trend:          card.Trend,
		Metrics:        detail.Detail.Metrics,
		BreakdownTitle: detail.Detail.BreakdownTitle,
		Breakdown:      detail.Detail.Breakdown,
		PNGHref:        ui.CardHref(card.Slug) + "/trend.png",
	}

	values, labels := ui.TrendSeries(card.Trend)
	opts := svg.LineOpts{
		Title:       card.Title,
		Description: "Projected values from January to June",
		StrokeColor: card.Theme.Colors[0],
		FillColor:   card.Theme.Highlight,
		ShowDots:    true,
	}
	if !card.TrendAvailable {
		opts.StrokeColor, opts.FillColor = svg.MutedColor, ""
	}
	trendSVG, err := h.renderers.Line.Line(svg.DefaultWidth, svg.DefaultHeight, values, labels, opts)
	if err != nil {
		return ui.DetailViewModel{}, err
	}
	vm.TrendSVG = trendSVG

	if len(detail.Detail.Breakdown) > 0 {
		donut, err := h.renderers.Donut.Donut(svg.DefaultHeight, svg.DefaultHeight, ui.BreakdownSlices(detail.Detail.Breakdown), svg.DonutOpts{
			Title:     detail.Detail.BreakdownTitle,
			TextColor: card.Theme.TextColor,
		})
		if err != nil {
			return ui.DetailViewModel{}, err
		}
		vm.BreakdownSVG = donut
	}
	return vm, nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name, title string, nav []dashboard.NavItem, data any) {
	w.Header().Set("Cache-Control", "no-store")
	viewData := view.TemplateData{
		Title:       title,
		AppTitle:    h.appTitle,
		CurrentPath: r.URL.Path,
		Nav:         ui.ToNavLinks(nav, r.URL.Path),
		Data:        data,
	}
	if err := h.templates.Render(w, name, viewData); err != nil {
		h.handleServerError(w, "render template", err)
	}
}

func (h *Handler) renderNotFound(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var nav []dashboard.NavItem
	if overview, err := h.service.Overview(ctx); err == nil {
		nav = overview.Nav
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	viewData := view.TemplateData{
		Title:       "Card not found",
		AppTitle:    h.appTitle,
		CurrentPath: r.URL.Path,
		Nav:         ui.ToNavLinks(nav, r.URL.Path),
		Data:        fmt.Sprintf("No card matches %q.", chi.URLParam(r, "slug")),
	}
	if err := h.templates.Render(w, "pages/not_found.html", viewData); err != nil {
		h.logError("render not found", err)
	}
}

func (h *Handler) attachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Cache-Control", "no-store")
}

func (h *Handler) filename(ext string) string {
	return fmt.Sprintf("dashboard-trends-%s.%s", h.now().UTC().Format("2006-01-02"), ext)
}

func (h *Handler) getBuffer() *bytes.Buffer {
	buf := h.bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func (h *Handler) putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	h.bufPool.Put(buf)
}

func (h *Handler) handleServerError(w http.ResponseWriter, context string, err error) {
	h.logError(context, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) logError(context string, err error) {
	if h.logger != nil {
		h.logger.Error(context, slog.Any("error", err))
	}
}

func toCardTrend(card dashboard.CardView) export.CardTrend {
	return export.CardTrend{
		Title:     card.Title,
		Value:     card.Value,
		Growth:    card.Growth,
		Available: card.TrendAvailable,
		Points:    card.Trend,
	}
}

// respondProblem maps service errors onto RFC7807 responses.
func respondProblem(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboard.ErrCardNotFound):
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrNotFound, err.Error()))
	case errors.Is(err, trend.ErrMalformedGrowth),
		errors.Is(err, trend.ErrDivisionByZero),
		errors.Is(err, trend.ErrUnparseableValue):
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrUnprocessable, err.Error()))
	default:
		httpx.RespondError(w, err)
	}
}
