package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sysaltruism/dashboard/cmd/dashboard/cli"
	"github.com/sysaltruism/dashboard/internal/app"
	"github.com/sysaltruism/dashboard/internal/dashboard"
	"github.com/sysaltruism/dashboard/internal/dashboard/export"
	dashboardhttp "github.com/sysaltruism/dashboard/internal/dashboard/http"
	"github.com/sysaltruism/dashboard/internal/dashboard/svg"
	"github.com/sysaltruism/dashboard/internal/dashboard/ui"
	"github.com/sysaltruism/dashboard/internal/observability"
	"github.com/sysaltruism/dashboard/internal/view"
)

type lineRenderer struct{}

func (lineRenderer) Line(width, height int, series []float64, labels []string, opts svg.LineOpts) (template.HTML, error) {
	return svg.Line(width, height, series, labels, opts)
}

type barRenderer struct{}

func (barRenderer) Bars(width, height int, seriesA, seriesB []float64, labels []string, opts svg.BarOpts) (template.HTML, error) {
	return svg.Bars(width, height, seriesA, seriesB, labels, opts)
}

type areaRenderer struct{}

func (areaRenderer) Area(width, height int, seriesA, seriesB []float64, labels []string, opts svg.AreaOpts) (template.HTML, error) {
	return svg.Area(width, height, seriesA, seriesB, labels, opts)
}

type donutRenderer struct{}

func (donutRenderer) Donut(width, height int, slices []svg.DonutSlice, opts svg.DonutOpts) (template.HTML, error) {
	return svg.Donut(width, height, slices, opts)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	command := "serve"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}
	switch command {
	case "serve":
		return serve()
	case "project":
		return project(args, stdout, stderr)
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q (expected serve or project)\n", command)
		return 1
	}
}

func project(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := cli.ProjectOptions{Stdout: stdout, Stderr: stderr}
	fs.StringVar(&opts.Value, "value", "", "card value, e.g. ₹8.2L or 12,543")
	fs.StringVar(&opts.Title, "title", "", "card title used for rounding")
	fs.StringVar(&opts.Growth, "growth", "", "growth descriptor, e.g. +32% MTD")
	fs.BoolVar(&opts.JSONOutput, "json", false, "print JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	service := dashboard.NewService(nil, nil, slog.New(slog.NewTextHandler(stderr, nil)))
	return cli.ProjectCommand(context.Background(), service, opts)
}

func serve() int {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		return 1
	}

	logger := app.NewLogger(cfg)
	metrics := observability.NewMetrics()

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		return 1
	}

	service := dashboard.NewService(dashboard.DefaultCatalog(), metrics, logger)
	renderers := ui.Renderers{
		Line:  lineRenderer{},
		Bar:   barRenderer{},
		Area:  areaRenderer{},
		Donut: donutRenderer{},
	}

	var pdf dashboardhttp.PDFService
	if cfg.PDFEnabled() {
		exporter := &export.PDFExporter{Endpoint: cfg.GotenbergURL}
		if err := exporter.Ping(ctx); err != nil {
			logger.Warn("gotenberg ping", slog.Any("error", err))
		}
		pdf = exporter
	}

	handler := dashboardhttp.NewHandler(logger, service, templates, renderers, pdf)
	handler.WithTitle(cfg.DashboardTitle)
	handler.WithExportLimit(cfg.ExportRateLimitPerMinute)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Metrics:          metrics,
		DashboardHandler: handler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
		return 1
	}
	return 0
}
