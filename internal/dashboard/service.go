package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sysaltruism/dashboard/internal/trend"
)

// ErrCardNotFound is returned when no card matches a slug or title.
var ErrCardNotFound = errors.New("dashboard: card not found")

// ProjectionRecorder observes the outcome of every trend projection.
type ProjectionRecorder interface {
	ObserveProjection(card string, err error)
}

// CardView is a stat card ready for rendering.
type CardView struct {
	Slug           string        `json:"slug"`
	Title          string        `json:"title"`
	Icon           string        `json:"icon"`
	Value          string        `json:"value"`
	Growth         string        `json:"growth"`
	GrowthColor    string        `json:"growth_color"`
	Theme          Theme         `json:"-"`
	Trend          []trend.Point `json:"trend"`
	TrendAvailable bool          `json:"trend_available"`
}

// Overview is the full dashboard page model.
type Overview struct {
	Cards  []CardView
	Nav    []NavItem
	Charts Charts
}

// CardDetail is the expanded view of one card.
type CardDetail struct {
	Card   CardView
	Detail Detail
}

// ProjectRequest asks for an ad-hoc projection.
type ProjectRequest struct {
	Value  string
	Title  string
	Growth string
}

// Service assembles dashboard models from the catalog.
type Service struct {
	catalog   *Catalog
	projector *trend.Projector
	recorder  ProjectionRecorder
	logger    *slog.Logger
}

// NewService wires a catalog with an optional projection recorder.
func NewService(catalog *Catalog, recorder ProjectionRecorder, logger *slog.Logger) *Service {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		catalog:   catalog,
		projector: catalog.Projector(),
		recorder:  recorder,
		logger:    logger,
	}
}

// Catalog exposes the configuration table backing the service.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Overview builds every visible card plus the static charts and navigation.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	if err := ctx.Err(); err != nil {
		return Overview{}, err
	}
	visible := s.catalog.Visible()
	cards := make([]CardView, 0, len(visible))
	for _, card := range visible {
		cards = append(cards, s.cardView(card))
	}
	return Overview{Cards: cards, Nav: s.catalog.Nav, Charts: s.catalog.Charts}, nil
}

// Detail builds the expanded view of the card matching key.
func (s *Service) Detail(ctx context.Context, key string) (CardDetail, error) {
	if err := ctx.Err(); err != nil {
		return CardDetail{}, err
	}
	card, ok := s.catalog.Lookup(key)
	if !ok {
		return CardDetail{}, fmt.Errorf("%w: %q", ErrCardNotFound, key)
	}
	view := s.cardView(card)
	detail, err := BuildDetail(card, view.Theme)
	if err != nil {
		return CardDetail{}, err
	}
	return CardDetail{Card: view, Detail: detail}, nil
}

// Project runs an ad-hoc projection using the catalog's rounding table.
// Errors are returned unchanged so callers can match the trend sentinels.
func (s *Service) Project(ctx context.Context, req ProjectRequest) ([]trend.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	points, err := s.project(req.Value, req.Title, req.Growth)
	s.observe(req.Title, err)
	return points, err
}

func (s *Service) cardView(card CardConfig) CardView {
	view := CardView{
		Slug:        card.Slug,
		Title:       card.Title,
		Icon:        card.Icon,
		Value:       card.Value,
		Growth:      card.Growth,
		GrowthColor: growthColor(card.Growth),
		Theme:       s.catalog.ThemeFor(card.Title),
	}
	points, err := s.project(card.Value, card.Title, card.Growth)
	s.observe(card.Title, err)
	if err != nil {
		s.logger.Warn("trend unavailable", slog.String("card", card.Title), slog.Any("error", err))
		view.Trend = flatTrend(card.Value)
		return view
	}
	view.Trend = points
	view.TrendAvailable = true
	return view
}

func (s *Service) project(raw, title, growth string) ([]trend.Point, error) {
	value, err := trend.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return s.projector.Project(value, title, growth)
}

func (s *Service) observe(title string, err error) {
	if s.recorder == nil {
		return
	}
	label := "other"
	if card, ok := s.catalog.Lookup(title); ok {
		label = card.Slug
	}
	s.recorder.ObserveProjection(label, err)
}

// flatTrend is the neutral placeholder drawn when a projection fails.
func flatTrend(raw string) []trend.Point {
	level := 0.0
	if value, err := trend.ParseValue(raw); err == nil {
		level = value.Number()
	}
	points := make([]trend.Point, trend.Points)
	for i := range points {
		points[i] = trend.Point{Month: trend.Months[i], Value: level, Change: "0%"}
	}
	return points
}
