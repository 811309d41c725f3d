package dashboardhttp

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sysaltruism/dashboard/internal/dashboard"
	"github.com/sysaltruism/dashboard/internal/platform/httpx"
	"github.com/sysaltruism/dashboard/internal/trend"
)

type trendQuery struct {
	Value  string `json:"value" validate:"required,max=64"`
	Title  string `json:"title" validate:"max=128"`
	Growth string `json:"growth" validate:"max=64"`
}

type trendResponse struct {
	Title  string        `json:"title"`
	Value  string        `json:"value"`
	Growth string        `json:"growth"`
	Points []trend.Point `json:"points"`
}

type cardDetailResponse struct {
	Card   dashboard.CardView `json:"card"`
	Detail dashboard.Detail   `json:"detail"`
}

type cardListResponse struct {
	Cards []dashboard.CardView `json:"cards"`
}

func (h *Handler) handleAPICards(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	overview, err := h.service.Overview(ctx)
	if err != nil {
		h.logError("load overview", err)
		respondProblem(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	httpx.JSON(w, http.StatusOK, cardListResponse{Cards: overview.Cards})
}

func (h *Handler) handleAPICard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	detail, err := h.service.Detail(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		if !errors.Is(err, dashboard.ErrCardNotFound) {
			h.logError("load card", err)
		}
		respondProblem(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	httpx.JSON(w, http.StatusOK, cardDetailResponse{Card: detail.Card, Detail: detail.Detail})
}

func (h *Handler) handleAPITrend(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := trendQuery{
		Value:  strings.TrimSpace(query.Get("value")),
		Title:  strings.TrimSpace(query.Get("title")),
		Growth: query.Get("growth"),
	}
	if fields := h.validateQuery(q); len(fields) > 0 {
		httpx.FieldProblem(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	points, err := h.service.Project(ctx, dashboard.ProjectRequest{Value: q.Value, Title: q.Title, Growth: q.Growth})
	if err != nil {
		respondProblem(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	httpx.JSON(w, http.StatusOK, trendResponse{Title: q.Title, Value: q.Value, Growth: q.Growth, Points: points})
}

func (h *Handler) validateQuery(q trendQuery) map[string]string {
	err := h.validate.Struct(q)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"query": err.Error()}
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields[strings.ToLower(fieldErr.Field())] = fieldErr.Tag()
	}
	return fields
}
