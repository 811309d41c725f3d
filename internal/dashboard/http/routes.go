package dashboardhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/sysaltruism/dashboard/internal/platform/httpx"
)

// MountRoutes registers the dashboard endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(h.exportLimit, time.Minute,
		httprate.WithKeyFuncs(rateLimitKey),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			httpx.RespondError(w, httpx.ErrTooManyRequest)
		}),
	)

	r.Get("/", h.handleDashboard)
	r.Get("/cards/{slug}", h.handleCard)
	r.Get("/cards/{slug}/trend.png", h.handleTrendPNG)

	r.Route("/api", func(api chi.Router) {
		api.Get("/cards", h.handleAPICards)
		api.Get("/cards/{slug}", h.handleAPICard)
		api.Get("/trend", h.handleAPITrend)
	})

	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/export.csv", h.handleCSV)
		gr.Get("/export.xlsx", h.handleXLSX)
		gr.Get("/export.pdf", h.handlePDF)
	})
}

func rateLimitKey(r *http.Request) (string, error) {
	key, err := httprate.KeyByIP(r)
	if err != nil {
		return "", err
	}
	return "ip:" + key, nil
}
