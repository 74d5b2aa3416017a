package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// DefaultOrigins are the site origins allowed by CORS.
var DefaultOrigins = []string{
	"https://thebettinginsider.com",
	"https://www.thebettinginsider.com",
}

// NewRouter wires every route onto a chi router. No request timeout is
// applied: a cold-cache request runs the whole scrape pipeline inline.
func NewRouter(h *Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		origins = DefaultOrigins
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.HandleHome)
	r.Get("/all", h.HandleAll)
	r.Get("/mlb", h.HandleMLB)
	r.Get("/test", h.HandleTest)
	r.Get("/refresh-cache", h.HandleRefreshCache)

	r.Get("/big-bettor-alerts", h.HandleBigBettorAlerts)
	r.Get("/sharpest-longshots", h.HandleSharpestLongshots)
	r.Get("/get-rich-quick", h.HandleGetRichQuick)
	r.Get("/biggest-square-bets", h.HandleBiggestSquareBets)
	r.Get("/analytics-summary", h.HandleAnalyticsSummary)

	r.Get("/big-bettor-alerts-{sport}", h.HandleBigBettorAlertsBySport)
	r.Get("/biggest-square-bets-{sport}", h.HandleBiggestSquareBetsBySport)

	return r
}
