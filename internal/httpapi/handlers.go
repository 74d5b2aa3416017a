// Package httpapi exposes the cached snapshot and the analytics views
// over HTTP.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thebettinginsider/splitsight/internal/analytics"
	"github.com/thebettinginsider/splitsight/internal/cache"
	"github.com/thebettinginsider/splitsight/internal/logging"
	"github.com/thebettinginsider/splitsight/internal/rosters"
	"github.com/thebettinginsider/splitsight/internal/splits"
)

// Handler serves the splits API off the cache manager.
type Handler struct {
	manager *cache.Manager
}

func NewHandler(manager *cache.Manager) *Handler {
	return &Handler{manager: manager}
}

// HandleHome renders a small HTML index with the cache status.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	status := "Empty"
	age := ""
	if snap, ok, err := h.manager.Peek(r.Context()); err == nil && ok && len(snap.Games) > 0 {
		status = "Active"
		age = fmt.Sprintf(" (Age: %s)", time.Since(snap.CapturedAt).Round(time.Second))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<h1>Betting Splits API</h1>
<p><strong>Cache: %s%s</strong></p>
<h2>Data</h2>
<ul>
<li><a href="/all">/all</a></li>
<li><a href="/mlb">/mlb</a></li>
<li><a href="/test">/test</a></li>
<li><a href="/refresh-cache">/refresh-cache</a></li>
</ul>
<h2>Analytics</h2>
<ul>
<li><a href="/big-bettor-alerts">/big-bettor-alerts</a></li>
<li><a href="/sharpest-longshots">/sharpest-longshots</a></li>
<li><a href="/get-rich-quick">/get-rich-quick</a></li>
<li><a href="/biggest-square-bets">/biggest-square-bets</a></li>
<li><a href="/analytics-summary">/analytics-summary</a></li>
<li>/big-bettor-alerts-{mlb|nba|nfl|nhl}</li>
<li>/biggest-square-bets-{mlb|nba|nfl|nhl}</li>
</ul>
`, status, age)
}

// HandleAll returns every cached game.
// GET /all
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	games, capturedAt, cached, err := h.manager.GetOrRefresh(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"games":             nonNilGames(games),
		"count":             len(games),
		"cached":            cached,
		"cache_age_minutes": ageMinutes(capturedAt),
	})
}

// HandleMLB returns only MLB games, using the broader legacy roster.
// GET /mlb
func (h *Handler) HandleMLB(w http.ResponseWriter, r *http.Request) {
	games, capturedAt, cached, err := h.manager.GetOrRefresh(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	mlbGames := rosters.FilterMLB(games)
	writeJSON(w, map[string]any{
		"games":             nonNilGames(mlbGames),
		"count":             len(mlbGames),
		"cached":            cached,
		"cache_age_minutes": ageMinutes(capturedAt),
	})
}

// HandleTest returns the first cached game as a quick smoke check.
// GET /test
func (h *Handler) HandleTest(w http.ResponseWriter, r *http.Request) {
	games, capturedAt, cached, err := h.manager.GetOrRefresh(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	var first any
	if len(games) > 0 {
		first = games[0]
	}
	writeJSON(w, map[string]any{
		"first_game":        first,
		"total_games":       len(games),
		"cached":            cached,
		"cache_age_minutes": ageMinutes(capturedAt),
	})
}

// HandleRefreshCache forces a full re-scrape.
// GET /refresh-cache
func (h *Handler) HandleRefreshCache(w http.ResponseWriter, r *http.Request) {
	logging.Infof("[api] forcing cache refresh")
	games, capturedAt, err := h.manager.ForceRefresh(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"message":         "Cache refreshed successfully",
		"total_games":     len(games),
		"cache_timestamp": capturedAt.UTC().Format(time.RFC3339Nano),
	})
}

// HandleBigBettorAlerts returns the top non-total picks by handle share.
// GET /big-bettor-alerts
func (h *Handler) HandleBigBettorAlerts(w http.ResponseWriter, r *http.Request) {
	h.analyticsResponse(w, r, "big_bettor_alerts",
		"Picks with the highest handle % of the day (no totals)",
		func(games []splits.Game, limit int) []splits.AnnotatedBet {
			return analytics.BigBettorAlerts(games, limit)
		})
}

// HandleSharpestLongshots returns longshots with a big handle edge.
// GET /sharpest-longshots
func (h *Handler) HandleSharpestLongshots(w http.ResponseWriter, r *http.Request) {
	h.analyticsResponse(w, r, "sharpest_longshots",
		"Longshot bets (+200 or more) with at least 30% higher handle% than bet%",
		func(games []splits.Game, limit int) []splits.AnnotatedBet {
			return analytics.SharpestLongshots(games, limit)
		})
}

// HandleGetRichQuick returns huge underdogs drawing real money.
// GET /get-rich-quick
func (h *Handler) HandleGetRichQuick(w http.ResponseWriter, r *http.Request) {
	h.analyticsResponse(w, r, "get_rich_quick",
		"Huge underdogs (+400 or more) getting at least 30% of the money",
		func(games []splits.Game, _ int) []splits.AnnotatedBet {
			return analytics.GetRichQuickScheme(games)
		})
}

// HandleBiggestSquareBets returns the most lopsided ticket-heavy picks.
// GET /biggest-square-bets
func (h *Handler) HandleBiggestSquareBets(w http.ResponseWriter, r *http.Request) {
	h.analyticsResponse(w, r, "biggest_square_bets",
		"Picks with biggest discrepancy between bet% and handle% (high bet%, low handle%)",
		func(games []splits.Game, limit int) []splits.AnnotatedBet {
			return analytics.BiggestSquareBets(games, limit)
		})
}

// HandleBigBettorAlertsBySport is the sport-scoped alert view.
// GET /big-bettor-alerts-{sport}
func (h *Handler) HandleBigBettorAlertsBySport(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")
	h.analyticsResponse(w, r, "big_bettor_alerts_"+sport,
		fmt.Sprintf("%s picks with the biggest difference between handle %% and bets %%", sport),
		func(games []splits.Game, limit int) []splits.AnnotatedBet {
			return analytics.BigBettorAlertsBySport(games, sport, limit)
		})
}

// HandleBiggestSquareBetsBySport is the sport-scoped square-bet view.
// GET /biggest-square-bets-{sport}
func (h *Handler) HandleBiggestSquareBetsBySport(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")
	h.analyticsResponse(w, r, "biggest_square_bets_"+sport,
		fmt.Sprintf("%s picks with biggest discrepancy between bet%% and handle%%", sport),
		func(games []splits.Game, limit int) []splits.AnnotatedBet {
			return analytics.BiggestSquareBetsBySport(games, sport, limit)
		})
}

// HandleAnalyticsSummary returns counts for every analytics view.
// GET /analytics-summary
func (h *Handler) HandleAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	games, _, cached, err := h.manager.GetOrRefresh(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"summary": map[string]any{
			"total_games":         len(games),
			"mlb_games":           len(rosters.FilterMLB(games)),
			"big_bettor_alerts":   len(analytics.BigBettorAlerts(games, 0)),
			"sharpest_longshots":  len(analytics.SharpestLongshots(games, 0)),
			"get_rich_quick":      len(analytics.GetRichQuickScheme(games)),
			"biggest_square_bets": len(analytics.BiggestSquareBets(games, 0)),
			"cached":              cached,
		},
	})
}

// analyticsResponse runs one analytic over the current snapshot and
// wraps the result in the shared payload shape. The optional limit
// query parameter overrides the view's default.
func (h *Handler) analyticsResponse(w http.ResponseWriter, r *http.Request, field, description string, fn func([]splits.Game, int) []splits.AnnotatedBet) {
	games, _, cached, err := h.manager.GetOrRefresh(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	bets := fn(games, limit)
	if bets == nil {
		bets = []splits.AnnotatedBet{}
	}
	writeJSON(w, map[string]any{
		field:         bets,
		"count":       len(bets),
		"description": description,
		"cached":      cached,
	})
}

func ageMinutes(capturedAt time.Time) float64 {
	if capturedAt.IsZero() {
		return 0
	}
	return time.Since(capturedAt).Minutes()
}

func nonNilGames(games []splits.Game) []splits.Game {
	if games == nil {
		return []splits.Game{}
	}
	return games
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Errorf("[api] write response: %v", err)
	}
}

func httpError(w http.ResponseWriter, err error) {
	logging.Errorf("[api] request failed: %v", err)
	http.Error(w, fmt.Sprintf("internal error: %v", err), http.StatusInternalServerError)
}
