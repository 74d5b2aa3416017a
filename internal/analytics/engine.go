// Package analytics ranks flattened bets by money/ticket skew to
// surface betting-market anomalies.
package analytics

import (
	"sort"

	"github.com/thebettinginsider/splitsight/internal/rosters"
	"github.com/thebettinginsider/splitsight/internal/splits"
)

// DefaultLimit caps ranked views unless a caller asks for more.
const DefaultLimit = 7

// totalMarket labels over/under markets, which are excluded from
// big-bettor rankings.
const totalMarket = "Total"

// BigBettorAlerts returns the non-total picks with the highest handle
// share of the day, descending.
func BigBettorAlerts(games []splits.Game, limit int) []splits.AnnotatedBet {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var picked []splits.AnnotatedBet
	for _, b := range splits.Flatten(games) {
		if b.MarketType != totalMarket {
			picked = append(picked, b)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return splits.ParsePercent(picked[i].HandlePct) > splits.ParsePercent(picked[j].HandlePct)
	})
	return truncate(picked, limit)
}

// SharpestLongshots returns +200-or-longer selections whose handle
// share beats their ticket share by at least 30 points, ranked by that
// gap.
func SharpestLongshots(games []splits.Game, limit int) []splits.AnnotatedBet {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var picked []splits.AnnotatedBet
	for _, b := range splits.Flatten(games) {
		if splits.ParseOdds(b.Odds) < 200 {
			continue
		}
		handle := splits.ParsePercent(b.HandlePct)
		tickets := splits.ParsePercent(b.BetsPct)
		if handle < tickets+30 {
			continue
		}
		diff := handle - tickets
		b.HandleVsBetsDiff = &diff
		picked = append(picked, b)
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return *picked[i].HandleVsBetsDiff > *picked[j].HandleVsBetsDiff
	})
	return truncate(picked, limit)
}

// GetRichQuickScheme returns every +400-or-longer selection drawing at
// least 30% of the money, ranked by handle share. No truncation.
func GetRichQuickScheme(games []splits.Game) []splits.AnnotatedBet {
	var picked []splits.AnnotatedBet
	for _, b := range splits.Flatten(games) {
		if splits.ParseOdds(b.Odds) >= 400 && splits.ParsePercent(b.HandlePct) >= 30 {
			picked = append(picked, b)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return splits.ParsePercent(picked[i].HandlePct) > splits.ParsePercent(picked[j].HandlePct)
	})
	return picked
}

// BiggestSquareBets returns selections whose ticket share exceeds
// their money share, ranked by the gap.
func BiggestSquareBets(games []splits.Game, limit int) []splits.AnnotatedBet {
	if limit <= 0 {
		limit = DefaultLimit
	}
	picked := squareBets(games)
	return truncate(picked, limit)
}

// BigBettorAlertsBySport is the sport-scoped variant. Unlike the
// global view it ranks by the handle-vs-tickets gap, not raw handle.
func BigBettorAlertsBySport(games []splits.Game, sport string, limit int) []splits.AnnotatedBet {
	if limit <= 0 {
		limit = DefaultLimit
	}
	sportGames := rosters.FilterBySport(games, sport)
	if len(sportGames) == 0 {
		return nil
	}
	var picked []splits.AnnotatedBet
	for _, b := range splits.Flatten(sportGames) {
		if b.MarketType == totalMarket {
			continue
		}
		diff := splits.ParsePercent(b.HandlePct) - splits.ParsePercent(b.BetsPct)
		b.HandleVsBetsDiff = &diff
		picked = append(picked, b)
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return *picked[i].HandleVsBetsDiff > *picked[j].HandleVsBetsDiff
	})
	return truncate(picked, limit)
}

// BiggestSquareBetsBySport is the sport-scoped square-bet ranking.
func BiggestSquareBetsBySport(games []splits.Game, sport string, limit int) []splits.AnnotatedBet {
	if limit <= 0 {
		limit = DefaultLimit
	}
	sportGames := rosters.FilterBySport(games, sport)
	if len(sportGames) == 0 {
		return nil
	}
	picked := squareBets(sportGames)
	return truncate(picked, limit)
}

func squareBets(games []splits.Game) []splits.AnnotatedBet {
	var picked []splits.AnnotatedBet
	for _, b := range splits.Flatten(games) {
		score := splits.ParsePercent(b.BetsPct) - splits.ParsePercent(b.HandlePct)
		if score <= 0 {
			continue
		}
		s := score
		b.SquareScore = &s
		picked = append(picked, b)
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return *picked[i].SquareScore > *picked[j].SquareScore
	})
	return picked
}

func truncate(bets []splits.AnnotatedBet, limit int) []splits.AnnotatedBet {
	if len(bets) > limit {
		return bets[:limit]
	}
	return bets
}
