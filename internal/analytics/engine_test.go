package analytics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebettinginsider/splitsight/internal/analytics"
	"github.com/thebettinginsider/splitsight/internal/splits"
)

func game(title, market string, bets ...splits.Bet) splits.Game {
	return splits.Game{
		Title:            title,
		Time:             "7:00 PM",
		ScrapedDateRange: splits.RangeToday,
		Markets:          splits.MarketSet{}.Set(market, bets),
	}
}

func bet(team, odds, handle, betsPct string) splits.Bet {
	return splits.Bet{Team: team, Odds: odds, HandlePct: handle, BetsPct: betsPct}
}

func teams(bets []splits.AnnotatedBet) []string {
	out := make([]string, 0, len(bets))
	for _, b := range bets {
		out = append(out, b.Team)
	}
	return out
}

func TestBigBettorAlerts(t *testing.T) {
	games := []splits.Game{
		game("Yankees @ Red Sox", "Moneyline",
			bet("Yankees", "+120", "80%", "40%"),
			bet("Red Sox", "-140", "20%", "60%"),
		),
		game("Cubs @ Cardinals", "Total",
			bet("Over 8.5", "-110", "95%", "50%"),
		),
		game("Mets @ Braves", "Spread",
			bet("Mets +1.5", "-105", "55%", "45%"),
		),
	}

	got := analytics.BigBettorAlerts(games, 0)

	assert.Equal(t, []string{"Yankees", "Mets +1.5", "Red Sox"}, teams(got),
		"ranked by raw handle with totals excluded")
	for _, b := range got {
		assert.NotEqual(t, "Total", b.MarketType)
		assert.Nil(t, b.HandleVsBetsDiff)
	}
}

func TestBigBettorAlertsLimit(t *testing.T) {
	var bets []splits.Bet
	for i := 0; i < 10; i++ {
		bets = append(bets, bet(fmt.Sprintf("Team%d", i), "+100", fmt.Sprintf("%d%%", 50+i), "10%"))
	}
	games := []splits.Game{game("A @ B", "Moneyline", bets...)}

	assert.Len(t, analytics.BigBettorAlerts(games, 0), 7, "default limit")
	assert.Len(t, analytics.BigBettorAlerts(games, 3), 3)
	assert.Len(t, analytics.BigBettorAlerts(games, 50), 10, "limit past the pool returns everything")
}

func TestSharpestLongshots(t *testing.T) {
	games := []splits.Game{
		game("A @ B", "Moneyline",
			bet("short odds", "+150", "90%", "10%"),  // odds below +200
			bet("thin edge", "+300", "45%", "20%"),   // gap of 25, under threshold
			bet("qualifier", "+250", "65%", "20%"),   // gap 45
			bet("big gap", "+400", "80%", "10%"),     // gap 70
			bet("exact gap", "+200", "50%", "20%"),   // gap exactly 30 qualifies
			bet("square side", "+220", "10%", "60%"), // tickets ahead of money
		),
	}

	got := analytics.SharpestLongshots(games, 0)

	assert.Equal(t, []string{"big gap", "qualifier", "exact gap"}, teams(got))
	require.NotNil(t, got[0].HandleVsBetsDiff)
	assert.Equal(t, 70.0, *got[0].HandleVsBetsDiff)
	require.NotNil(t, got[2].HandleVsBetsDiff)
	assert.Equal(t, 30.0, *got[2].HandleVsBetsDiff)
}

func TestGetRichQuickScheme(t *testing.T) {
	games := []splits.Game{
		game("A @ B", "Moneyline",
			bet("long heavy", "+450", "55%", "5%"),
			bet("long light", "+500", "10%", "5%"), // handle under 30%
			bet("not long", "+350", "80%", "5%"),   // odds under +400
			bet("boundary", "+400", "30%", "5%"),   // both thresholds inclusive
			bet("longest", "+900", "70%", "5%"),
		),
	}

	got := analytics.GetRichQuickScheme(games)

	assert.Equal(t, []string{"longest", "long heavy", "boundary"}, teams(got))
}

func TestGetRichQuickSchemeNoTruncation(t *testing.T) {
	var bets []splits.Bet
	for i := 0; i < 12; i++ {
		bets = append(bets, bet(fmt.Sprintf("Team%d", i), "+500", "60%", "5%"))
	}
	games := []splits.Game{game("A @ B", "Moneyline", bets...)}

	assert.Len(t, analytics.GetRichQuickScheme(games), 12)
}

func TestBiggestSquareBets(t *testing.T) {
	games := []splits.Game{
		game("A @ B", "Moneyline",
			bet("squarest", "+100", "10%", "90%"), // score 80
			bet("square", "-110", "30%", "60%"),   // score 30
			bet("sharp", "+120", "70%", "20%"),    // money ahead, excluded
			bet("even", "-105", "50%", "50%"),     // score 0, excluded
		),
	}

	got := analytics.BiggestSquareBets(games, 0)

	assert.Equal(t, []string{"squarest", "square"}, teams(got))
	require.NotNil(t, got[0].SquareScore)
	assert.Equal(t, 80.0, *got[0].SquareScore)
	assert.Nil(t, got[0].HandleVsBetsDiff)
}

func TestBigBettorAlertsBySport(t *testing.T) {
	games := []splits.Game{
		game("Yankees @ Red Sox", "Moneyline",
			bet("Yankees", "+120", "80%", "70%"), // gap 10, highest handle
			bet("Red Sox", "-140", "60%", "10%"), // gap 50
		),
		game("Yankees @ Red Sox", "Total",
			bet("Over 8.5", "-110", "99%", "1%"),
		),
		game("Heat @ Celtics", "Moneyline",
			bet("Heat", "+200", "90%", "10%"),
		),
	}

	got := analytics.BigBettorAlertsBySport(games, "mlb", 0)

	// Sport-scoped ranking uses the handle-vs-tickets gap, so the
	// lower-handle Red Sox side outranks the Yankees side. No NBA
	// games and no totals appear.
	assert.Equal(t, []string{"Red Sox", "Yankees"}, teams(got))
	require.NotNil(t, got[0].HandleVsBetsDiff)
	assert.Equal(t, 50.0, *got[0].HandleVsBetsDiff)
	require.NotNil(t, got[1].HandleVsBetsDiff)
	assert.Equal(t, 10.0, *got[1].HandleVsBetsDiff)
}

func TestBigBettorAlertsBySportUnknownSport(t *testing.T) {
	games := []splits.Game{
		game("Yankees @ Red Sox", "Moneyline", bet("Yankees", "+120", "80%", "40%")),
	}
	assert.Empty(t, analytics.BigBettorAlertsBySport(games, "cricket", 0))
}

func TestBiggestSquareBetsBySport(t *testing.T) {
	games := []splits.Game{
		game("Yankees @ Red Sox", "Total",
			bet("Under 8.5", "-110", "20%", "80%"), // totals count in square views
		),
		game("Yankees @ Red Sox", "Moneyline",
			bet("Yankees", "+120", "40%", "60%"),
		),
		game("Heat @ Celtics", "Moneyline",
			bet("Heat", "+200", "10%", "90%"),
		),
	}

	got := analytics.BiggestSquareBetsBySport(games, "mlb", 0)

	assert.Equal(t, []string{"Under 8.5", "Yankees"}, teams(got))
}

func TestRankingsAreStableOnTies(t *testing.T) {
	games := []splits.Game{
		game("A @ B", "Moneyline",
			bet("first", "+100", "60%", "10%"),
			bet("second", "+100", "60%", "10%"),
			bet("third", "+100", "60%", "10%"),
		),
	}

	got := analytics.BigBettorAlerts(games, 0)
	assert.Equal(t, []string{"first", "second", "third"}, teams(got),
		"equal handle keeps document order")
}

func TestLongshotCanAlsoBeBigBettorAlert(t *testing.T) {
	// The "+250 / 65% / 20%" pick qualifies for both views at once.
	games := []splits.Game{
		game("Yankees @ Red Sox", "Moneyline",
			bet("Yankees", "+250", "65%", "20%"),
			bet("Red Sox", "-300", "35%", "80%"),
		),
	}

	alerts := analytics.BigBettorAlerts(games, 0)
	longshots := analytics.SharpestLongshots(games, 0)

	require.NotEmpty(t, alerts)
	require.NotEmpty(t, longshots)
	assert.Equal(t, "Yankees", alerts[0].Team)
	assert.Equal(t, "Yankees", longshots[0].Team)

	// Money leads tickets here, so the same pick never counts as square.
	assert.NotContains(t, teams(analytics.BiggestSquareBets(games, 0)), "Yankees")
}
