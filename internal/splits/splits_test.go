package splits_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebettinginsider/splitsight/internal/splits"
)

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"62%", 62},
		{"0%", 0},
		{"100%", 100},
		{" 45 %", 45},
		{"62.5%", 62.5},
		{"", 0},
		{"n/a", 0},
		{"%", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splits.ParsePercent(tt.in), "ParsePercent(%q)", tt.in)
	}
}

func TestParseOdds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"+250", 250},
		{"-150", -150},
		{"−150", -150},
		{"100", 100},
		{"EVEN", 0},
		{"", 0},
		{"+", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splits.ParseOdds(tt.in), "ParseOdds(%q)", tt.in)
	}
}

func TestMarketSetOrderAndOverwrite(t *testing.T) {
	ms := splits.MarketSet{}
	ms = ms.Set("Moneyline", []splits.Bet{{Team: "Yankees"}})
	ms = ms.Set("Spread", []splits.Bet{{Team: "Red Sox"}})
	ms = ms.Set("Moneyline", []splits.Bet{{Team: "Mets"}})

	require.Len(t, ms, 2)
	assert.Equal(t, "Moneyline", ms[0].Type, "repeated label keeps its first position")
	assert.Equal(t, "Mets", ms[0].Bets[0].Team, "repeated label replaces the bets")
	assert.Equal(t, "Spread", ms[1].Type)
}

func TestMarketSetJSONRoundTrip(t *testing.T) {
	ms := splits.MarketSet{}
	ms = ms.Set("Spread", []splits.Bet{{Team: "Jets", Odds: "-110", HandlePct: "40%", BetsPct: "55%"}})
	ms = ms.Set("Moneyline", []splits.Bet{{Team: "Bills", Odds: "+120", HandlePct: "62%", BetsPct: "18%"}})

	data, err := json.Marshal(ms)
	require.NoError(t, err)
	// Object keys come out in document order, not sorted.
	assert.Equal(t, `{"Spread":[{"team":"Jets","odds":"-110","handle_pct":"40%","bets_pct":"55%"}],"Moneyline":[{"team":"Bills","odds":"+120","handle_pct":"62%","bets_pct":"18%"}]}`, string(data))

	var back splits.MarketSet
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 2)
	assert.Equal(t, "Spread", back[0].Type)
	assert.Equal(t, "Moneyline", back[1].Type)
	assert.Equal(t, ms, back)
}

func TestFlatten(t *testing.T) {
	games := []splits.Game{
		{
			Title:    "Yankees @ Red Sox",
			Time:     "7:10 PM",
			AwayTeam: "Yankees",
			HomeTeam: "Red Sox",
			Markets: splits.MarketSet{}.
				Set("Moneyline", []splits.Bet{
					{Team: "Yankees", Odds: "+120", HandlePct: "62%", BetsPct: "18%"},
					{Team: "Red Sox", Odds: "-140", HandlePct: "38%", BetsPct: "82%"},
				}).
				Set("Total", []splits.Bet{
					{Team: "Over 8.5", Odds: "-110", HandlePct: "51%", BetsPct: "49%"},
				}),
		},
	}

	bets := splits.Flatten(games)
	require.Len(t, bets, 3)

	first := bets[0]
	assert.Equal(t, "Yankees", first.Team)
	assert.Equal(t, "Yankees @ Red Sox", first.GameTitle)
	assert.Equal(t, "7:10 PM", first.GameTime)
	assert.Equal(t, "Yankees", first.AwayTeam)
	assert.Equal(t, "Red Sox", first.HomeTeam)
	assert.Equal(t, "Moneyline", first.MarketType)
	assert.Nil(t, first.HandleVsBetsDiff)
	assert.Nil(t, first.SquareScore)

	assert.Equal(t, "Total", bets[2].MarketType)
}

func TestGameKey(t *testing.T) {
	a := splits.Game{Title: "A @ B", Time: "1:00 PM", ScrapedDateRange: splits.RangeToday}
	b := splits.Game{Title: "A @ B", Time: "1:00 PM", ScrapedDateRange: splits.RangeTomorrow}
	assert.NotEqual(t, a.Key(), b.Key(), "same matchup on different date ranges is a different game")

	c := splits.Game{Title: "A @ B", Time: "1:00 PM", ScrapedDateRange: splits.RangeToday}
	assert.Equal(t, a.Key(), c.Key())
}
