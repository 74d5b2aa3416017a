package rosters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebettinginsider/splitsight/internal/rosters"
	"github.com/thebettinginsider/splitsight/internal/splits"
)

func titled(titles ...string) []splits.Game {
	out := make([]splits.Game, 0, len(titles))
	for _, title := range titles {
		out = append(out, splits.Game{Title: title})
	}
	return out
}

func titles(games []splits.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Title)
	}
	return out
}

func TestFilterBySport(t *testing.T) {
	games := titled(
		"Yankees @ Red Sox",
		"Heat @ Celtics",
		"Chiefs @ Bills",
		"Maple Leafs @ Canucks",
		"Liverpool vs Arsenal",
	)

	tests := []struct {
		sport string
		want  []string
	}{
		{"mlb", []string{"Yankees @ Red Sox"}},
		// "CHIEFS" contains the CHI abbreviation, so the football game
		// leaks into the nba and nhl views. Matching is unanchored on
		// purpose and this false positive is part of the contract.
		{"nba", []string{"Heat @ Celtics", "Chiefs @ Bills"}},
		{"nfl", []string{"Chiefs @ Bills"}},
		{"nhl", []string{"Chiefs @ Bills", "Maple Leafs @ Canucks"}},
	}
	for _, tt := range tests {
		t.Run(tt.sport, func(t *testing.T) {
			got := rosters.FilterBySport(games, tt.sport)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilterBySportUnknownSport(t *testing.T) {
	games := titled("Yankees @ Red Sox")
	assert.Empty(t, rosters.FilterBySport(games, "cricket"))
}

func TestFilterBySportCaseInsensitive(t *testing.T) {
	games := titled("YANKEES @ RED SOX")
	got := rosters.FilterBySport(games, "mlb")
	require.Len(t, got, 1)
}

func TestFilterMLBUsesBroaderRoster(t *testing.T) {
	games := titled("Indians vs Legends")

	assert.Empty(t, rosters.FilterBySport(games, "mlb"),
		"the generic roster dropped the Indians franchise name")
	got := rosters.FilterMLB(games)
	require.Len(t, got, 1, "the legacy roster still carries it")
	assert.Equal(t, "Indians vs Legends", got[0].Title)
}

func TestFilterPreservesOrder(t *testing.T) {
	games := titled("Cubs @ Cardinals", "Heat @ Celtics", "Mets @ Braves")
	got := rosters.FilterBySport(games, "mlb")
	assert.Equal(t, []string{"Cubs @ Cardinals", "Mets @ Braves"}, titles(got))
}

func TestSports(t *testing.T) {
	assert.Equal(t, []string{"mlb", "nba", "nfl", "nhl"}, rosters.Sports())
}
