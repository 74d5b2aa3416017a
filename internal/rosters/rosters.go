// Package rosters classifies games into sports by matching team names
// and abbreviations against the game title.
package rosters

import (
	"strings"

	"github.com/thebettinginsider/splitsight/internal/splits"
)

// teamLists holds roster tokens (team names and abbreviations, no city
// names) per sport key. Matching is substring-based and unanchored, so
// short abbreviations can incidentally hit unrelated title text; that
// behavior is intentional.
var teamLists = map[string][]string{
	"mlb": {
		// Full team names
		"Angels", "Astros", "Athletics", "Blue Jays", "Braves", "Brewers",
		"Cardinals", "Cubs", "Diamondbacks", "Dodgers", "Giants", "Guardians",
		"Mariners", "Marlins", "Mets", "Nationals", "Orioles", "Padres",
		"Phillies", "Pirates", "Rangers", "Rays", "Red Sox", "Reds", "Rockies",
		"Royals", "Tigers", "Twins", "White Sox", "Yankees",
		// Abbreviations
		"LAA", "HOU", "OAK", "TOR", "ATL", "MIL", "STL", "CHC", "ARI", "LAD",
		"SF", "CLE", "MIA", "NYM", "WSN", "WAS", "BAL", "SD", "PHI",
		"PIT", "TEX", "TB", "BOS", "CIN", "COL", "KC", "DET", "MIN", "CWS",
		"CHW", "NYY",
	},
	"nba": {
		// Full team names
		"Hawks", "Celtics", "Nets", "Hornets", "Bulls", "Cavaliers", "Mavericks",
		"Nuggets", "Pistons", "Warriors", "Rockets", "Pacers", "Clippers", "Lakers",
		"Grizzlies", "Heat", "Bucks", "Timberwolves", "Pelicans", "Knicks",
		"Thunder", "Magic", "76ers", "Suns", "Trail Blazers", "Kings", "Spurs",
		"Raptors", "Jazz", "Wizards",
		// Abbreviations
		"ATL", "BOS", "BKN", "CHA", "CHI", "CLE", "DAL", "DEN", "DET", "GSW",
		"HOU", "IND", "LAC", "LAL", "MEM", "MIA", "MIL", "MIN", "NOP", "NYK",
		"OKC", "ORL", "PHI", "PHX", "POR", "SAC", "SAS", "TOR", "UTA", "WAS",
	},
	"nfl": {
		// Full team names
		"Cardinals", "Falcons", "Ravens", "Bills", "Panthers", "Bears", "Bengals",
		"Browns", "Cowboys", "Broncos", "Lions", "Packers", "Texans", "Colts",
		"Jaguars", "Chiefs", "Raiders", "Chargers", "Rams", "Dolphins", "Vikings",
		"Patriots", "Saints", "Giants", "Jets", "Eagles", "Steelers", "49ers",
		"Seahawks", "Buccaneers", "Titans", "Commanders",
		// Abbreviations
		"ARI", "ATL", "BAL", "BUF", "CAR", "CHI", "CIN", "CLE", "DAL", "DEN",
		"DET", "GB", "HOU", "IND", "JAX", "KC", "LV", "LAC", "LAR", "MIA",
		"MIN", "NE", "NO", "NYG", "NYJ", "PHI", "PIT", "SF", "TEN", "WAS",
	},
	"nhl": {
		// Full team names
		"Ducks", "Coyotes", "Bruins", "Sabres", "Flames", "Hurricanes",
		"Blackhawks", "Avalanche", "Blue Jackets", "Stars", "Red Wings",
		"Oilers", "Panthers", "Kings", "Wild", "Canadiens", "Predators",
		"Devils", "Islanders", "Rangers", "Senators", "Flyers", "Penguins",
		"Sharks", "Kraken", "Blues", "Lightning", "Maple Leafs", "Canucks",
		"Golden Knights", "Capitals", "Jets",
		// Abbreviations
		"ANA", "ARI", "BOS", "BUF", "CGY", "CAR", "CHI", "COL", "CBJ", "DAL",
		"DET", "EDM", "FLA", "LAK", "MIN", "MTL", "NSH", "NJD", "NYI", "NYR",
		"OTT", "PHI", "PIT", "SJS", "STL", "TBL", "TOR", "VAN", "VGK",
		"WSH", "WPG",
	},
}

// mlbBroad backs the MLB-only view. It is wider than the generic mlb
// roster: it keeps the Indians franchise name plus the SEA and bare NY
// abbreviations. The two lists diverge on purpose; consumers depend on
// the difference.
var mlbBroad = []string{
	"Angels", "Astros", "Athletics", "Blue Jays", "Braves", "Brewers",
	"Cardinals", "Cubs", "Diamondbacks", "Dodgers", "Giants", "Guardians",
	"Indians", "Mariners", "Marlins", "Mets", "Nationals", "Orioles",
	"Padres", "Phillies", "Pirates", "Rangers", "Rays", "Red Sox",
	"Reds", "Rockies", "Royals", "Tigers", "Twins", "White Sox", "Yankees",
	"LAA", "HOU", "OAK", "TOR", "ATL", "MIL", "STL", "CHC", "ARI", "LAD",
	"SF", "CLE", "SEA", "MIA", "NYM", "WSN", "WAS", "BAL", "SD", "PHI",
	"PIT", "TEX", "TB", "BOS", "CIN", "COL", "KC", "DET", "MIN", "CWS",
	"CHW", "NYY", "NY",
}

// FilterBySport returns every game whose title contains at least one
// roster token for the sport, case-insensitively. An unknown sport key
// yields an empty result, not an error.
func FilterBySport(games []splits.Game, sport string) []splits.Game {
	tokens, ok := teamLists[sport]
	if !ok {
		return nil
	}
	return filterByTokens(games, tokens)
}

// FilterMLB returns MLB games using the broader legacy roster.
func FilterMLB(games []splits.Game) []splits.Game {
	return filterByTokens(games, mlbBroad)
}

// Sports lists the sport keys FilterBySport understands.
func Sports() []string {
	return []string{"mlb", "nba", "nfl", "nhl"}
}

func filterByTokens(games []splits.Game, tokens []string) []splits.Game {
	var out []splits.Game
	for _, g := range games {
		title := strings.ToUpper(g.Title)
		for _, tok := range tokens {
			if strings.Contains(title, strings.ToUpper(tok)) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
