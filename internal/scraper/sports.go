package scraper

import (
	"github.com/thebettinginsider/splitsight/internal/splits"
)

// SportConfig identifies one sport tab on the splits page.
type SportConfig struct {
	Key        string
	ID         int
	DateRanges []splits.DateRange
}

var bothDays = []splits.DateRange{splits.RangeToday, splits.RangeTomorrow}
var todayOnly = []splits.DateRange{splits.RangeToday}

// DefaultSports lists every sport the pipeline scrapes. Soccer
// competitions publish a single-day slate, so they are today-only.
// The source also exposes an aggregate all-sports tab (id 0) which is
// skipped in favor of the per-sport tabs.
func DefaultSports() []SportConfig {
	return []SportConfig{
		{Key: "mlb", ID: 84240, DateRanges: bothDays},
		{Key: "wnba", ID: 94682, DateRanges: bothDays},
		{Key: "nba", ID: 42648, DateRanges: bothDays},
		{Key: "nhl", ID: 42133, DateRanges: bothDays},
		{Key: "mls", ID: 89345, DateRanges: todayOnly},
		{Key: "ufc", ID: 9034, DateRanges: bothDays},
		{Key: "nfl", ID: 88808, DateRanges: bothDays},
		{Key: "ncaaf", ID: 87637, DateRanges: bothDays},
		{Key: "ncaa_basketball", ID: 92483, DateRanges: bothDays},
		{Key: "ncaa_womens_basketball", ID: 36647, DateRanges: bothDays},
		{Key: "ncaa_baseball", ID: 41151, DateRanges: bothDays},
		{Key: "ncaa_ice_hockey", ID: 84813, DateRanges: bothDays},
		{Key: "premier_league", ID: 40253, DateRanges: todayOnly},
		{Key: "champions_league", ID: 40685, DateRanges: todayOnly},
		{Key: "europa_league", ID: 41410, DateRanges: todayOnly},
	}
}
