package scraper

import (
	"github.com/thebettinginsider/splitsight/internal/splits"
)

// Dedupe folds parsed games into a unique set for a single scrape run.
// Identity is (title, time, date range); the previous cached snapshot
// is never consulted.
type Dedupe struct {
	games []splits.Game
	seen  map[splits.GameKey]struct{}
}

func NewDedupe() *Dedupe {
	return &Dedupe{seen: make(map[splits.GameKey]struct{})}
}

// Add appends the game unless its identity key was already seen in
// this run. It reports whether the game was new.
func (d *Dedupe) Add(g splits.Game) bool {
	key := g.Key()
	if _, dup := d.seen[key]; dup {
		return false
	}
	d.seen[key] = struct{}{}
	d.games = append(d.games, g)
	return true
}

// Games returns the accumulated unique games in insertion order.
func (d *Dedupe) Games() []splits.Game {
	return d.games
}
