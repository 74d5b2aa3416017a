package splits

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateRange selects which day's slate a game was scraped from.
type DateRange string

const (
	RangeToday    DateRange = "today"
	RangeTomorrow DateRange = "tomorrow"
)

// Bet is one selection inside a market, exactly as scraped. Odds and
// percentages stay strings so the stored record mirrors the source text.
type Bet struct {
	Team      string `json:"team"`
	Odds      string `json:"odds"`
	HandlePct string `json:"handle_pct"`
	BetsPct   string `json:"bets_pct"`
}

// Market is a typed group of bets (Moneyline, Spread, Total, ...).
type Market struct {
	Type string `json:"type"`
	Bets []Bet  `json:"bets"`
}

// MarketSet is an ordered label -> bets mapping. Labels keep their
// first-seen position; setting an existing label replaces its bets in
// place. It serializes as a JSON object in that order.
type MarketSet []Market

// Set inserts or replaces the bets for a label and returns the updated set.
func (m MarketSet) Set(label string, bets []Bet) MarketSet {
	for i := range m {
		if m[i].Type == label {
			m[i].Bets = bets
			return m
		}
	}
	return append(m, Market{Type: label, Bets: bets})
}

// Get returns the bets stored under a label.
func (m MarketSet) Get(label string) ([]Bet, bool) {
	for i := range m {
		if m[i].Type == label {
			return m[i].Bets, true
		}
	}
	return nil, false
}

func (m MarketSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mk := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mk.Type)
		if err != nil {
			return nil, err
		}
		bets, err := json.Marshal(mk.Bets)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(bets)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *MarketSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("markets: expected object, got %v", tok)
	}
	out := MarketSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("markets: expected string key, got %v", keyTok)
		}
		var bets []Bet
		if err := dec.Decode(&bets); err != nil {
			return fmt.Errorf("markets %q: %w", label, err)
		}
		out = out.Set(label, bets)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// Game is one scraped matchup with all of its markets.
type Game struct {
	Title            string    `json:"title"`
	Time             string    `json:"time"`
	AwayTeam         string    `json:"away_team"`
	HomeTeam         string    `json:"home_team"`
	ScrapedDateRange DateRange `json:"scraped_date_range"`
	Markets          MarketSet `json:"markets"`
}

// GameKey is the identity of a game within one scrape run.
type GameKey struct {
	Title     string
	Time      string
	DateRange DateRange
}

// Key returns the identity used for duplicate detection.
func (g *Game) Key() GameKey {
	return GameKey{Title: g.Title, Time: g.Time, DateRange: g.ScrapedDateRange}
}

// AnnotatedBet pairs a bet with its owning game and market for
// analytics output. Derived scores are only ever set on this copy,
// never on the stored Bet.
type AnnotatedBet struct {
	Bet
	GameTitle        string   `json:"game_title"`
	GameTime         string   `json:"game_time"`
	AwayTeam         string   `json:"away_team"`
	HomeTeam         string   `json:"home_team"`
	MarketType       string   `json:"market_type"`
	HandleVsBetsDiff *float64 `json:"handle_vs_bets_diff,omitempty"`
	SquareScore      *float64 `json:"square_score,omitempty"`
}

// Flatten pairs every bet with its game and market label, in document order.
func Flatten(games []Game) []AnnotatedBet {
	var out []AnnotatedBet
	for _, g := range games {
		for _, mk := range g.Markets {
			for _, b := range mk.Bets {
				out = append(out, AnnotatedBet{
					Bet:        b,
					GameTitle:  g.Title,
					GameTime:   g.Time,
					AwayTeam:   g.AwayTeam,
					HomeTeam:   g.HomeTeam,
					MarketType: mk.Type,
				})
			}
		}
	}
	return out
}

// Snapshot is the current cached result set.
type Snapshot struct {
	Games      []Game    `json:"games"`
	CapturedAt time.Time `json:"captured_at"`
}
