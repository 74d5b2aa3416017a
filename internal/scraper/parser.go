package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/thebettinginsider/splitsight/internal/splits"
)

// Structural class markers used by the source markup.
const (
	selGame        = "div.tb-se"
	selTitleHeader = "div.tb-se-title"
	selMarketWrap  = "div.tb-market-wrap"
	selMarketHead  = "div.tb-se-head"
	selBetRow      = "div.tb-sodd"
	selSlipline    = "div.tb-slipline"
	selOdds        = "a.tb-odd-s"
)

// GameFragments returns the game blocks present in a page document.
func GameFragments(doc *goquery.Document) []*goquery.Selection {
	var out []*goquery.Selection
	doc.Find(selGame).Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

// ParseGame converts one game fragment into a Game. A fragment is
// rejected when the title header or market wrap is missing, or when
// the title does not split cleanly into away and home teams.
func ParseGame(sel *goquery.Selection, dateRange splits.DateRange) (*splits.Game, error) {
	header := sel.Find(selTitleHeader).First()
	if header.Length() == 0 {
		return nil, errors.New("missing title header")
	}
	title := strings.TrimSpace(header.Find("h5").First().Text())
	gameTime := strings.TrimSpace(header.Find("span").First().Text())

	away, home, err := splitTitle(title)
	if err != nil {
		return nil, err
	}

	wrap := sel.Find(selMarketWrap).First()
	if wrap.Length() == 0 {
		return nil, errors.New("missing market wrap")
	}

	game := &splits.Game{
		Title:            title,
		Time:             gameTime,
		AwayTeam:         away,
		HomeTeam:         home,
		ScrapedDateRange: dateRange,
		Markets:          splits.MarketSet{},
	}

	// Market containers are the direct children of the wrap, in
	// document order. A repeated label overwrites the earlier entry.
	wrap.ChildrenFiltered("div").Each(func(_ int, container *goquery.Selection) {
		label, bets, err := parseMarket(container)
		if err != nil {
			return
		}
		game.Markets = game.Markets.Set(label, bets)
	})

	return game, nil
}

// splitTitle derives away/home from a game title. The two recognized
// delimiters are checked in order; whichever appears first decides the
// split, and a bad part count is not retried against the other.
func splitTitle(title string) (away, home string, err error) {
	for _, delim := range []string{" @ ", " vs "} {
		if !strings.Contains(title, delim) {
			continue
		}
		parts := strings.Split(title, delim)
		if len(parts) != 2 {
			return "", "", fmt.Errorf("cannot split title %q on %q", title, delim)
		}
		away = strings.TrimSpace(parts[0])
		home = strings.TrimSpace(parts[1])
		if away == "" || home == "" {
			return "", "", fmt.Errorf("empty team in title %q", title)
		}
		return away, home, nil
	}
	return "", "", fmt.Errorf("unrecognized title format %q", title)
}

func parseMarket(container *goquery.Selection) (string, []splits.Bet, error) {
	head := container.Find(selMarketHead).First()
	if head.Length() == 0 {
		return "", nil, errors.New("missing market header")
	}
	labelDiv := head.Find("div").First()
	if labelDiv.Length() == 0 {
		return "", nil, errors.New("missing market label")
	}
	label := strings.TrimSpace(labelDiv.Text())

	var bets []splits.Bet
	container.Find(selBetRow).Each(func(_ int, row *goquery.Selection) {
		bet, err := parseBet(row)
		if err != nil {
			return
		}
		bets = append(bets, *bet)
	})
	return label, bets, nil
}

// parseBet extracts one selection. Percentages are unlabeled in the
// markup: the first pure percentage token in document order is the
// handle share, the second is the ticket share. This positional
// contract follows the upstream document order and must not be
// reordered.
func parseBet(row *goquery.Selection) (*splits.Bet, error) {
	team := row.Find(selSlipline).First()
	if team.Length() == 0 {
		return nil, errors.New("missing selection label")
	}
	odds := row.Find(selOdds).First()
	if odds.Length() == 0 {
		return nil, errors.New("missing odds element")
	}

	var tokens []string
	row.Find("div").Each(func(_ int, div *goquery.Selection) {
		if text := strings.TrimSpace(div.Text()); isPercentToken(text) {
			tokens = append(tokens, text)
		}
	})

	handlePct, betsPct := "0%", "0%"
	if len(tokens) >= 2 {
		handlePct = tokens[0]
		betsPct = tokens[1]
	}

	return &splits.Bet{
		Team:      strings.TrimSpace(team.Text()),
		Odds:      strings.TrimSpace(odds.Text()),
		HandlePct: handlePct,
		BetsPct:   betsPct,
	}, nil
}

// isPercentToken reports whether text is a pure percentage such as
// "62%": only digits remain once '%' and spaces are removed.
func isPercentToken(s string) bool {
	if !strings.Contains(s, "%") {
		return false
	}
	rest := strings.ReplaceAll(strings.ReplaceAll(s, "%", ""), " ", "")
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
