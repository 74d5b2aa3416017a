package scraper

import (
	"context"

	"github.com/thebettinginsider/splitsight/internal/logging"
	"github.com/thebettinginsider/splitsight/internal/splits"
)

// maxPages is the hard safety cap per (sport, date range) pair.
const maxPages = 20

// stopReason is why pagination halted for one (sport, date range) pair.
// These are the only three ways a pagination loop ends.
type stopReason int

const (
	stopNone stopReason = iota
	stopFetchError
	stopEmptyPage // zero fragments, or a page that added zero new games
	stopPageCap
)

func (r stopReason) String() string {
	switch r {
	case stopFetchError:
		return "fetch error"
	case stopEmptyPage:
		return "empty page"
	case stopPageCap:
		return "page cap"
	default:
		return "continue"
	}
}

// Scraper drives the fetch/parse/dedupe pipeline across every
// configured sport and date range, sequentially.
type Scraper struct {
	client *Client
	sports []SportConfig
}

func New(client *Client, sports []SportConfig) *Scraper {
	if client == nil {
		client = NewClient(ClientConfig{})
	}
	if len(sports) == 0 {
		sports = DefaultSports()
	}
	return &Scraper{client: client, sports: sports}
}

// Scrape runs the full pipeline and returns the unique games found in
// this run. Fetch failures abort only the pair they occur in; the run
// itself always completes with whatever was collected.
func (s *Scraper) Scrape(ctx context.Context) []splits.Game {
	acc := NewDedupe()
	for _, sport := range s.sports {
		total := 0
		for _, dr := range sport.DateRanges {
			total += s.scrapeRange(ctx, sport, dr, acc)
		}
		logging.Infof("[scraper] %s: %d new games", sport.Key, total)
	}
	logging.Infof("[scraper] total unique games: %d", len(acc.Games()))
	return acc.Games()
}

// scrapeRange paginates one (sport, date range) pair until one of the
// three stop conditions fires, returning how many new games it added.
func (s *Scraper) scrapeRange(ctx context.Context, sport SportConfig, dr splits.DateRange, acc *Dedupe) int {
	added := 0
	for page := 1; ; page++ {
		n, reason := s.scrapePage(ctx, sport, dr, page, acc)
		added += n
		if reason == stopNone && page >= maxPages {
			reason = stopPageCap
		}
		if reason != stopNone {
			logging.Debugf("[scraper] %s %s: stopping at page %d (%s)", sport.Key, dr, page, reason)
			return added
		}
	}
}

// scrapePage processes a single page and reports whether pagination
// should continue past it.
func (s *Scraper) scrapePage(ctx context.Context, sport SportConfig, dr splits.DateRange, page int, acc *Dedupe) (int, stopReason) {
	doc, err := s.client.FetchPage(ctx, sport.ID, dr, page)
	if err != nil {
		logging.Errorf("[scraper] %s %s page %d: %v", sport.Key, dr, page, err)
		return 0, stopFetchError
	}

	frags := GameFragments(doc)
	logging.Debugf("[scraper] %s %s page %d: %d game fragments", sport.Key, dr, page, len(frags))
	if len(frags) == 0 {
		return 0, stopEmptyPage
	}

	added := 0
	for _, frag := range frags {
		game, err := ParseGame(frag, dr)
		if err != nil {
			logging.Debugf("[scraper] %s %s page %d: skip fragment: %v", sport.Key, dr, page, err)
			continue
		}
		if !acc.Add(*game) {
			logging.Debugf("[scraper] skip duplicate: %s", game.Title)
			continue
		}
		added++
	}
	if added == 0 {
		return 0, stopEmptyPage
	}
	return added, stopNone
}
