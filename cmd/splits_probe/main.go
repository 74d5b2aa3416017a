// splits_probe runs the scrape pipeline once and prints every
// analytics view to the console. Useful for verifying the brittle
// positional parsing against the live source without starting the
// server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/thebettinginsider/splitsight/internal/analytics"
	"github.com/thebettinginsider/splitsight/internal/logging"
	"github.com/thebettinginsider/splitsight/internal/rosters"
	"github.com/thebettinginsider/splitsight/internal/scraper"
	"github.com/thebettinginsider/splitsight/internal/splits"
)

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := scraper.NewClient(scraper.ClientConfig{
		BaseURL: os.Getenv("SPLITS_BASE_URL"),
		Timeout: 20 * time.Second,
	})
	games := scraper.New(client, nil).Scrape(ctx)

	fmt.Printf("Found %d games\n", len(games))
	if len(games) > 0 {
		g := games[0]
		fmt.Printf("\nFirst game:\nTitle: %s\nTime: %s\nDate Range: %s\nMarkets:", g.Title, g.Time, g.ScrapedDateRange)
		for _, mk := range g.Markets {
			fmt.Printf(" %s", mk.Type)
		}
		fmt.Println()
	}

	printBigBettors(games)
	printLongshots(games)
	printRichQuick(games)
	printSquares(games)
	printSportAlerts(games)
	printSummary(games)
}

func printBigBettors(games []splits.Game) {
	fmt.Println("\nBIG BETTOR ALERTS (top 7, no totals)")
	for i, bet := range analytics.BigBettorAlerts(games, 0) {
		fmt.Printf("%d. %s (%s) - %s handle | %s | %s\n",
			i+1, bet.Team, bet.Odds, bet.HandlePct, bet.GameTitle, bet.MarketType)
	}
}

func printLongshots(games []splits.Game) {
	fmt.Println("\nSHARPEST LONGSHOTS (+200 odds, 30+ point handle edge)")
	for i, bet := range analytics.SharpestLongshots(games, 0) {
		fmt.Printf("%d. %s (%s) - %s handle vs %s bets (+%.1f) | %s\n",
			i+1, bet.Team, bet.Odds, bet.HandlePct, bet.BetsPct, *bet.HandleVsBetsDiff, bet.GameTitle)
	}
}

func printRichQuick(games []splits.Game) {
	fmt.Println("\nGET RICH QUICK (+400 odds, 30%+ of the money)")
	for i, bet := range analytics.GetRichQuickScheme(games) {
		fmt.Printf("%d. %s (%s) - %s handle | %s\n",
			i+1, bet.Team, bet.Odds, bet.HandlePct, bet.GameTitle)
	}
}

func printSquares(games []splits.Game) {
	fmt.Println("\nBIGGEST SQUARE BETS (high bets%, low handle%)")
	for i, bet := range analytics.BiggestSquareBets(games, 0) {
		fmt.Printf("%d. %s (%s) - %s bets vs %s handle (+%.1f square) | %s\n",
			i+1, bet.Team, bet.Odds, bet.BetsPct, bet.HandlePct, *bet.SquareScore, bet.GameTitle)
	}
}

func printSportAlerts(games []splits.Game) {
	fmt.Println("\nSPORT-SCOPED BIG BETTOR ALERTS")
	for _, sport := range rosters.Sports() {
		fmt.Printf("\n%s top 3:\n", sport)
		for i, bet := range analytics.BigBettorAlertsBySport(games, sport, 3) {
			fmt.Printf("  %d. %s (%s) - %s handle vs %s bets (+%.1f) | %s\n",
				i+1, bet.Team, bet.Odds, bet.HandlePct, bet.BetsPct, *bet.HandleVsBetsDiff, bet.GameTitle)
		}
	}
}

func printSummary(games []splits.Game) {
	fmt.Println("\nSUMMARY")
	fmt.Printf("Total games: %d\n", len(games))
	fmt.Printf("MLB games: %d\n", len(rosters.FilterMLB(games)))
	for _, sport := range rosters.Sports() {
		if sport == "mlb" {
			continue
		}
		fmt.Printf("%s games: %d\n", sport, len(rosters.FilterBySport(games, sport)))
	}
	fmt.Printf("Big bettor alerts: %d\n", len(analytics.BigBettorAlerts(games, 0)))
	fmt.Printf("Sharpest longshots: %d\n", len(analytics.SharpestLongshots(games, 0)))
	fmt.Printf("Get rich quick bets: %d\n", len(analytics.GetRichQuickScheme(games)))
	fmt.Printf("Biggest square bets: %d\n", len(analytics.BiggestSquareBets(games, 0)))
}
