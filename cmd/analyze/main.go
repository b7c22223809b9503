// Command analyze prints quick, human-readable heuristics about the rule
// set files in the project's rules directory. It summarizes the player
// range, how much of the cargo deck the opening deal consumes, seat supply
// versus investor tokens, and the make-up of the cargo deck and ship fleet
// the rules will be played with.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/hey-amo/ShippingInvestors/game/engine"
)

// AnalysisRules is a light struct for reading rule set files used by analysis.
type AnalysisRules struct {
	Name             string `yaml:"name"`
	Description      string `yaml:"description"`
	DockSeatLimit    int    `yaml:"dock_seat_limit"`
	DockCount        int    `yaml:"dock_count"`
	LockedDocks      int    `yaml:"locked_docks"`
	MinPlayers       int    `yaml:"min_players"`
	MaxPlayers       int    `yaml:"max_players"`
	StartingCoins    int    `yaml:"starting_coins"`
	StartingTokens   int    `yaml:"starting_tokens"`
	HandSize         int    `yaml:"hand_size"`
	MarketplaceExtra int    `yaml:"marketplace_extra"`
}

func main() {
	rulesDir := "rules"
	if len(os.Args) > 1 {
		rulesDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(rulesDir, "*.yaml"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No rule files found in %s\n", rulesDir)
		os.Exit(1)
	}

	analyzeDeck()
	analyzeFleet()

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeRules(file)
	}
}

// analyzeDeck prints the composition of the cargo deck: cards per colour,
// tonnage spread, and how many special double-value cards it carries.
func analyzeDeck() {
	deck := engine.BuildCargoDeck(rand.New(rand.NewSource(1)))

	byColour := make(map[engine.Colour]int)
	byTonnage := make(map[int]int)
	specials := 0
	totalTonnage := 0

	for _, card := range deck {
		byColour[card.Colour]++
		byTonnage[card.Tonnage]++
		totalTonnage += card.EffectiveTonnage()
		if card.Special {
			specials++
		}
	}

	fmt.Printf("=== Cargo Deck ===\n")
	fmt.Printf("Cards: %d (%d special)\n", len(deck), specials)
	fmt.Printf("Effective tonnage if fully delivered: %d\n", totalTonnage)
	for _, colour := range engine.Colours() {
		fmt.Printf("  %s: %d cards\n", colour, byColour[colour])
	}

	tonnages := make([]int, 0, len(byTonnage))
	for t := range byTonnage {
		tonnages = append(tonnages, t)
	}
	sort.Ints(tonnages)
	for _, t := range tonnages {
		fmt.Printf("  %d-ton: %d cards\n", t, byTonnage[t])
	}
}

// analyzeFleet prints the fleet's tonnage and time cube spread, and flags
// the ships that sail on cards alone.
func analyzeFleet() {
	fleet := engine.BuildShipDeck(rand.New(rand.NewSource(1)))

	totalCubes := 0
	unlimited := 0
	minTonnage, maxTonnage := -1, 0

	for _, ship := range fleet {
		totalCubes += ship.TimeCubesInitial
		if ship.Tonnage == engine.Unlimited {
			unlimited++
			continue
		}
		if minTonnage < 0 || ship.Tonnage < minTonnage {
			minTonnage = ship.Tonnage
		}
		if ship.Tonnage > maxTonnage {
			maxTonnage = ship.Tonnage
		}
	}

	fmt.Printf("\n=== Ship Fleet ===\n")
	fmt.Printf("Ships: %d (%d with unlimited tonnage)\n", len(fleet), unlimited)
	if len(fleet) > 0 {
		fmt.Printf("Tonnage range: %d-%d\n", minTonnage, maxTonnage)
		fmt.Printf("Total time cubes: %d (avg %.1f per ship)\n",
			totalCubes, float64(totalCubes)/float64(len(fleet)))
	}
}

func analyzeRules(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var rules AnalysisRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		fmt.Printf("Error parsing YAML: %v\n", err)
		return
	}

	deckSize := len(engine.BuildCargoDeck(rand.New(rand.NewSource(1))))
	fleetSize := len(engine.BuildShipDeck(rand.New(rand.NewSource(1))))

	fmt.Printf("Name: %s\n", rules.Name)
	fmt.Printf("Players: %d-%d\n", rules.MinPlayers, rules.MaxPlayers)
	fmt.Printf("Docks: %d (%d locked), %d seats each\n",
		rules.DockCount, rules.LockedDocks, rules.DockSeatLimit)
	fmt.Printf("Bankroll: %d coins, %d tokens, %d cards in hand\n",
		rules.StartingCoins, rules.StartingTokens, rules.HandSize)

	// How much of the deck the opening deal uses at every table size
	for players := rules.MinPlayers; players <= rules.MaxPlayers; players++ {
		dealt := players*rules.HandSize + players + rules.MarketplaceExtra
		pct := 100 * dealt / deckSize
		fmt.Printf("  %d players: opening deal uses %d of %d cargo cards (%d%%)\n",
			players, dealt, deckSize, pct)
	}

	// Seat pressure at a full table
	openSeats := (rules.DockCount - rules.LockedDocks) * rules.DockSeatLimit
	tokens := rules.MaxPlayers * rules.StartingTokens
	if tokens > openSeats {
		fmt.Printf("⚠️  Tight seats: a full table holds %d tokens against %d open seats\n",
			tokens, openSeats)
	} else {
		fmt.Printf("✅ Seat supply covers a full table (%d seats for %d tokens)\n",
			openSeats, tokens)
	}

	// Fleet depth: every berthed ship that sails is replaced from the deck
	if rules.DockCount > fleetSize {
		fmt.Printf("⚠️  CRITICAL: %d docks cannot all be filled from a fleet of %d ships\n",
			rules.DockCount, fleetSize)
	} else {
		replacements := fleetSize - rules.DockCount
		fmt.Printf("✅ Fleet covers setup with %d replacement ships in the deck\n", replacements)
	}
}
