// Command validate provides a small CLI that validates rule set YAML
// files in the ../rules directory. It checks:
//   - YAML structure and required fields
//   - The engine's own rule consistency constraints
//   - That a full table can be dealt from the fixed cargo deck
//   - That every dock can hold a berthed ship from the fixed fleet
//   - Seat supply versus investor token supply
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hey-amo/ShippingInvestors/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateRules loads and validates a single rule set YAML file.
// It performs structural checks, the engine's own consistency checks, and
// deck/fleet feasibility analysis.
func validateRules(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var rules engine.Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid YAML: %v", err))
		return result
	}

	if err := rules.Validate(); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	rng := rand.New(rand.NewSource(1))
	cargoDeck := len(engine.BuildCargoDeck(rng))
	fleet := len(engine.BuildShipDeck(rng))

	// A full table must be dealable: every hand plus the face-up
	// marketplace comes out of one cargo deck
	dealt := rules.MaxPlayers*rules.HandSize + rules.MaxPlayers + rules.MarketplaceExtra
	if dealt > cargoDeck {
		result.Valid = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("Opening deal needs %d cargo cards for %d players but the deck holds %d",
				dealt, rules.MaxPlayers, cargoDeck))
	}

	// Every dock gets a ship at setup
	if rules.DockCount > fleet {
		result.Valid = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("dock_count (%d) exceeds the fleet size (%d)", rules.DockCount, fleet))
	}

	// Add informational data
	if result.Valid {
		openSeats := (rules.DockCount - rules.LockedDocks) * rules.DockSeatLimit
		tokens := rules.MaxPlayers * rules.StartingTokens
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", rules.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Players: %d-%d", rules.MinPlayers, rules.MaxPlayers))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Docks: %d (%d locked), %d seats each", rules.DockCount, rules.LockedDocks, rules.DockSeatLimit))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Opening deal: %d of %d cargo cards", dealt, cargoDeck))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Seats: %d open for up to %d tokens", openSeats, tokens))
		if tokens > openSeats {
			result.Errors = append(result.Errors, fmt.Sprintf("  note: a full table can hold more tokens (%d) than open seats (%d)", tokens, openSeats))
		}
	}

	return result
}

// main scans ../rules for *.yaml files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	rulesDir := "../rules"
	if len(os.Args) > 1 {
		rulesDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(rulesDir, "*.yaml"))
	if err != nil {
		fmt.Printf("Error finding rule files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateRules(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All rule sets are valid!")
	} else {
		fmt.Println("❌ Some rule sets have errors")
		os.Exit(1)
	}
}
