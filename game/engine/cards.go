package engine

import (
	"math/rand"

	"github.com/google/uuid"
)

// cargoComposition is the fixed cargo deck: 12 cards per colour, two of
// which are clone cards whose weight mirrors another card.
//
//	| Colour             | Weight Distribution              |
//	|--------------------|----------------------------------|
//	| Red (Coal)         | 4x[1t], 4x[2t], 2x[3t], 2x[=]    |
//	| Blue (Iron)        | 3x[2t], 4x[3t], 3x[5t], 2x[=]    |
//	| Yellow (Grain)     | 2x[1t], 6x[2t], 2x[3t], 2x[=]    |
//	| Grey (Machinery)   | 2x[2t], 3x[3t], 3x[4t], 2x[6t], 2x[=] |
//	| Green (Timber)     | 5x[1t], 3x[2t], 2x[4t], 2x[=]    |
//	| White (Wool)       | 6x[1t], 3x[2t], 1x[3t], 2x[=]    |
var cargoComposition = []struct {
	colour  Colour
	tonnage int
	count   int
}{
	{Red, 1, 4}, {Red, 2, 4}, {Red, 3, 2}, {Red, CloneTonnage, 2},
	{Blue, 2, 3}, {Blue, 3, 4}, {Blue, 5, 3}, {Blue, CloneTonnage, 2},
	{Yellow, 1, 2}, {Yellow, 2, 6}, {Yellow, 3, 2}, {Yellow, CloneTonnage, 2},
	{Grey, 2, 2}, {Grey, 3, 3}, {Grey, 4, 3}, {Grey, 6, 2}, {Grey, CloneTonnage, 2},
	{Green, 1, 5}, {Green, 2, 3}, {Green, 4, 2}, {Green, CloneTonnage, 2},
	{White, 1, 6}, {White, 2, 3}, {White, 3, 1}, {White, CloneTonnage, 2},
}

// buildingCatalog is the fixed set of dock improvements, one of each
var buildingCatalog = []BuildingCard{
	{Name: "Crane", Description: "Move 1 cargo card to another ship.", Cost: 5, Effect: "Move 1 cargo", ImageName: "crane", Passive: false},
	{Name: "Office", Description: "Gain 2 coins when delivering.", Cost: 6, Effect: "Payout Bonus +2", ImageName: "office", Passive: true},
	{Name: "Reinforced Hull", Description: "Increase tonnage capacity by 2.", Cost: 8, Effect: "Tonnage +2", ImageName: "reinforced_hull", Passive: true},
	{Name: "Warehouse", Description: "Increase card capacity by 2.", Cost: 7, Effect: "Card Capacity +2", ImageName: "warehouse", Passive: true},
	{Name: "Lighthouse", Description: "Ignore bad weather effects once per game.", Cost: 10, Effect: "Ignore Weather", ImageName: "weather_radar", Passive: false},
	{Name: "Customs House", Description: "Add 3 time cubes to 1 ship.", Cost: 7, Effect: "Add Time Cubes +3", ImageName: "customs_house", Passive: false},
	{Name: "Luxury Cabins", Description: "Gain 1 coin when passing.", Cost: 4, Effect: "Pass Bonus +1", ImageName: "luxury_cabins", Passive: true},
	{Name: "Ropery", Description: "May load 1 cargo card for free.", Cost: 9, Effect: "Load 1 cargo free", ImageName: "ropery", Passive: false},
	{Name: "Sail Loft", Description: "Increase tolerance by 1.", Cost: 6, Effect: "Tolerance +1", ImageName: "sail_loft", Passive: true},
	{Name: "Extra Crew", Description: "Add 1 time cube to this ship.", Cost: 5, Effect: "Add Time Cubes +1", ImageName: "extra_crew", Passive: true},
}

// BuildCargoDeck produces the full 72-card cargo deck in a uniformly random
// order. Given the same rng state the same permutation is produced.
func BuildCargoDeck(rng *rand.Rand) []CargoCard {
	var deck []CargoCard
	for _, row := range cargoComposition {
		for i := 0; i < row.count; i++ {
			deck = append(deck, CargoCard{
				ID:      uuid.New(),
				Colour:  row.colour,
				Tonnage: row.tonnage,
				Special: row.tonnage == CloneTonnage,
			})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// BuildBuildingDeck produces the building deck, one card per improvement,
// in a uniformly random order
func BuildBuildingDeck(rng *rand.Rand) []BuildingCard {
	deck := make([]BuildingCard, len(buildingCatalog))
	copy(deck, buildingCatalog)
	for i := range deck {
		deck[i].ID = uuid.New()
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}
