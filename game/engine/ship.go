package engine

import "math/rand"

// Ship is a capacity-bounded cargo container with two loading sides and a
// time-cube countdown. A tonnage or card capacity of Unlimited never
// constrains loading and never triggers sail-readiness by itself.
//
// Ships carry no mutation methods; all mutation goes through a ShipManager
// so the loading rules live in exactly one place.
type Ship struct {
	ID                 int                  `json:"id"`
	Tonnage            int                  `json:"tonnage"`
	CardCapacity       int                  `json:"card_capacity"`
	TimeCubesInitial   int                  `json:"time_cubes_initial"`
	TimeCubesRemaining int                  `json:"time_cubes_remaining"`
	Cargo              map[Side][]CargoCard `json:"cargo"`
	Destinations       []Destination        `json:"destinations"`
	BalanceIndicator   int                  `json:"balance_indicator"` // -4..+4
	Tolerance          int                  `json:"tolerance"`
}

// CurrentTonnage is the summed weight of all loaded cargo. Clone cards
// contribute 0 until their resolution rule is specified.
func (s *Ship) CurrentTonnage() int {
	total := 0
	for _, cards := range s.Cargo {
		for _, c := range cards {
			total += c.EffectiveTonnage()
		}
	}
	return total
}

// TotalCargoCards is the card count across both sides
func (s *Ship) TotalCargoCards() int {
	total := 0
	for _, cards := range s.Cargo {
		total += len(cards)
	}
	return total
}

// TonnageRemaining is the unused tonnage capacity, never negative.
// For an unlimited ship it reports Unlimited.
func (s *Ship) TonnageRemaining() int {
	if s.Tonnage == Unlimited {
		return Unlimited
	}
	if r := s.Tonnage - s.CurrentTonnage(); r > 0 {
		return r
	}
	return 0
}

// CardsRemaining is the unused card capacity, never negative.
// For an unlimited ship it reports Unlimited.
func (s *Ship) CardsRemaining() int {
	if s.CardCapacity == Unlimited {
		return Unlimited
	}
	if r := s.CardCapacity - s.TotalCargoCards(); r > 0 {
		return r
	}
	return 0
}

// IsReadyToSail reports whether the ship may depart. A ship is ready when
// its bounded tonnage is met exactly, its time cubes are exhausted, or its
// bounded card capacity is reached. Unlimited capacities are ignored.
func (s *Ship) IsReadyToSail() bool {
	if s.Tonnage != Unlimited && s.CurrentTonnage() == s.Tonnage {
		return true
	}
	if s.TimeCubesRemaining == 0 {
		return true
	}
	if s.CardCapacity != Unlimited && s.TotalCargoCards() >= s.CardCapacity {
		return true
	}
	return false
}

// shipCatalog is the fixed fleet of 18 ships. Unlimited (-1) marks a ship
// that ignores tonnage or card capacity.
var shipCatalog = []struct {
	id           int
	tonnage      int
	cardCapacity int
	timeCubes    int
	destinations []Destination
	tolerance    int
}{
	{1, 6, 3, 4, []Destination{Malmo, Norway}, 1},
	{2, 6, 4, 3, []Destination{Copenhagen, Hamburg}, 2},
	{3, 6, 5, 4, []Destination{London, Malmo}, 1},
	{4, Unlimited, 3, 3, []Destination{Norway, Copenhagen}, 3},
	{5, 8, Unlimited, 4, []Destination{Hamburg, London}, 3},
	{6, 8, 4, 4, []Destination{Malmo, Hamburg}, 2},
	{7, 8, 6, 5, []Destination{Copenhagen, Norway}, 2},
	{8, Unlimited, 4, 3, []Destination{London, Copenhagen}, 2},
	{9, 10, 7, 5, []Destination{Malmo, London}, 1},
	{10, 10, 8, 5, []Destination{Norway, Hamburg}, 2},
	{11, 10, Unlimited, 4, []Destination{Copenhagen, Malmo}, 2},
	{12, 12, 5, 5, []Destination{Hamburg, Norway}, 1},
	{13, 12, 6, 5, []Destination{London, Norway}, 2},
	{14, 12, Unlimited, 5, []Destination{Malmo, Copenhagen}, 3},
	{15, 12, Unlimited, 5, []Destination{Hamburg, Malmo}, 1},
	{16, 15, 6, 5, []Destination{Norway, London}, 2},
	{17, 15, 8, 6, []Destination{Copenhagen, Hamburg}, 2},
	{18, Unlimited, 8, 6, []Destination{London, Hamburg}, 3},
}

// BuildShipDeck produces the fleet with empty holds and full time cubes in
// a uniformly random order. Given the same rng state the same permutation
// is produced.
func BuildShipDeck(rng *rand.Rand) []*Ship {
	deck := make([]*Ship, 0, len(shipCatalog))
	for _, row := range shipCatalog {
		dests := make([]Destination, len(row.destinations))
		copy(dests, row.destinations)
		deck = append(deck, &Ship{
			ID:                 row.id,
			Tonnage:            row.tonnage,
			CardCapacity:       row.cardCapacity,
			TimeCubesInitial:   row.timeCubes,
			TimeCubesRemaining: row.timeCubes,
			Cargo:              map[Side][]CargoCard{SideLeft: {}, SideRight: {}},
			Destinations:       dests,
			BalanceIndicator:   0,
			Tolerance:          row.tolerance,
		})
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}
