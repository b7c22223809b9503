package engine

// ShipManager is the sole authority for mutating a Ship. It holds a
// borrowed reference to a ship owned elsewhere (a dock or the ship deck);
// when that ship departs the manager is unbound and every further call
// fails with ErrNoShip rather than operating on a stale ship.
type ShipManager struct {
	ship *Ship
}

// NewShipManager creates a manager bound to the given ship, which may be
// nil for an unbound manager.
func NewShipManager(ship *Ship) *ShipManager {
	return &ShipManager{ship: ship}
}

// Bind points the manager at a ship
func (m *ShipManager) Bind(ship *Ship) {
	m.ship = ship
}

// Unbind releases the managed ship
func (m *ShipManager) Unbind() {
	m.ship = nil
}

// Bound reports whether the manager has a ship
func (m *ShipManager) Bound() bool {
	return m.ship != nil
}

// Ship returns the managed ship, or nil if unbound
func (m *ShipManager) Ship() *Ship {
	return m.ship
}

// RemoveTimeCubes removes amount time cubes from the managed ship, floored
// at zero, and returns the updated ship.
func (m *ShipManager) RemoveTimeCubes(amount int) (*Ship, error) {
	if m.ship == nil {
		return nil, ErrNoShip
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if m.ship.TimeCubesRemaining == 0 {
		return nil, ErrShipAtZeroTime
	}
	m.ship.TimeCubesRemaining -= amount
	if m.ship.TimeCubesRemaining < 0 {
		m.ship.TimeCubesRemaining = 0
	}
	return m.ship, nil
}

// AddCargo appends cards to one side of the managed ship, preserving their
// order. All checks happen before any mutation: a rejected batch leaves the
// ship untouched.
//
// The batch must be non-empty and single-coloured, and after the add the
// ship must not exceed a bounded card capacity or bounded tonnage. Clone
// cards contribute 0 tonnage to the check.
func (m *ShipManager) AddCargo(cards []CargoCard, side Side) (*Ship, error) {
	if m.ship == nil {
		return nil, ErrNoShip
	}
	if len(cards) == 0 {
		return nil, ErrCannotAddZeroCards
	}

	first := cards[0].Colour
	for _, c := range cards[1:] {
		if c.Colour != first {
			return nil, ErrMixedColours
		}
	}

	if m.ship.CardCapacity != Unlimited {
		if m.ship.TotalCargoCards()+len(cards) > m.ship.CardCapacity {
			return nil, &CapacityExceededError{Max: m.ship.CardCapacity}
		}
	}

	if m.ship.Tonnage != Unlimited {
		added := 0
		for _, c := range cards {
			added += c.EffectiveTonnage()
		}
		if m.ship.CurrentTonnage()+added > m.ship.Tonnage {
			return nil, &TonnageExceededError{Max: m.ship.Tonnage}
		}
	}

	m.ship.Cargo[side] = append(m.ship.Cargo[side], cards...)
	return m.ship, nil
}
