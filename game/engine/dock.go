package engine

// Payout is one player's share of a departing ship's delivery
type Payout struct {
	PlayerID int `json:"player_id"`
	Amount   int `json:"amount"`
}

// Dock is a berth with a bounded number of investor seats. A player may
// hold more than one seat on the same dock and is paid once per seat when
// the berthed ship departs. Investor seats and the berthed ship are only
// reachable through dock methods so the seat limit cannot be bypassed.
type Dock struct {
	ID           int            `json:"id"`
	Improvements []BuildingCard `json:"improvements"`

	seatLimit int
	locked    bool
	investors []int // player ids, one entry per seat
	ship      *Ship
	manager   *ShipManager
}

// NewDock creates an empty dock. A locked dock accepts no investors and
// pays nothing until unlocked.
func NewDock(id, seatLimit int, locked bool) *Dock {
	return &Dock{
		ID:           id,
		Improvements: []BuildingCard{},
		seatLimit:    seatLimit,
		locked:       locked,
		manager:      NewShipManager(nil),
	}
}

// Locked reports whether the dock is locked
func (d *Dock) Locked() bool {
	return d.locked
}

// Unlock opens the dock for investment
func (d *Dock) Unlock() {
	d.locked = false
}

// SeatLimit returns the total investor seats
func (d *Dock) SeatLimit() int {
	return d.seatLimit
}

// SeatsTaken returns the number of occupied seats
func (d *Dock) SeatsTaken() int {
	return len(d.investors)
}

// SeatsHeld returns how many seats a player holds on this dock
func (d *Dock) SeatsHeld(playerID int) int {
	n := 0
	for _, id := range d.investors {
		if id == playerID {
			n++
		}
	}
	return n
}

// Investors returns the seated player ids, one entry per seat, in seating order
func (d *Dock) Investors() []int {
	out := make([]int, len(d.investors))
	copy(out, d.investors)
	return out
}

// Ship returns the berthed ship, or nil when the berth is empty
func (d *Dock) Ship() *Ship {
	return d.ship
}

// Manager returns the ship manager for the berthed ship. It is unbound
// whenever the berth is empty.
func (d *Dock) Manager() *ShipManager {
	return d.manager
}

// AssignShip berths a ship at an empty dock
func (d *Dock) AssignShip(ship *Ship) error {
	if d.ship != nil {
		return ErrDockOccupied
	}
	d.ship = ship
	d.manager.Bind(ship)
	return nil
}

// AddInvestor seats a player. Token accounting is the caller's concern;
// the dock only enforces its own lock and seat limit.
func (d *Dock) AddInvestor(playerID int) error {
	if d.locked {
		return ErrDockLocked
	}
	if len(d.investors) >= d.seatLimit {
		return ErrDockFull
	}
	d.investors = append(d.investors, playerID)
	return nil
}

// RemoveInvestor vacates one of the player's seats
func (d *Dock) RemoveInvestor(playerID int) error {
	for i, id := range d.investors {
		if id == playerID {
			d.investors = append(d.investors[:i], d.investors[i+1:]...)
			return nil
		}
	}
	return ErrNoInvestors
}

// PayoutInvestors departs the berthed ship and computes each investor's
// share: seats held times the ship's loaded card count. The ship and all
// seats are released; the caller credits the payouts and recycles the ship.
//
// The dock must hold a ship with at least one investor, be unlocked, and
// the ship must be ready to sail. A failed payout changes nothing.
func (d *Dock) PayoutInvestors() (*Ship, []Payout, error) {
	if d.ship == nil {
		return nil, nil, ErrNoShip
	}
	if len(d.investors) == 0 {
		return nil, nil, ErrNoInvestors
	}
	if d.locked {
		return nil, nil, ErrDockLocked
	}
	if !d.ship.IsReadyToSail() {
		return nil, nil, ErrShipNotReady
	}

	perSeat := d.ship.TotalCargoCards()
	seats := make(map[int]int)
	order := []int{}
	for _, id := range d.investors {
		if seats[id] == 0 {
			order = append(order, id)
		}
		seats[id]++
	}
	payouts := make([]Payout, 0, len(order))
	for _, id := range order {
		payouts = append(payouts, Payout{PlayerID: id, Amount: seats[id] * perSeat})
	}

	ship := d.ship
	d.ship = nil
	d.manager.Unbind()
	d.investors = nil
	return ship, payouts, nil
}
