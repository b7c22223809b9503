package engine

// Player is a participant's identity and resources. Coins live in the
// player's Bank and only move through it; delivery counters are kept
// internally so writes stay clamped to the configured maximum.
type Player struct {
	ID       int         `json:"id"`
	Hand     []CargoCard `json:"hand"`
	HandSize int         `json:"hand_size"`
	Tokens   int         `json:"tokens"`
	Avatar   Avatar      `json:"avatar"`
	IsAI     bool        `json:"is_ai"`

	bank          Bank
	deliveries    map[Destination]int
	maxDeliveries int
}

// NewPlayer creates a player with the rule set's starting resources
func NewPlayer(id int, rules *Rules) *Player {
	return NewPlayerWith(id, rules.StartingCoins, rules.StartingTokens, rules.HandSize,
		Avatar(id%5), false, rules.MaxDeliveriesPerDestination)
}

// NewPlayerWith creates a player with explicit resources. The deliveries
// map always holds an entry for every destination, starting at zero.
func NewPlayerWith(id, coins, tokens, handSize int, avatar Avatar, isAI bool, maxDeliveries int) *Player {
	deliveries := make(map[Destination]int, len(Destinations()))
	for _, d := range Destinations() {
		deliveries[d] = 0
	}
	return &Player{
		ID:            id,
		Hand:          []CargoCard{},
		HandSize:      handSize,
		Tokens:        tokens,
		Avatar:        avatar,
		IsAI:          isAI,
		bank:          NewBank(coins),
		deliveries:    deliveries,
		maxDeliveries: maxDeliveries,
	}
}

// PlayerID satisfies TurnTaker
func (p *Player) PlayerID() int {
	return p.ID
}

// Coins returns the player's current balance
func (p *Player) Coins() int {
	return p.bank.Balance()
}

// Bank exposes the player's ledger for guarded coin movement
func (p *Player) Bank() *Bank {
	return &p.bank
}

// DeliveredCount returns the recorded deliveries for a destination
func (p *Player) DeliveredCount(d Destination) int {
	return p.deliveries[d]
}

// RecordDelivery adds quantity deliveries for a destination, clamped at the
// per-destination maximum and never decreasing, and returns the new count.
func (p *Player) RecordDelivery(d Destination, quantity int) int {
	if quantity < 0 {
		quantity = 0
	}
	n := p.deliveries[d] + quantity
	if n > p.maxDeliveries {
		n = p.maxDeliveries
	}
	p.deliveries[d] = n
	return n
}

// HasCompleted reports whether the destination's counter is at its maximum
func (p *Player) HasCompleted(d Destination) bool {
	return p.deliveries[d] >= p.maxDeliveries
}

// ResetDeliveries zeroes every destination counter. Intended for use
// between rounds, not mid-game.
func (p *Player) ResetDeliveries() {
	for d := range p.deliveries {
		p.deliveries[d] = 0
	}
}

// Deliveries returns a copy of the delivery counters
func (p *Player) Deliveries() map[Destination]int {
	out := make(map[Destination]int, len(p.deliveries))
	for d, n := range p.deliveries {
		out[d] = n
	}
	return out
}

// MaxDeliveries returns the per-destination delivery cap
func (p *Player) MaxDeliveries() int {
	return p.maxDeliveries
}
