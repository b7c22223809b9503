package engine

import (
	"math/rand"

	"github.com/google/uuid"
)

// GameSnapshot is the serializable form of a Game. The live object graph
// has a ship referenced by both a dock and its manager, and players
// referenced from dock seats; the snapshot flattens those into id
// references so it round-trips through JSON without duplication.
type GameSnapshot struct {
	ID      uuid.UUID `json:"id"`
	State   GameState `json:"state"`
	Rules   *Rules    `json:"rules"`
	Weather Weather   `json:"weather"`

	Players []PlayerSnapshot `json:"players"`
	Docks   []DockSnapshot   `json:"docks"`

	// Ships holds every ship in the game in no particular order;
	// docks and piles refer to them by ship id.
	Ships          []*Ship `json:"ships"`
	ShipDeckIDs    []int   `json:"ship_deck_ids"`
	ShipDiscardIDs []int   `json:"ship_discard_ids"`

	CargoDeck    []CargoCard    `json:"cargo_deck"`
	CargoDiscard []CargoCard    `json:"cargo_discard"`
	Marketplace  []CargoCard    `json:"marketplace"`
	BuildingDeck []BuildingCard `json:"building_deck"`

	Messages []Message `json:"messages"`

	TurnOrder     []int `json:"turn_order"`
	CurrentPlayer int   `json:"current_player"`
}

// PlayerSnapshot is the serializable form of a Player
type PlayerSnapshot struct {
	ID         int                 `json:"id"`
	Coins      int                 `json:"coins"`
	Hand       []CargoCard         `json:"hand"`
	HandSize   int                 `json:"hand_size"`
	Tokens     int                 `json:"tokens"`
	Avatar     Avatar              `json:"avatar"`
	IsAI       bool                `json:"is_ai"`
	Deliveries map[Destination]int `json:"deliveries"`
}

// DockSnapshot is the serializable form of a Dock. The berthed ship and
// the seated players are stored as ids.
type DockSnapshot struct {
	ID           int            `json:"id"`
	SeatLimit    int            `json:"seat_limit"`
	Locked       bool           `json:"locked"`
	Improvements []BuildingCard `json:"improvements"`
	InvestorIDs  []int          `json:"investor_ids"`
	ShipID       *int           `json:"ship_id"`
}

// Snapshot captures the full game state as a plain acyclic value
func (g *Game) Snapshot() *GameSnapshot {
	snap := &GameSnapshot{
		ID:           g.ID,
		State:        g.State,
		Rules:        g.Rules,
		Weather:      g.Weather,
		CargoDeck:    append([]CargoCard{}, g.CargoDeck...),
		CargoDiscard: append([]CargoCard{}, g.CargoDiscard...),
		Marketplace:  append([]CargoCard{}, g.Marketplace...),
		BuildingDeck: append([]BuildingCard{}, g.BuildingDeck...),
		Messages:     g.Log.Newest(),
		TurnOrder:    g.turns.Order(),
	}
	if p := g.ActivePlayer(); p != nil {
		snap.CurrentPlayer = p.ID
	}

	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID:         p.ID,
			Coins:      p.Coins(),
			Hand:       append([]CargoCard{}, p.Hand...),
			HandSize:   p.HandSize,
			Tokens:     p.Tokens,
			Avatar:     p.Avatar,
			IsAI:       p.IsAI,
			Deliveries: p.Deliveries(),
		})
	}

	for _, d := range g.Docks {
		ds := DockSnapshot{
			ID:           d.ID,
			SeatLimit:    d.SeatLimit(),
			Locked:       d.Locked(),
			Improvements: append([]BuildingCard{}, d.Improvements...),
			InvestorIDs:  d.Investors(),
		}
		if ship := d.Ship(); ship != nil {
			id := ship.ID
			ds.ShipID = &id
			snap.Ships = append(snap.Ships, ship)
		}
		snap.Docks = append(snap.Docks, ds)
	}

	for _, s := range g.ShipDeck {
		snap.Ships = append(snap.Ships, s)
		snap.ShipDeckIDs = append(snap.ShipDeckIDs, s.ID)
	}
	for _, s := range g.ShipDiscard {
		snap.Ships = append(snap.Ships, s)
		snap.ShipDiscardIDs = append(snap.ShipDiscardIDs, s.ID)
	}
	return snap
}

// RestoreGame rebuilds a live Game from a snapshot. Ship references in
// docks and piles are resolved through the flat ship list; an id that
// resolves to nothing fails with ErrNoShip.
func RestoreGame(snap *GameSnapshot, rng *rand.Rand) (*Game, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	rules := snap.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	shipsByID := make(map[int]*Ship, len(snap.Ships))
	for _, s := range snap.Ships {
		if s.Cargo == nil {
			s.Cargo = map[Side][]CargoCard{SideLeft: {}, SideRight: {}}
		}
		shipsByID[s.ID] = s
	}

	g := &Game{
		ID:           snap.ID,
		State:        snap.State,
		Rules:        rules,
		Weather:      snap.Weather,
		CargoDeck:    append([]CargoCard{}, snap.CargoDeck...),
		CargoDiscard: append([]CargoCard{}, snap.CargoDiscard...),
		Marketplace:  append([]CargoCard{}, snap.Marketplace...),
		BuildingDeck: append([]BuildingCard{}, snap.BuildingDeck...),
		Log:          NewMessageLog(rules.MessageLogCapacity),
		rng:          rng,
	}

	for _, ps := range snap.Players {
		p := NewPlayerWith(ps.ID, ps.Coins, ps.Tokens, ps.HandSize,
			ps.Avatar, ps.IsAI, rules.MaxDeliveriesPerDestination)
		p.Hand = append([]CargoCard{}, ps.Hand...)
		for d, n := range ps.Deliveries {
			p.RecordDelivery(d, n)
		}
		g.Players = append(g.Players, p)
	}

	for _, ds := range snap.Docks {
		d := NewDock(ds.ID, ds.SeatLimit, ds.Locked)
		d.Improvements = append([]BuildingCard{}, ds.Improvements...)
		d.investors = append([]int{}, ds.InvestorIDs...)
		if ds.ShipID != nil {
			ship, ok := shipsByID[*ds.ShipID]
			if !ok {
				return nil, ErrNoShip
			}
			d.ship = ship
			d.manager.Bind(ship)
		}
		g.Docks = append(g.Docks, d)
	}

	for _, id := range snap.ShipDeckIDs {
		ship, ok := shipsByID[id]
		if !ok {
			return nil, ErrNoShip
		}
		g.ShipDeck = append(g.ShipDeck, ship)
	}
	for _, id := range snap.ShipDiscardIDs {
		ship, ok := shipsByID[id]
		if !ok {
			return nil, ErrNoShip
		}
		g.ShipDiscard = append(g.ShipDiscard, ship)
	}

	// Replay the stored log oldest-first so ordering survives the trip
	for i := len(snap.Messages) - 1; i >= 0; i-- {
		g.Log.AddMessage(snap.Messages[i])
	}

	takers := make([]TurnTaker, len(g.Players))
	for i, p := range g.Players {
		takers[i] = p
	}
	g.turns = NewTurnOrderManager(takers)
	if snap.CurrentPlayer != 0 {
		if err := g.turns.SetCurrent(snap.CurrentPlayer); err != nil {
			return nil, err
		}
	}
	return g, nil
}
