package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
)

// Standing is one row of the score table
type Standing struct {
	PlayerID int `json:"player_id"`
	Coins    int `json:"coins"`
	Rank     int `json:"rank"`
}

// Game is the aggregate root. It owns the players, docks, decks and log,
// and coordinates the operations that touch more than one of them, such
// as moving a token when a seat is taken or crediting banks on a payout.
// Every rule check happens before any mutation so a failed operation
// leaves the whole graph untouched.
//
// Game is not safe for concurrent use; callers serialise access (the
// service layer holds a lock per session).
type Game struct {
	ID    uuid.UUID `json:"id"`
	State GameState `json:"state"`
	Rules *Rules    `json:"rules"`

	Players []*Player `json:"players"`
	Docks   []*Dock   `json:"docks"`

	CargoDeck    []CargoCard    `json:"cargo_deck"`
	CargoDiscard []CargoCard    `json:"cargo_discard"`
	Marketplace  []CargoCard    `json:"marketplace"`
	ShipDeck     []*Ship        `json:"ship_deck"`
	ShipDiscard  []*Ship        `json:"ship_discard"`
	BuildingDeck []BuildingCard `json:"building_deck"`

	Weather Weather     `json:"weather"`
	Log     *MessageLog `json:"-"`

	turns *TurnOrderManager
	rng   *rand.Rand
}

// NewGame creates a game in the Setup state with freshly shuffled decks.
// The player count must fall within the rule set's bounds. Docks are
// created per the rules, with the highest-numbered ones locked.
func NewGame(players []*Player, rules *Rules, rng *rand.Rand) (*Game, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if len(players) < rules.MinPlayers || len(players) > rules.MaxPlayers {
		return nil, fmt.Errorf("%w: got %d, want %d..%d",
			ErrInvalidPlayerCount, len(players), rules.MinPlayers, rules.MaxPlayers)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	docks := make([]*Dock, rules.DockCount)
	for i := range docks {
		locked := i >= rules.DockCount-rules.LockedDocks
		docks[i] = NewDock(i+1, rules.DockSeatLimit, locked)
	}

	takers := make([]TurnTaker, len(players))
	for i, p := range players {
		takers[i] = p
	}

	return &Game{
		ID:           uuid.New(),
		State:        StateSetup,
		Rules:        rules,
		Players:      players,
		Docks:        docks,
		CargoDeck:    BuildCargoDeck(rng),
		ShipDeck:     BuildShipDeck(rng),
		BuildingDeck: BuildBuildingDeck(rng),
		Marketplace:  []CargoCard{},
		Weather:      WeatherCalm,
		Log:          NewMessageLog(rules.MessageLogCapacity),
		turns:        NewTurnOrderManager(takers),
		rng:          rng,
	}, nil
}

// Begin deals opening hands, berths ships at the unlocked docks, fills the
// marketplace and starts play. The starting player is the lowest id, or a
// random one when the rules say so.
func (g *Game) Begin() error {
	if g.State != StateSetup {
		return ErrWrongState
	}
	if err := g.DealShips(); err != nil {
		return err
	}
	for _, p := range g.Players {
		for i := 0; i < p.HandSize && len(g.CargoDeck) > 0; i++ {
			p.Hand = append(p.Hand, g.drawCargoCard())
		}
	}
	g.RefillMarketplace()
	if g.Rules.RandomStartingPlayer {
		order := g.turns.Order()
		g.turns.SetCurrent(order[g.rng.Intn(len(order))])
	}
	g.State = StatePlaying
	g.Log.Add(fmt.Sprintf("Game started with %d players. Player %d goes first.",
		len(g.Players), g.ActivePlayer().ID), MessageInfo)
	return nil
}

// Finish ends the game and returns the final standings
func (g *Game) Finish() ([]Standing, error) {
	if g.State != StatePlaying {
		return nil, ErrWrongState
	}
	g.State = StateOver
	standings := g.Standings()
	g.Log.Add(fmt.Sprintf("Game over. Player %d wins with %d coins.",
		standings[0].PlayerID, standings[0].Coins), MessageInfo)
	return standings, nil
}

// PlayerByID returns the player with the given id
func (g *Game) PlayerByID(id int) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrUnknownPlayer
}

// DockByID returns the dock with the given id
func (g *Game) DockByID(id int) (*Dock, error) {
	for _, d := range g.Docks {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, ErrUnknownDock
}

// Manager returns the ship manager of the dock at index i
func (g *Game) Manager(i int) *ShipManager {
	return g.Docks[i].Manager()
}

// ActivePlayer returns the player whose turn it is
func (g *Game) ActivePlayer() *Player {
	taker := g.turns.Current()
	if taker == nil {
		return nil
	}
	p, _ := g.PlayerByID(taker.PlayerID())
	return p
}

// NextTurn advances to the next player and returns them
func (g *Game) NextTurn() (*Player, error) {
	if g.State != StatePlaying {
		return nil, ErrWrongState
	}
	g.turns.Advance()
	p := g.ActivePlayer()
	g.Log.Add(fmt.Sprintf("It is player %d's turn.", p.ID), MessageInfo)
	return p, nil
}

// TurnOrder returns the player ids in turn sequence
func (g *Game) TurnOrder() []int {
	return g.turns.Order()
}

// Pass credits the active player the pass bonus and advances the turn.
// It returns the player who passed.
func (g *Game) Pass() (*Player, error) {
	if g.State != StatePlaying {
		return nil, ErrWrongState
	}
	p := g.ActivePlayer()
	if g.Rules.PassCoinBonus > 0 {
		if _, err := p.Bank().Credit(g.Rules.PassCoinBonus); err != nil {
			return nil, err
		}
	}
	g.Log.Add(fmt.Sprintf("Player %d passes and collects %d coin(s).",
		p.ID, g.Rules.PassCoinBonus), MessageInfo)
	g.turns.Advance()
	return p, nil
}

// DealShips berths the top ship of the ship deck at every unlocked dock
// with an empty berth. The deck must hold enough ships; nothing is dealt
// otherwise.
func (g *Game) DealShips() error {
	needed := 0
	for _, d := range g.Docks {
		if !d.Locked() && d.Ship() == nil {
			needed++
		}
	}
	if needed > len(g.ShipDeck) {
		return ErrShipDeckEmpty
	}
	for _, d := range g.Docks {
		if d.Locked() || d.Ship() != nil {
			continue
		}
		ship := g.ShipDeck[0]
		g.ShipDeck = g.ShipDeck[1:]
		if err := d.AssignShip(ship); err != nil {
			return err
		}
		g.Log.Add(fmt.Sprintf("Ship %d berths at dock %d.", ship.ID, d.ID), MessageInfo)
	}
	return nil
}

// RefillMarketplace draws cargo until the face-up offer holds player
// count plus the configured extra, recycling the discard pile when the
// deck runs dry. A depleted supply leaves the offer short.
func (g *Game) RefillMarketplace() {
	target := len(g.Players) + g.Rules.MarketplaceExtra
	for len(g.Marketplace) < target {
		if len(g.CargoDeck) == 0 && !g.recycleCargoDiscard() {
			return
		}
		g.Marketplace = append(g.Marketplace, g.drawCargoCard())
	}
}

// DrawCargo moves the top card of the cargo deck into a player's hand,
// recycling the discard pile when the deck runs dry
func (g *Game) DrawCargo(playerID int) (CargoCard, error) {
	if g.State != StatePlaying {
		return CargoCard{}, ErrWrongState
	}
	p, err := g.PlayerByID(playerID)
	if err != nil {
		return CargoCard{}, err
	}
	if len(g.CargoDeck) == 0 && !g.recycleCargoDiscard() {
		return CargoCard{}, ErrCannotAddZeroCards
	}
	card := g.drawCargoCard()
	p.Hand = append(p.Hand, card)
	return card, nil
}

// TakeMarketplaceCard moves a face-up card into a player's hand and
// refills the offer
func (g *Game) TakeMarketplaceCard(playerID int, cardID uuid.UUID) (CargoCard, error) {
	if g.State != StatePlaying {
		return CargoCard{}, ErrWrongState
	}
	p, err := g.PlayerByID(playerID)
	if err != nil {
		return CargoCard{}, err
	}
	for i, c := range g.Marketplace {
		if c.ID == cardID {
			g.Marketplace = append(g.Marketplace[:i], g.Marketplace[i+1:]...)
			p.Hand = append(p.Hand, c)
			g.RefillMarketplace()
			return c, nil
		}
	}
	return CargoCard{}, ErrCardNotInHand
}

// LoadCargo moves the named cards from a player's hand onto one side of
// the ship berthed at a dock. The whole batch loads or nothing does.
func (g *Game) LoadCargo(playerID, dockID int, cardIDs []uuid.UUID, side Side) (*Ship, error) {
	if g.State != StatePlaying {
		return nil, ErrWrongState
	}
	p, err := g.PlayerByID(playerID)
	if err != nil {
		return nil, err
	}
	d, err := g.DockByID(dockID)
	if err != nil {
		return nil, err
	}

	cards := make([]CargoCard, 0, len(cardIDs))
	indices := make([]int, 0, len(cardIDs))
	taken := make(map[int]bool, len(cardIDs))
	for _, id := range cardIDs {
		found := false
		for i, c := range p.Hand {
			// Each hand card satisfies at most one requested id, so a
			// repeated id needs a second physical copy in the hand.
			if c.ID == id && !taken[i] {
				taken[i] = true
				cards = append(cards, c)
				indices = append(indices, i)
				found = true
				break
			}
		}
		if !found {
			return nil, ErrCardNotInHand
		}
	}

	ship, err := d.Manager().AddCargo(cards, side)
	if err != nil {
		return nil, err
	}

	// Remove loaded cards from the hand back-to-front so earlier
	// indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	for _, i := range indices {
		p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	}
	g.Log.Add(fmt.Sprintf("Player %d loads %d card(s) onto ship %d at dock %d.",
		p.ID, len(cards), ship.ID, d.ID), MessageInfo)
	return ship, nil
}

// RemoveTimeCube takes amount time cubes off the ship berthed at a dock
func (g *Game) RemoveTimeCube(dockID, amount int) (*Ship, error) {
	if g.State != StatePlaying {
		return nil, ErrWrongState
	}
	d, err := g.DockByID(dockID)
	if err != nil {
		return nil, err
	}
	ship, err := d.Manager().RemoveTimeCubes(amount)
	if err != nil {
		return nil, err
	}
	g.Log.Add(fmt.Sprintf("Ship %d at dock %d is down to %d time cube(s).",
		ship.ID, d.ID, ship.TimeCubesRemaining), MessageInfo)
	return ship, nil
}

// Invest spends one of the player's tokens on an investor seat at a dock.
// The token moves only if the seat is granted.
func (g *Game) Invest(playerID, dockID int) error {
	if g.State != StatePlaying {
		return ErrWrongState
	}
	p, err := g.PlayerByID(playerID)
	if err != nil {
		return err
	}
	d, err := g.DockByID(dockID)
	if err != nil {
		return err
	}
	// Report the dock's refusal ahead of the player's empty token pool
	if d.Locked() {
		return ErrDockLocked
	}
	if d.SeatsTaken() >= d.SeatLimit() {
		return ErrDockFull
	}
	if p.Tokens <= 0 {
		return ErrNoTokensRemaining
	}
	if err := d.AddInvestor(p.ID); err != nil {
		return err
	}
	p.Tokens--
	g.Log.Add(fmt.Sprintf("Player %d invests in dock %d (%d/%d seats taken).",
		p.ID, d.ID, d.SeatsTaken(), d.SeatLimit()), MessageInfo)
	return nil
}

// Divest vacates one of the player's seats at a dock and refunds a token
func (g *Game) Divest(playerID, dockID int) error {
	if g.State != StatePlaying {
		return ErrWrongState
	}
	p, err := g.PlayerByID(playerID)
	if err != nil {
		return err
	}
	d, err := g.DockByID(dockID)
	if err != nil {
		return err
	}
	if err := d.RemoveInvestor(p.ID); err != nil {
		return err
	}
	p.Tokens++
	g.Log.Add(fmt.Sprintf("Player %d divests from dock %d.", p.ID, d.ID), MessageInfo)
	return nil
}

// PayoutDock departs the ship at a dock, credits every investor's bank
// and moves the ship to the discard pile. Seats are cleared and the
// spent tokens stay spent.
func (g *Game) PayoutDock(dockID int) ([]Payout, error) {
	if g.State != StatePlaying {
		return nil, ErrWrongState
	}
	d, err := g.DockByID(dockID)
	if err != nil {
		return nil, err
	}
	ship, payouts, err := d.PayoutInvestors()
	if err != nil {
		return nil, err
	}
	for _, po := range payouts {
		p, err := g.PlayerByID(po.PlayerID)
		if err != nil {
			return nil, err
		}
		if _, err := p.Bank().Credit(po.Amount); err != nil {
			return nil, err
		}
		g.Log.Add(fmt.Sprintf("Player %d is paid %d coin(s) for ship %d.",
			po.PlayerID, po.Amount, ship.ID), MessageInfo)
	}
	g.ShipDiscard = append(g.ShipDiscard, ship)
	g.Log.Add(fmt.Sprintf("Ship %d departs dock %d.", ship.ID, d.ID), MessageInfo)
	return payouts, nil
}

// SellCargo sells every card of one colour in the player's hand for its
// combined tonnage in coins. Clone cards sell for nothing but are still
// discarded.
func (g *Game) SellCargo(playerID int, colour Colour) (int, error) {
	if g.State != StatePlaying {
		return 0, ErrWrongState
	}
	p, err := g.PlayerByID(playerID)
	if err != nil {
		return 0, err
	}
	kept := p.Hand[:0:0]
	sold := []CargoCard{}
	value := 0
	for _, c := range p.Hand {
		if c.Colour == colour {
			sold = append(sold, c)
			value += c.EffectiveTonnage()
		} else {
			kept = append(kept, c)
		}
	}
	if len(sold) == 0 {
		return 0, ErrNoCardsOfColour
	}
	if value > 0 {
		if _, err := p.Bank().Credit(value); err != nil {
			return 0, err
		}
	}
	p.Hand = kept
	g.CargoDiscard = append(g.CargoDiscard, sold...)
	g.Log.Add(fmt.Sprintf("Player %d sells %d %s card(s) for %d coin(s).",
		p.ID, len(sold), colour, value), MessageInfo)
	return value, nil
}

// RecordDelivery credits a player with deliveries to a destination and
// returns the new clamped count
func (g *Game) RecordDelivery(playerID int, dest Destination, quantity int) (int, error) {
	if g.State != StatePlaying {
		return 0, ErrWrongState
	}
	p, err := g.PlayerByID(playerID)
	if err != nil {
		return 0, err
	}
	n := p.RecordDelivery(dest, quantity)
	g.Log.Add(fmt.Sprintf("Player %d has delivered %d/%d to %s.",
		p.ID, n, p.MaxDeliveries(), dest), MessageInfo)
	return n, nil
}

// SetWeather moves the weather track, clamped to its ends
func (g *Game) SetWeather(w Weather) Weather {
	if w < WeatherStorms {
		w = WeatherStorms
	}
	if w > WeatherPerfect {
		w = WeatherPerfect
	}
	g.Weather = w
	return g.Weather
}

// Standings returns the score table sorted by coins descending. Players
// on equal coins share a rank; the next rank skips past them.
func (g *Game) Standings() []Standing {
	standings := make([]Standing, len(g.Players))
	for i, p := range g.Players {
		standings[i] = Standing{PlayerID: p.ID, Coins: p.Coins()}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Coins != standings[j].Coins {
			return standings[i].Coins > standings[j].Coins
		}
		return standings[i].PlayerID < standings[j].PlayerID
	})
	for i := range standings {
		if i > 0 && standings[i].Coins == standings[i-1].Coins {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}

// Winners returns the ids of every player sharing the top rank
func (g *Game) Winners() []int {
	standings := g.Standings()
	var ids []int
	for _, s := range standings {
		if s.Rank != 1 {
			break
		}
		ids = append(ids, s.PlayerID)
	}
	return ids
}

func (g *Game) drawCargoCard() CargoCard {
	card := g.CargoDeck[0]
	g.CargoDeck = g.CargoDeck[1:]
	return card
}

// recycleCargoDiscard shuffles the discard pile back into the deck.
// It reports whether any cards were recovered.
func (g *Game) recycleCargoDiscard() bool {
	if len(g.CargoDiscard) == 0 {
		return false
	}
	g.CargoDeck = append(g.CargoDeck, g.CargoDiscard...)
	g.CargoDiscard = nil
	g.rng.Shuffle(len(g.CargoDeck), func(i, j int) {
		g.CargoDeck[i], g.CargoDeck[j] = g.CargoDeck[j], g.CargoDeck[i]
	})
	return true
}
