package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func newTestGame(t *testing.T, playerCount int) *Game {
	t.Helper()
	rules := DefaultRules()
	players := make([]*Player, playerCount)
	for i := range players {
		players[i] = NewPlayer(i+1, rules)
	}
	g, err := NewGame(players, rules, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

func TestNewGame_PlayerCountBounds(t *testing.T) {
	rules := DefaultRules()
	for _, count := range []int{0, 1, 6} {
		players := make([]*Player, count)
		for i := range players {
			players[i] = NewPlayer(i+1, rules)
		}
		if _, err := NewGame(players, rules, nil); !errors.Is(err, ErrInvalidPlayerCount) {
			t.Errorf("Expected ErrInvalidPlayerCount for %d players, got %v", count, err)
		}
	}
}

func TestNewGame_DockLayout(t *testing.T) {
	g := newTestGame(t, 3)
	if len(g.Docks) != 4 {
		t.Fatalf("Expected 4 docks, got %d", len(g.Docks))
	}
	for i, d := range g.Docks[:3] {
		if d.Locked() {
			t.Errorf("Expected dock %d unlocked", i+1)
		}
	}
	if !g.Docks[3].Locked() {
		t.Error("Expected the last dock locked")
	}
	if g.State != StateSetup {
		t.Errorf("Expected Setup state, got %v", g.State)
	}
}

func TestGame_Begin(t *testing.T) {
	g := newTestGame(t, 3)
	if err := g.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if g.State != StatePlaying {
		t.Errorf("Expected Playing state, got %v", g.State)
	}
	for _, p := range g.Players {
		if len(p.Hand) != g.Rules.HandSize {
			t.Errorf("Expected player %d dealt %d cards, got %d", p.ID, g.Rules.HandSize, len(p.Hand))
		}
	}
	for _, d := range g.Docks {
		if d.Locked() {
			if d.Ship() != nil {
				t.Errorf("Expected locked dock %d without a ship", d.ID)
			}
			continue
		}
		if d.Ship() == nil {
			t.Errorf("Expected unlocked dock %d to have a berthed ship", d.ID)
		}
	}
	if got := len(g.Marketplace); got != 4 {
		t.Errorf("Expected marketplace of playerCount+1=4 cards, got %d", got)
	}
	if g.ActivePlayer().ID != 1 {
		t.Errorf("Expected player 1 to start, got %d", g.ActivePlayer().ID)
	}

	if err := g.Begin(); !errors.Is(err, ErrWrongState) {
		t.Errorf("Expected ErrWrongState on a second Begin, got %v", err)
	}
}

func TestGame_InvestMovesTokenWithSeat(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	p := g.Players[0]
	tokens := p.Tokens

	if err := g.Invest(p.ID, 1); err != nil {
		t.Fatalf("Invest failed: %v", err)
	}
	if p.Tokens != tokens-1 {
		t.Errorf("Expected token spent, got %d of %d", p.Tokens, tokens)
	}
	if got := g.Docks[0].SeatsHeld(p.ID); got != 1 {
		t.Errorf("Expected 1 seat held, got %d", got)
	}
}

func TestGame_InvestLockedDockKeepsToken(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	p := g.Players[0]
	tokens := p.Tokens

	if err := g.Invest(p.ID, 4); !errors.Is(err, ErrDockLocked) {
		t.Fatalf("Expected ErrDockLocked, got %v", err)
	}
	if p.Tokens != tokens {
		t.Errorf("Expected token kept on rejection, got %d of %d", p.Tokens, tokens)
	}
}

func TestGame_InvestWithoutTokens(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	p := g.Players[0]
	p.Tokens = 0
	if err := g.Invest(p.ID, 1); !errors.Is(err, ErrNoTokensRemaining) {
		t.Errorf("Expected ErrNoTokensRemaining, got %v", err)
	}
	if g.Docks[0].SeatsHeld(p.ID) != 0 {
		t.Error("Expected no seat granted without a token")
	}
}

func TestGame_InvestFullDockBeatsEmptyTokenPool(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	rich, broke := g.Players[1], g.Players[0]
	for i := 0; i < g.Rules.DockSeatLimit; i++ {
		if err := g.Invest(rich.ID, 1); err != nil {
			t.Fatalf("Invest %d failed: %v", i+1, err)
		}
	}
	broke.Tokens = 0

	if err := g.Invest(broke.ID, 1); !errors.Is(err, ErrDockFull) {
		t.Errorf("Expected ErrDockFull on a full dock, got %v", err)
	}
}

func TestGame_DivestRefundsToken(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	p := g.Players[0]
	g.Invest(p.ID, 1)
	tokens := p.Tokens

	if err := g.Divest(p.ID, 1); err != nil {
		t.Fatalf("Divest failed: %v", err)
	}
	if p.Tokens != tokens+1 {
		t.Errorf("Expected token refunded, got %d", p.Tokens)
	}
	if err := g.Divest(p.ID, 1); !errors.Is(err, ErrNoInvestors) {
		t.Errorf("Expected ErrNoInvestors on a second divest, got %v", err)
	}
	if p.Tokens != tokens+1 {
		t.Errorf("Expected no token minted by a refused divest, got %d", p.Tokens)
	}
}

func TestGame_LoadCargoMovesCardsFromHand(t *testing.T) {
	g := newTestGame(t, 2)
	ship := testShip(10, 5, 4)
	if err := g.Docks[0].AssignShip(ship); err != nil {
		t.Fatalf("AssignShip failed: %v", err)
	}
	g.Begin()

	p := g.Players[0]
	a := CargoCard{ID: uuid.New(), Colour: Red, Tonnage: 2}
	b := CargoCard{ID: uuid.New(), Colour: Red, Tonnage: 3}
	p.Hand = []CargoCard{a, b}

	got, err := g.LoadCargo(p.ID, 1, []uuid.UUID{a.ID, b.ID}, SideLeft)
	if err != nil {
		t.Fatalf("LoadCargo failed: %v", err)
	}
	if got != ship {
		t.Error("Expected the berthed ship back")
	}
	if len(p.Hand) != 0 {
		t.Errorf("Expected loaded cards removed from hand, %d left", len(p.Hand))
	}
	if ship.CurrentTonnage() != 5 {
		t.Errorf("Expected tonnage 5, got %d", ship.CurrentTonnage())
	}
}

func TestGame_LoadCargoRejectionKeepsHand(t *testing.T) {
	g := newTestGame(t, 2)
	ship := testShip(2, 5, 4)
	g.Docks[0].AssignShip(ship)
	g.Begin()

	p := g.Players[0]
	a := CargoCard{ID: uuid.New(), Colour: Red, Tonnage: 2}
	b := CargoCard{ID: uuid.New(), Colour: Red, Tonnage: 3}
	p.Hand = []CargoCard{a, b}

	if _, err := g.LoadCargo(p.ID, 1, []uuid.UUID{a.ID, b.ID}, SideLeft); !errors.Is(err, ErrTonnageExceeded) {
		t.Fatalf("Expected ErrTonnageExceeded, got %v", err)
	}
	if len(p.Hand) != 2 {
		t.Errorf("Expected hand untouched after rejection, got %d cards", len(p.Hand))
	}
	if ship.TotalCargoCards() != 0 {
		t.Error("Expected ship untouched after rejection")
	}
}

func TestGame_LoadCargoUnknownCard(t *testing.T) {
	g := newTestGame(t, 2)
	g.Docks[0].AssignShip(testShip(10, 5, 4))
	g.Begin()
	if _, err := g.LoadCargo(1, 1, []uuid.UUID{uuid.New()}, SideLeft); !errors.Is(err, ErrCardNotInHand) {
		t.Errorf("Expected ErrCardNotInHand, got %v", err)
	}
}

func TestGame_LoadCargoRepeatedID(t *testing.T) {
	g := newTestGame(t, 2)
	ship := testShip(10, 5, 4)
	g.Docks[0].AssignShip(ship)
	g.Begin()

	p := g.Players[0]
	a := CargoCard{ID: uuid.New(), Colour: Red, Tonnage: 2}
	b := CargoCard{ID: uuid.New(), Colour: Red, Tonnage: 3}
	p.Hand = []CargoCard{a, b}

	// The same card cannot be loaded twice in one batch
	if _, err := g.LoadCargo(p.ID, 1, []uuid.UUID{a.ID, a.ID}, SideLeft); !errors.Is(err, ErrCardNotInHand) {
		t.Fatalf("Expected ErrCardNotInHand for a repeated card id, got %v", err)
	}
	if len(p.Hand) != 2 {
		t.Errorf("Expected hand untouched after rejection, got %d cards", len(p.Hand))
	}
	if ship.TotalCargoCards() != 0 {
		t.Errorf("Expected ship untouched after rejection, got %d cards aboard", ship.TotalCargoCards())
	}
}

func TestGame_PayoutDockCreditsBanks(t *testing.T) {
	g := newTestGame(t, 2)
	ship := testShip(4, 10, 4)
	ship.Cargo[SideLeft] = []CargoCard{cargo(Red, 2), cargo(Red, 2)}
	g.Docks[0].AssignShip(ship)
	g.Begin()

	p1, p2 := g.Players[0], g.Players[1]
	g.Invest(p1.ID, 1)
	g.Invest(p1.ID, 1)
	g.Invest(p2.ID, 1)
	coins1, coins2 := p1.Coins(), p2.Coins()

	payouts, err := g.PayoutDock(1)
	if err != nil {
		t.Fatalf("PayoutDock failed: %v", err)
	}
	if len(payouts) != 2 {
		t.Fatalf("Expected 2 payouts, got %d", len(payouts))
	}
	// Per-seat rate is the card count, 2
	if p1.Coins() != coins1+4 {
		t.Errorf("Expected player 1 paid 4 (2 seats x 2 cards), got %d", p1.Coins()-coins1)
	}
	if p2.Coins() != coins2+2 {
		t.Errorf("Expected player 2 paid 2, got %d", p2.Coins()-coins2)
	}
	if len(g.ShipDiscard) != 1 || g.ShipDiscard[0] != ship {
		t.Error("Expected the departed ship in the discard pile")
	}
	if g.Docks[0].Ship() != nil {
		t.Error("Expected the berth cleared")
	}
}

func TestGame_RemoveTimeCube(t *testing.T) {
	g := newTestGame(t, 2)
	ship := testShip(10, 5, 3)
	g.Docks[0].AssignShip(ship)
	g.Begin()

	got, err := g.RemoveTimeCube(1, 2)
	if err != nil {
		t.Fatalf("RemoveTimeCube failed: %v", err)
	}
	if got.TimeCubesRemaining != 1 {
		t.Errorf("Expected 1 cube left, got %d", got.TimeCubesRemaining)
	}
}

func TestGame_PassCreditsBonusAndAdvances(t *testing.T) {
	g := newTestGame(t, 3)
	g.Begin()
	p := g.ActivePlayer()
	coins := p.Coins()

	passed, err := g.Pass()
	if err != nil {
		t.Fatalf("Pass failed: %v", err)
	}
	if passed.ID != p.ID {
		t.Errorf("Expected the active player to pass, got %d", passed.ID)
	}
	if p.Coins() != coins+g.Rules.PassCoinBonus {
		t.Errorf("Expected pass bonus credited, got %d", p.Coins()-coins)
	}
	if g.ActivePlayer().ID == p.ID {
		t.Error("Expected the turn to advance after a pass")
	}
}

func TestGame_NextTurnCycles(t *testing.T) {
	g := newTestGame(t, 3)
	g.Begin()

	var seen []int
	seen = append(seen, g.ActivePlayer().ID)
	for i := 0; i < 3; i++ {
		p, err := g.NextTurn()
		if err != nil {
			t.Fatalf("NextTurn failed: %v", err)
		}
		seen = append(seen, p.ID)
	}
	want := []int{1, 2, 3, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Expected turn order %v, got %v", want, seen)
		}
	}
}

func TestGame_SellCargo(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	p := g.Players[0]
	p.Hand = []CargoCard{
		{ID: uuid.New(), Colour: Red, Tonnage: 2},
		{ID: uuid.New(), Colour: Red, Tonnage: CloneTonnage, Special: true},
		{ID: uuid.New(), Colour: Blue, Tonnage: 5},
	}
	coins := p.Coins()

	value, err := g.SellCargo(p.ID, Red)
	if err != nil {
		t.Fatalf("SellCargo failed: %v", err)
	}
	if value != 2 {
		t.Errorf("Expected sale value 2 (clone sells for nothing), got %d", value)
	}
	if p.Coins() != coins+2 {
		t.Errorf("Expected 2 coins credited, got %d", p.Coins()-coins)
	}
	if len(p.Hand) != 1 || p.Hand[0].Colour != Blue {
		t.Errorf("Expected only the blue card left, got %v", p.Hand)
	}
	if len(g.CargoDiscard) != 2 {
		t.Errorf("Expected 2 cards discarded, got %d", len(g.CargoDiscard))
	}

	if _, err := g.SellCargo(p.ID, Green); !errors.Is(err, ErrNoCardsOfColour) {
		t.Errorf("Expected ErrNoCardsOfColour, got %v", err)
	}
}

func TestGame_RecordDelivery(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	n, err := g.RecordDelivery(1, Hamburg, 2)
	if err != nil {
		t.Fatalf("RecordDelivery failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected count 2, got %d", n)
	}
	if _, err := g.RecordDelivery(42, Hamburg, 1); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("Expected ErrUnknownPlayer, got %v", err)
	}
}

func TestGame_TakeMarketplaceCardRefills(t *testing.T) {
	g := newTestGame(t, 3)
	g.Begin()
	p := g.Players[0]
	handBefore := len(p.Hand)
	card := g.Marketplace[0]

	got, err := g.TakeMarketplaceCard(p.ID, card.ID)
	if err != nil {
		t.Fatalf("TakeMarketplaceCard failed: %v", err)
	}
	if got.ID != card.ID {
		t.Error("Expected the requested card")
	}
	if len(p.Hand) != handBefore+1 {
		t.Errorf("Expected hand grown by one, got %d", len(p.Hand))
	}
	if len(g.Marketplace) != 4 {
		t.Errorf("Expected the offer refilled to 4, got %d", len(g.Marketplace))
	}
}

func TestGame_Standings(t *testing.T) {
	t.Run("coins descending", func(t *testing.T) {
		g := gameWithCoins(t, []int{120, 45, 200, 90})
		standings := g.Standings()
		wantOrder := []int{3, 1, 4, 2}
		wantCoins := []int{200, 120, 90, 45}
		for i := range standings {
			if standings[i].PlayerID != wantOrder[i] || standings[i].Coins != wantCoins[i] {
				t.Fatalf("Expected %v/%v, got %+v", wantOrder, wantCoins, standings)
			}
			if standings[i].Rank != i+1 {
				t.Errorf("Expected rank %d at position %d, got %d", i+1, i, standings[i].Rank)
			}
		}
	})

	t.Run("ties share the top rank", func(t *testing.T) {
		g := gameWithCoins(t, []int{150, 150, 80})
		standings := g.Standings()
		if standings[0].Rank != 1 || standings[1].Rank != 1 {
			t.Errorf("Expected both leaders at rank 1, got %+v", standings)
		}
		if standings[2].Rank != 3 {
			t.Errorf("Expected third place at rank 3, got %d", standings[2].Rank)
		}
		winners := g.Winners()
		if len(winners) != 2 || winners[0] != 1 || winners[1] != 2 {
			t.Errorf("Expected winners [1 2], got %v", winners)
		}
	})
}

func gameWithCoins(t *testing.T, coins []int) *Game {
	t.Helper()
	rules := DefaultRules()
	players := make([]*Player, len(coins))
	for i, c := range coins {
		players[i] = NewPlayerWith(i+1, c, rules.StartingTokens, rules.HandSize,
			Avatar1, false, rules.MaxDeliveriesPerDestination)
	}
	g, err := NewGame(players, rules, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

func TestGame_FinishSetsStateOver(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	standings, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if g.State != StateOver {
		t.Errorf("Expected Over state, got %v", g.State)
	}
	if len(standings) != 2 {
		t.Errorf("Expected 2 standings, got %d", len(standings))
	}
	if _, err := g.Pass(); !errors.Is(err, ErrWrongState) {
		t.Errorf("Expected ErrWrongState after the game ends, got %v", err)
	}
}

func TestGame_SetWeatherClamps(t *testing.T) {
	g := newTestGame(t, 2)
	if got := g.SetWeather(Weather(99)); got != WeatherPerfect {
		t.Errorf("Expected clamp to WeatherPerfect, got %v", got)
	}
	if got := g.SetWeather(Weather(-3)); got != WeatherStorms {
		t.Errorf("Expected clamp to WeatherStorms, got %v", got)
	}
}
