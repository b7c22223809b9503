package engine

import (
	"encoding/json"
	"math/rand"
	"testing"
)

func TestSnapshot_RoundTripThroughJSON(t *testing.T) {
	g := newTestGame(t, 3)
	if err := g.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	g.Invest(1, 1)
	g.Invest(1, 1)
	g.Invest(2, 2)
	g.RecordDelivery(2, Hamburg, 3)
	g.NextTurn()

	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var snap GameSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	restored, err := RestoreGame(&snap, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("RestoreGame failed: %v", err)
	}

	if restored.ID != g.ID {
		t.Errorf("Expected game id %v, got %v", g.ID, restored.ID)
	}
	if restored.State != StatePlaying {
		t.Errorf("Expected Playing state, got %v", restored.State)
	}
	if restored.ActivePlayer().ID != g.ActivePlayer().ID {
		t.Errorf("Expected active player %d, got %d", g.ActivePlayer().ID, restored.ActivePlayer().ID)
	}

	for i, p := range g.Players {
		rp := restored.Players[i]
		if rp.ID != p.ID || rp.Coins() != p.Coins() || rp.Tokens != p.Tokens {
			t.Errorf("Expected player %d restored identically", p.ID)
		}
		if len(rp.Hand) != len(p.Hand) {
			t.Errorf("Expected player %d hand of %d, got %d", p.ID, len(p.Hand), len(rp.Hand))
		}
	}
	if restored.Players[1].DeliveredCount(Hamburg) != 3 {
		t.Errorf("Expected 3 Hamburg deliveries restored, got %d",
			restored.Players[1].DeliveredCount(Hamburg))
	}
}

func TestSnapshot_ShipReferencesResolveByID(t *testing.T) {
	g := newTestGame(t, 2)
	if err := g.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	restored, err := RestoreGame(g.Snapshot(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("RestoreGame failed: %v", err)
	}

	for i, d := range g.Docks {
		rd := restored.Docks[i]
		if (d.Ship() == nil) != (rd.Ship() == nil) {
			t.Fatalf("Expected dock %d berth state to survive the trip", d.ID)
		}
		if d.Ship() == nil {
			continue
		}
		if rd.Ship().ID != d.Ship().ID {
			t.Errorf("Expected ship %d at dock %d, got %d", d.Ship().ID, d.ID, rd.Ship().ID)
		}
		// Manager is bound to the very ship the dock holds
		if rd.Manager().Ship() != rd.Ship() {
			t.Errorf("Expected dock %d manager bound to its own berthed ship", d.ID)
		}
	}
	if len(restored.ShipDeck) != len(g.ShipDeck) {
		t.Errorf("Expected ship deck of %d, got %d", len(g.ShipDeck), len(restored.ShipDeck))
	}
	for i := range g.ShipDeck {
		if restored.ShipDeck[i].ID != g.ShipDeck[i].ID {
			t.Fatalf("Expected ship deck order preserved, diverged at %d", i)
		}
	}
}

func TestSnapshot_InvestorSeatsSurvive(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	g.Invest(1, 1)
	g.Invest(1, 1)

	restored, err := RestoreGame(g.Snapshot(), nil)
	if err != nil {
		t.Fatalf("RestoreGame failed: %v", err)
	}
	if got := restored.Docks[0].SeatsHeld(1); got != 2 {
		t.Errorf("Expected 2 seats restored, got %d", got)
	}
	if restored.Players[0].Tokens != g.Players[0].Tokens {
		t.Errorf("Expected spent tokens to stay spent, got %d", restored.Players[0].Tokens)
	}
}

func TestSnapshot_MessagesSurviveInOrder(t *testing.T) {
	g := newTestGame(t, 2)
	g.Begin()
	g.Log.Add("custom entry", MessageWarning)

	restored, err := RestoreGame(g.Snapshot(), nil)
	if err != nil {
		t.Fatalf("RestoreGame failed: %v", err)
	}
	want := g.Log.Newest()
	got := restored.Log.Newest()
	if len(got) != len(want) {
		t.Fatalf("Expected %d messages, got %d", len(want), len(got))
	}
	if got[0].Text != "custom entry" || got[0].Kind != MessageWarning {
		t.Errorf("Expected the newest entry first, got %q", got[0].Text)
	}
}
