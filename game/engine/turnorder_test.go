package engine

import "testing"

type fakeTaker int

func (f fakeTaker) PlayerID() int { return int(f) }

func TestTurnOrderManager_SortsByIDAscending(t *testing.T) {
	m := NewTurnOrderManager([]TurnTaker{fakeTaker(3), fakeTaker(1), fakeTaker(2)})

	if got := m.Current().PlayerID(); got != 1 {
		t.Errorf("Expected player 1 first, got %d", got)
	}
	if got := m.Advance().PlayerID(); got != 2 {
		t.Errorf("Expected player 2 second, got %d", got)
	}
	if got := m.Advance().PlayerID(); got != 3 {
		t.Errorf("Expected player 3 third, got %d", got)
	}
	// Wraps back to the start
	if got := m.Advance().PlayerID(); got != 1 {
		t.Errorf("Expected wrap to player 1, got %d", got)
	}
}

func TestTurnOrderManager_SinglePlayerNeverRotates(t *testing.T) {
	m := NewTurnOrderManager([]TurnTaker{fakeTaker(5)})
	for i := 0; i < 3; i++ {
		if got := m.Advance().PlayerID(); got != 5 {
			t.Fatalf("Expected player 5 on every turn, got %d", got)
		}
	}
}

func TestTurnOrderManager_Empty(t *testing.T) {
	m := NewTurnOrderManager(nil)
	if m.Current() != nil {
		t.Error("Expected nil current taker for an empty order")
	}
	if m.Advance() != nil {
		t.Error("Expected nil from Advance on an empty order")
	}
}

func TestTurnOrderManager_SetCurrent(t *testing.T) {
	m := NewTurnOrderManager([]TurnTaker{fakeTaker(1), fakeTaker(2), fakeTaker(3)})
	if err := m.SetCurrent(3); err != nil {
		t.Fatalf("SetCurrent failed: %v", err)
	}
	if got := m.Current().PlayerID(); got != 3 {
		t.Errorf("Expected current player 3, got %d", got)
	}
	if err := m.SetCurrent(42); err != ErrUnknownPlayer {
		t.Errorf("Expected ErrUnknownPlayer, got %v", err)
	}
}

func TestTurnOrderManager_Order(t *testing.T) {
	m := NewTurnOrderManager([]TurnTaker{fakeTaker(2), fakeTaker(1)})
	got := m.Order()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected order [1 2], got %v", got)
	}
}
