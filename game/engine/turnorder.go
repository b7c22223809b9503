package engine

import "sort"

// TurnTaker is anything that can hold a place in the turn order
type TurnTaker interface {
	PlayerID() int
}

// TurnOrderManager cycles through a fixed set of turn takers in ascending
// id order. The order is established once at setup and never changes
// mid-game; the cursor wraps from the last taker back to the first.
type TurnOrderManager struct {
	order   []TurnTaker
	current int
}

// NewTurnOrderManager sorts the takers by id and positions the cursor on
// the first one
func NewTurnOrderManager(takers []TurnTaker) *TurnOrderManager {
	order := make([]TurnTaker, len(takers))
	copy(order, takers)
	sort.Slice(order, func(i, j int) bool {
		return order[i].PlayerID() < order[j].PlayerID()
	})
	return &TurnOrderManager{order: order}
}

// Len returns the number of turn takers
func (t *TurnOrderManager) Len() int {
	return len(t.order)
}

// Current returns the taker whose turn it is, or nil when empty
func (t *TurnOrderManager) Current() TurnTaker {
	if len(t.order) == 0 {
		return nil
	}
	return t.order[t.current]
}

// Advance moves to the next taker, wrapping past the end, and returns it.
// With a single taker the turn never leaves them.
func (t *TurnOrderManager) Advance() TurnTaker {
	if len(t.order) == 0 {
		return nil
	}
	t.current = (t.current + 1) % len(t.order)
	return t.order[t.current]
}

// SetCurrent positions the cursor on the taker with the given id
func (t *TurnOrderManager) SetCurrent(id int) error {
	for i, taker := range t.order {
		if taker.PlayerID() == id {
			t.current = i
			return nil
		}
	}
	return ErrUnknownPlayer
}

// Order returns the taker ids in turn sequence starting from the first
func (t *TurnOrderManager) Order() []int {
	ids := make([]int, len(t.order))
	for i, taker := range t.order {
		ids[i] = taker.PlayerID()
	}
	return ids
}
