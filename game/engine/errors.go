package engine

import (
	"errors"
	"fmt"
)

// Validation failures are local and recoverable. The engine never logs and
// swallows one; every rule violation is returned to the caller as one of
// these values so it can retry, abort, or surface a message.
var (
	ErrInvalidAmount      = errors.New("amount is invalid")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoShip             = errors.New("no ship bound")
	ErrShipAtZeroTime     = errors.New("ship has no time cubes remaining")
	ErrCannotAddZeroCards = errors.New("cannot add zero cargo cards")
	ErrMixedColours       = errors.New("cargo cards must all share one colour")
	ErrCapacityExceeded   = errors.New("card capacity exceeded")
	ErrTonnageExceeded    = errors.New("tonnage capacity exceeded")
	ErrDockFull           = errors.New("dock has no investor seats left")
	ErrDockLocked         = errors.New("dock is locked")
	ErrDockOccupied       = errors.New("dock already has a ship")
	ErrNoTokensRemaining  = errors.New("player has no tokens remaining")
	ErrNoInvestors        = errors.New("dock has no investors")
	ErrShipNotReady       = errors.New("ship is not ready to sail")
	ErrInvalidPlayerCount = errors.New("player count out of range")
	ErrWrongState         = errors.New("operation not allowed in this game state")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrUnknownDock        = errors.New("unknown dock")
	ErrCardNotInHand      = errors.New("cargo card not in player's hand")
	ErrNoCardsOfColour    = errors.New("no cargo cards of that colour in hand")
	ErrShipDeckEmpty      = errors.New("ship deck is empty")
)

// CapacityExceededError reports a load that would push a ship past its card
// capacity. It matches ErrCapacityExceeded with errors.Is.
type CapacityExceededError struct {
	Max int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("ship can only hold %d cargo cards", e.Max)
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

// TonnageExceededError reports a load that would push a ship past its
// tonnage capacity. It matches ErrTonnageExceeded with errors.Is.
type TonnageExceededError struct {
	Max int
}

func (e *TonnageExceededError) Error() string {
	return fmt.Sprintf("ship can only carry %d tonnes", e.Max)
}

func (e *TonnageExceededError) Unwrap() error { return ErrTonnageExceeded }
