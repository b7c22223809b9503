package service

import (
	"time"

	"github.com/hey-amo/ShippingInvestors/game/engine"
)

// GameInfo provides summary information about a game session
type GameInfo struct {
	ID             string               `json:"id"`
	RulesName      string               `json:"rules_name"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
	State          string               `json:"state"`
	PlayerCount    int                  `json:"player_count"`
	Game           *engine.GameSnapshot `json:"game"`
}

// ActionResult contains the outcome of a single game action
type ActionResult struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Game    *engine.GameSnapshot `json:"game"`
}

// PayoutResult contains the payouts from a departing ship
type PayoutResult struct {
	Payouts []engine.Payout      `json:"payouts"`
	Game    *engine.GameSnapshot `json:"game"`
}

// SellResult contains the proceeds of a market sale
type SellResult struct {
	Value     int                  `json:"value"`
	CardsSold int                  `json:"cards_sold"`
	Game      *engine.GameSnapshot `json:"game"`
}

// StandingsResult contains the score table and, for a finished game, the
// players sharing the top rank
type StandingsResult struct {
	Standings []engine.Standing `json:"standings"`
	Winners   []int             `json:"winners"`
	GameOver  bool              `json:"game_over"`
}
