package engine

import "fmt"

// Rules collects every tunable constant of the engine. The values the board
// game ships with are in DefaultRules; alternative rule sets are loaded from
// YAML files by the config manager.
type Rules struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`

	MessageLogCapacity          int `yaml:"message_log_capacity" json:"message_log_capacity"`
	MaxDeliveriesPerDestination int `yaml:"max_deliveries_per_destination" json:"max_deliveries_per_destination"`

	DockSeatLimit int `yaml:"dock_seat_limit" json:"dock_seat_limit"`
	DockCount     int `yaml:"dock_count" json:"dock_count"`
	LockedDocks   int `yaml:"locked_docks" json:"locked_docks"`

	MinPlayers int `yaml:"min_players" json:"min_players"`
	MaxPlayers int `yaml:"max_players" json:"max_players"`

	StartingCoins  int `yaml:"starting_coins" json:"starting_coins"`
	StartingTokens int `yaml:"starting_tokens" json:"starting_tokens"`
	HandSize       int `yaml:"hand_size" json:"hand_size"`

	// MarketplaceExtra controls the face-up cargo offer: it is refilled to
	// playerCount + MarketplaceExtra cards.
	MarketplaceExtra int `yaml:"marketplace_extra" json:"marketplace_extra"`

	// RandomStartingPlayer picks the starting player uniformly at random
	// instead of the lowest player id.
	RandomStartingPlayer bool `yaml:"random_starting_player" json:"random_starting_player"`

	PassCoinBonus int `yaml:"pass_coin_bonus" json:"pass_coin_bonus"`
}

// DefaultRules returns the standard rule set
func DefaultRules() *Rules {
	return &Rules{
		Name:                        "standard",
		Description:                 "Standard Shipping Investors rules",
		MessageLogCapacity:          50,
		MaxDeliveriesPerDestination: 5,
		DockSeatLimit:               3,
		DockCount:                   4,
		LockedDocks:                 1,
		MinPlayers:                  2,
		MaxPlayers:                  5,
		StartingCoins:               5,
		StartingTokens:              3,
		HandSize:                    5,
		MarketplaceExtra:            1,
		RandomStartingPlayer:        false,
		PassCoinBonus:               1,
	}
}

// Validate checks a rule set for internal consistency
func (r *Rules) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rules validation: name is required")
	}
	if r.MessageLogCapacity <= 0 {
		return fmt.Errorf("rules validation: message_log_capacity must be positive, got %d", r.MessageLogCapacity)
	}
	if r.MaxDeliveriesPerDestination <= 0 {
		return fmt.Errorf("rules validation: max_deliveries_per_destination must be positive, got %d", r.MaxDeliveriesPerDestination)
	}
	if r.DockSeatLimit <= 0 {
		return fmt.Errorf("rules validation: dock_seat_limit must be positive, got %d", r.DockSeatLimit)
	}
	if r.DockCount <= 0 {
		return fmt.Errorf("rules validation: dock_count must be positive, got %d", r.DockCount)
	}
	if r.LockedDocks < 0 || r.LockedDocks >= r.DockCount {
		return fmt.Errorf("rules validation: locked_docks must be between 0 and dock_count-1 (%d), got %d", r.DockCount-1, r.LockedDocks)
	}
	if r.MinPlayers < 1 {
		return fmt.Errorf("rules validation: min_players must be at least 1, got %d", r.MinPlayers)
	}
	if r.MaxPlayers < r.MinPlayers {
		return fmt.Errorf("rules validation: max_players (%d) cannot be below min_players (%d)", r.MaxPlayers, r.MinPlayers)
	}
	if r.StartingCoins < 0 {
		return fmt.Errorf("rules validation: starting_coins cannot be negative, got %d", r.StartingCoins)
	}
	if r.StartingTokens < 0 {
		return fmt.Errorf("rules validation: starting_tokens cannot be negative, got %d", r.StartingTokens)
	}
	if r.HandSize <= 0 {
		return fmt.Errorf("rules validation: hand_size must be positive, got %d", r.HandSize)
	}
	if r.MarketplaceExtra < 0 {
		return fmt.Errorf("rules validation: marketplace_extra cannot be negative, got %d", r.MarketplaceExtra)
	}
	if r.PassCoinBonus < 0 {
		return fmt.Errorf("rules validation: pass_coin_bonus cannot be negative, got %d", r.PassCoinBonus)
	}
	return nil
}
