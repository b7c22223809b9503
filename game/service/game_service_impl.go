package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hey-amo/ShippingInvestors/game/config"
	"github.com/hey-amo/ShippingInvestors/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	rules    RulesManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, rules RulesManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		rules:    rules,
	}
}

// CreateGame creates a new game session with freshly seated players
func (s *gameServiceImpl) CreateGame(ctx context.Context, rulesName string, playerCount int) (*GameInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rules *engine.Rules
	if rulesName != "" {
		loaded, err := s.rules.LoadRules(rulesName)
		if err != nil {
			if errors.Is(err, config.ErrRulesNotFound) {
				if infos, listErr := s.rules.ListRules(); listErr == nil && len(infos) > 0 {
					var ids []string
					for _, info := range infos {
						ids = append(ids, info.RulesID)
					}
					return nil, fmt.Errorf("rule set '%s' not found. Available rule sets: %v", rulesName, ids)
				}
				return nil, fmt.Errorf("rule set '%s' not found. Use /api/rules to list available rule sets", rulesName)
			}
			return nil, fmt.Errorf("failed to load rule set %s: %w", rulesName, err)
		}
		rules = loaded
	} else {
		rules = s.rules.GetDefault()
		rulesName = rules.Name
	}

	// Let the session manager generate a short ID
	sess, err := s.sessions.Create("", rulesName, rules, playerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return s.gameInfo(sess), nil
}

// GetGame retrieves summary information about a game
func (s *gameServiceImpl) GetGame(ctx context.Context, gameID string) (*GameInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)
	return s.gameInfo(sess), nil
}

// ListGames returns all active games
func (s *gameServiceImpl) ListGames(ctx context.Context) ([]*GameInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*GameInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.gameInfo(sess))
	}
	return result, nil
}

// DeleteGame removes a game session
func (s *gameServiceImpl) DeleteGame(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Delete(gameID)
}

// Begin starts a game that is still in setup
func (s *gameServiceImpl) Begin(ctx context.Context, gameID string) (*ActionResult, error) {
	return s.mutate(gameID, func(sess *Session) (string, error) {
		if err := sess.Game.Begin(); err != nil {
			return "", err
		}
		return fmt.Sprintf("Game started. Player %d goes first.", sess.Game.ActivePlayer().ID), nil
	})
}

// Finish ends a running game and returns the final standings
func (s *gameServiceImpl) Finish(ctx context.Context, gameID string) (*StandingsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)

	standings, err := sess.Game.Finish()
	if err != nil {
		return nil, err
	}
	s.autoSave(gameID)
	return &StandingsResult{
		Standings: standings,
		Winners:   sess.Game.Winners(),
		GameOver:  true,
	}, nil
}

// LoadCargo moves hand cards onto one side of the ship berthed at a dock
func (s *gameServiceImpl) LoadCargo(ctx context.Context, gameID string, playerID, dockID int, cardIDs []string, side string) (*ActionResult, error) {
	ids := make([]uuid.UUID, 0, len(cardIDs))
	for _, raw := range cardIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid card id %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	loadSide, err := engine.ParseSide(side)
	if err != nil {
		return nil, err
	}

	return s.mutate(gameID, func(sess *Session) (string, error) {
		ship, err := sess.Game.LoadCargo(playerID, dockID, ids, loadSide)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Loaded %d card(s). Ship %d now carries %d tonnes over %d card(s).",
			len(ids), ship.ID, ship.CurrentTonnage(), ship.TotalCargoCards()), nil
	})
}

// RemoveTimeCube removes time cubes from the ship berthed at a dock
func (s *gameServiceImpl) RemoveTimeCube(ctx context.Context, gameID string, dockID, amount int) (*ActionResult, error) {
	return s.mutate(gameID, func(sess *Session) (string, error) {
		ship, err := sess.Game.RemoveTimeCube(dockID, amount)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Ship %d has %d time cube(s) remaining.", ship.ID, ship.TimeCubesRemaining), nil
	})
}

// Invest spends a token on an investor seat
func (s *gameServiceImpl) Invest(ctx context.Context, gameID string, playerID, dockID int) (*ActionResult, error) {
	return s.mutate(gameID, func(sess *Session) (string, error) {
		if err := sess.Game.Invest(playerID, dockID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %d took a seat at dock %d.", playerID, dockID), nil
	})
}

// Divest vacates a seat and refunds the token
func (s *gameServiceImpl) Divest(ctx context.Context, gameID string, playerID, dockID int) (*ActionResult, error) {
	return s.mutate(gameID, func(sess *Session) (string, error) {
		if err := sess.Game.Divest(playerID, dockID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %d left dock %d.", playerID, dockID), nil
	})
}

// Payout departs the ship at a dock and credits its investors
func (s *gameServiceImpl) Payout(ctx context.Context, gameID string, dockID int) (*PayoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)

	payouts, err := sess.Game.PayoutDock(dockID)
	if err != nil {
		return nil, err
	}
	s.autoSave(gameID)
	return &PayoutResult{
		Payouts: payouts,
		Game:    sess.Game.Snapshot(),
	}, nil
}

// Pass ends the active player's turn for a small coin bonus
func (s *gameServiceImpl) Pass(ctx context.Context, gameID string) (*ActionResult, error) {
	return s.mutate(gameID, func(sess *Session) (string, error) {
		p, err := sess.Game.Pass()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %d passed. Player %d is up.", p.ID, sess.Game.ActivePlayer().ID), nil
	})
}

// NextTurn advances play to the next player
func (s *gameServiceImpl) NextTurn(ctx context.Context, gameID string) (*ActionResult, error) {
	return s.mutate(gameID, func(sess *Session) (string, error) {
		p, err := sess.Game.NextTurn()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %d is up.", p.ID), nil
	})
}

// SellCargo sells every hand card of one colour for its tonnage in coins
func (s *gameServiceImpl) SellCargo(ctx context.Context, gameID string, playerID int, colour string) (*SellResult, error) {
	c, err := engine.ParseColour(colour)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)

	p, err := sess.Game.PlayerByID(playerID)
	if err != nil {
		return nil, err
	}
	handBefore := len(p.Hand)
	value, err := sess.Game.SellCargo(playerID, c)
	if err != nil {
		return nil, err
	}
	s.autoSave(gameID)
	return &SellResult{
		Value:     value,
		CardsSold: handBefore - len(p.Hand),
		Game:      sess.Game.Snapshot(),
	}, nil
}

// DrawCargo draws the top cargo card into a player's hand
func (s *gameServiceImpl) DrawCargo(ctx context.Context, gameID string, playerID int) (*ActionResult, error) {
	return s.mutate(gameID, func(sess *Session) (string, error) {
		card, err := sess.Game.DrawCargo(playerID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %d drew a %s card.", playerID, card.Colour), nil
	})
}

// TakeMarketplaceCard takes a face-up card into a player's hand
func (s *gameServiceImpl) TakeMarketplaceCard(ctx context.Context, gameID string, playerID int, cardID string) (*ActionResult, error) {
	id, err := uuid.Parse(cardID)
	if err != nil {
		return nil, fmt.Errorf("invalid card id %q: %w", cardID, err)
	}
	return s.mutate(gameID, func(sess *Session) (string, error) {
		card, err := sess.Game.TakeMarketplaceCard(playerID, id)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %d took a %s card from the marketplace.", playerID, card.Colour), nil
	})
}

// RecordDelivery credits a player with deliveries to a destination
func (s *gameServiceImpl) RecordDelivery(ctx context.Context, gameID string, playerID int, destination string, quantity int) (*ActionResult, error) {
	dest, err := engine.ParseDestination(destination)
	if err != nil {
		return nil, err
	}
	return s.mutate(gameID, func(sess *Session) (string, error) {
		n, err := sess.Game.RecordDelivery(playerID, dest, quantity)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Player %d has delivered %d to %s.", playerID, n, dest), nil
	})
}

// GetState returns a full snapshot of the game
func (s *gameServiceImpl) GetState(ctx context.Context, gameID string) (*engine.GameSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)
	return sess.Game.Snapshot(), nil
}

// Standings returns the current score table
func (s *gameServiceImpl) Standings(ctx context.Context, gameID string) (*StandingsResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	result := &StandingsResult{
		Standings: sess.Game.Standings(),
		GameOver:  sess.Game.State == engine.StateOver,
	}
	if result.GameOver {
		result.Winners = sess.Game.Winners()
	}
	return result, nil
}

// Messages returns the newest log entries, capped at limit
func (s *gameServiceImpl) Messages(ctx context.Context, gameID string, limit int) ([]engine.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	messages := sess.Game.Log.Newest()
	if limit > 0 && limit < len(messages) {
		messages = messages[:limit]
	}
	return messages, nil
}

// ListRules returns the available rule sets
func (s *gameServiceImpl) ListRules(ctx context.Context) ([]*config.RulesInfo, error) {
	return s.rules.ListRules()
}

// mutate runs a state-changing action against a session under the write
// lock, then auto-saves and snapshots the game
func (s *gameServiceImpl) mutate(gameID string, action func(*Session) (string, error)) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(gameID)

	message, err := action(sess)
	if err != nil {
		return nil, err
	}
	s.autoSave(gameID)
	return &ActionResult{
		Success: true,
		Message: message,
		Game:    sess.Game.Snapshot(),
	}, nil
}

func (s *gameServiceImpl) autoSave(gameID string) {
	if err := s.sessions.Save(gameID); err != nil {
		fmt.Printf("Warning: Failed to persist game %s: %v\n", gameID, err)
	}
}

func (s *gameServiceImpl) gameInfo(sess *Session) *GameInfo {
	return &GameInfo{
		ID:             sess.ID,
		RulesName:      sess.RulesName,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		State:          sess.Game.State.String(),
		PlayerCount:    len(sess.Game.Players),
		Game:           sess.Game.Snapshot(),
	}
}
