package service

import (
	"context"
	"time"

	"github.com/hey-amo/ShippingInvestors/game/config"
	"github.com/hey-amo/ShippingInvestors/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Game lifecycle
	CreateGame(ctx context.Context, rulesName string, playerCount int) (*GameInfo, error)
	GetGame(ctx context.Context, gameID string) (*GameInfo, error)
	ListGames(ctx context.Context) ([]*GameInfo, error)
	DeleteGame(ctx context.Context, gameID string) error
	Begin(ctx context.Context, gameID string) (*ActionResult, error)
	Finish(ctx context.Context, gameID string) (*StandingsResult, error)

	// Turn actions
	LoadCargo(ctx context.Context, gameID string, playerID, dockID int, cardIDs []string, side string) (*ActionResult, error)
	RemoveTimeCube(ctx context.Context, gameID string, dockID, amount int) (*ActionResult, error)
	Invest(ctx context.Context, gameID string, playerID, dockID int) (*ActionResult, error)
	Divest(ctx context.Context, gameID string, playerID, dockID int) (*ActionResult, error)
	Payout(ctx context.Context, gameID string, dockID int) (*PayoutResult, error)
	Pass(ctx context.Context, gameID string) (*ActionResult, error)
	NextTurn(ctx context.Context, gameID string) (*ActionResult, error)
	SellCargo(ctx context.Context, gameID string, playerID int, colour string) (*SellResult, error)
	DrawCargo(ctx context.Context, gameID string, playerID int) (*ActionResult, error)
	TakeMarketplaceCard(ctx context.Context, gameID string, playerID int, cardID string) (*ActionResult, error)
	RecordDelivery(ctx context.Context, gameID string, playerID int, destination string, quantity int) (*ActionResult, error)

	// Game state
	GetState(ctx context.Context, gameID string) (*engine.GameSnapshot, error)
	Standings(ctx context.Context, gameID string) (*StandingsResult, error)
	Messages(ctx context.Context, gameID string, limit int) ([]engine.Message, error)

	// Rule sets
	ListRules(ctx context.Context) ([]*config.RulesInfo, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, rulesName string, rules *engine.Rules, playerCount int) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// RulesManager handles rule-set loading
type RulesManager interface {
	LoadRules(name string) (*engine.Rules, error)
	ListRules() ([]*config.RulesInfo, error)
	GetDefault() *engine.Rules
	SaveRules(name string, rules *engine.Rules) error
}

// Session binds a live game to an identifier clients can hold on to
type Session struct {
	ID             string
	Game           *engine.Game
	RulesName      string
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
