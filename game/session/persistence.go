package session

import (
	"time"

	"github.com/hey-amo/ShippingInvestors/game/engine"
	"github.com/hey-amo/ShippingInvestors/game/service"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData is the JSON structure for persisted sessions. The
// game itself is stored as a snapshot, with ship and player references
// flattened to ids.
type PersistedSessionData struct {
	ID             string               `json:"id"`
	RulesName      string               `json:"rules_name"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
	Game           *engine.GameSnapshot `json:"game"`
}
