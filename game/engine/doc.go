// Package engine provides the core rules engine for Shipping Investors.
//
// The engine package owns the authoritative game state and implements:
//   - Card catalogs and deterministic deck construction (cargo, buildings, ships)
//   - Ship loading rules: card capacity, tonnage, colour matching, time cubes
//   - Dock investment seats and the departure payout protocol
//   - Per-player coin ledgers (Bank) and delivery tracking
//   - Turn order cycling and winner standings
//   - A bounded, subscribable message log for UI feeds
//
// Core Types:
//
// Game is the root aggregate assembled by NewGame. Ships are mutated only
// through a ShipManager, docks only through their own investor methods, and
// coins only through a player's Bank. Every validating operation performs
// all of its checks before any mutation, so a rejected operation leaves the
// game unchanged.
//
// Usage:
//
//	rules := engine.DefaultRules()
//	players := []*engine.Player{
//		engine.NewPlayer(1, rules),
//		engine.NewPlayer(2, rules),
//	}
//	game, err := engine.NewGame(players, rules, rand.New(rand.NewSource(seed)))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := game.Begin(); err != nil {
//		log.Fatal(err)
//	}
//	mgr := game.Manager(0)
//	_, err = mgr.AddCargo(cards, engine.SideLeft)
//
// Randomness is always injected: given the same seed the same decks are
// built in the same order, which keeps setup reproducible in tests.
package engine
