// Package service provides the business logic layer for Shipping Investors.
//
// The service package implements:
//   - Multi-game session management
//   - Rule-set loading and selection
//   - Typed game operations with validation
//   - Session lifecycle management
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// RulesManager loads and validates named rule sets.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the rules engine, providing session isolation, rule-set management, and
// orchestration. Each session holds its own engine.Game with independent
// state; the service serialises access to it.
//
// Usage:
//
//	rulesMgr, _ := config.NewManager("rules")
//	sessionMgr := session.NewManager()
//	gameService := service.NewGameService(sessionMgr, rulesMgr)
//
//	// Create a new 3-player game
//	info, err := gameService.CreateGame(ctx, "standard", 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Start it and take actions
//	_, err = gameService.Begin(ctx, info.ID)
//	result, err := gameService.Invest(ctx, info.ID, 1, 2)
//
// Game Identifiers:
//
// Games are identified by unique 4-character IDs. Multiple games can run
// concurrently under different rule sets. Sessions track creation time and
// last access time for cleanup.
package service
