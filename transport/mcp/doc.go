// Package mcp provides a Model Context Protocol interface for the
// shipping game server.
//
// The package implements a thin MCP client that proxies every tool call
// to the REST API, so AI agents and HTTP clients always see the same
// game semantics.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_game, list_games, begin_game, finish_game: game lifecycle
//   - game_state: formatted dock/ship/player summary
//   - invest, divest: investor seat management
//   - load_cargo, remove_time_cube, payout: ship operations
//   - pass_turn, next_turn: turn flow
//   - sell_cargo, draw_cargo, take_marketplace_card: hand management
//   - record_delivery: delivery tracking
//   - standings, message_log, list_rules: queries
//
// Transport Modes:
//
// The underlying MCP server supports two transport modes:
//   - Stdio: direct stdio communication for local MCP clients
//   - HTTP: a POST /mcp endpoint for remote MCP integration
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//
//	// Stdio mode
//	server.ServeStdio(client.GetMCPServer())
//
//	// HTTP mode
//	response := client.GetMCPServer().HandleMessage(ctx, requestBody)
package mcp
