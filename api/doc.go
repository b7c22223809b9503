// Package api provides the HTTP REST API for the shipping game server.
//
// The api package implements:
//   - RESTful endpoints for game lifecycle and turn actions
//   - Game state, standings, and message log queries
//   - Rule set listing
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Game Lifecycle:
//   - POST   /api/games - Create a new game
//   - GET    /api/games - List games (sort, order, limit query params)
//   - GET    /api/games/{id} - Get a game summary
//   - DELETE /api/games/{id} - Delete a game
//   - POST   /api/games/{id}/begin - Deal ships and hands, start play
//   - POST   /api/games/{id}/finish - End the game and compute standings
//
// Turn Actions:
//   - POST   /api/games/{id}/load-cargo - Load hand cards onto a berthed ship
//   - POST   /api/games/{id}/remove-time-cube - Remove time cubes from a ship
//   - POST   /api/games/{id}/investors - Take an investor seat at a dock
//   - DELETE /api/games/{id}/investors - Vacate an investor seat
//   - POST   /api/games/{id}/payout - Pay out and depart a ready ship
//   - POST   /api/games/{id}/pass - Pass the turn for a bonus coin
//   - POST   /api/games/{id}/next-turn - Advance to the next player
//   - POST   /api/games/{id}/sell - Sell a colour of cargo at market
//   - POST   /api/games/{id}/draw - Draw a cargo card from the deck
//   - POST   /api/games/{id}/marketplace - Take a face-up marketplace card
//   - POST   /api/games/{id}/deliver - Record a completed delivery
//
// Game State:
//   - GET /api/games/{id}/state - Full game snapshot
//   - GET /api/games/{id}/standings - Score table and winners
//   - GET /api/games/{id}/messages - Message log (limit query param)
//
// Rule Sets:
//   - GET /api/rules - List available rule sets
//
// All endpoints accept and return JSON. Errors are returned as JSON with
// an appropriate HTTP status code:
//
//	{"error": "dock is locked"}
//
// Mutating endpoints broadcast the resulting snapshot to WebSocket clients
// watching the game (connect via /ws?game=<id>).
package api
