package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hey-amo/ShippingInvestors/game/config"
	"github.com/hey-amo/ShippingInvestors/game/engine"
	"github.com/hey-amo/ShippingInvestors/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Shipping Investors",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Shipping Investors - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Load cargo onto ships at the docks, invest in the docks whose ships are
about to sail, and collect coin payouts when they depart. The richest
player when the game ends wins.

AVAILABLE TOOLS:
- create_game: Create a new game
- list_games: List active games
- begin_game: Deal ships and hands, start play
- game_state: Get the full game state
- invest / divest: Take or vacate an investor seat at a dock
- load_cargo: Load hand cards onto a berthed ship
- remove_time_cube: Remove time cubes from a ship
- payout: Pay out investors and send a ready ship to sea
- pass_turn / next_turn: End the active player's turn
- sell_cargo: Sell a colour of cargo at market value
- draw_cargo / take_marketplace_card: Add cards to a hand
- record_delivery: Record a completed delivery
- standings: Score table and winners
- message_log: Recent game events
- list_rules: Available rule sets
- finish_game: End the game and compute final standings

Ships sail when their tonnage or card capacity fills, or when their time
cubes run out. Only investors seated at a dock are paid when its ship
departs.`),
	)

	// Register all tools
	c.registerTools()
}

func gameIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Game ID",
	}
}

func playerIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Player ID (1-based)",
	}
}

func dockIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Dock ID (1-based)",
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Game lifecycle
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_game",
		Description: "Create a new game with optional rule set selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"rules_id": map[string]interface{}{
					"type":        "string",
					"description": "Rule set to use (optional)",
				},
				"players": map[string]interface{}{
					"type":        "integer",
					"description": "Number of players",
				},
			},
			Required: []string{"players"},
		},
	}, c.handleCreateGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all active games",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListGames)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "begin_game",
		Description: "Deal ships to the docks, deal hands, and start play",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameIDProperty(),
			},
			Required: []string{"game_id"},
		},
	}, c.handleBeginGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "finish_game",
		Description: "End the game and compute final standings",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameIDProperty(),
			},
			Required: []string{"game_id"},
		},
	}, c.handleFinishGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state with docks, ships, and players",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameIDProperty(),
			},
			Required: []string{"game_id"},
		},
	}, c.handleGameState)

	// Turn actions
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "invest",
		Description: "Spend an investor token to take a seat at a dock",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id":   gameIDProperty(),
				"player_id": playerIDProperty(),
				"dock_id":   dockIDProperty(),
			},
			Required: []string{"game_id", "player_id", "dock_id"},
		},
	}, c.handleInvest)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "divest",
		Description: "Vacate an investor seat at a dock and reclaim the token",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id":   gameIDProperty(),
				"player_id": playerIDProperty(),
				"dock_id":   dockIDProperty(),
			},
			Required: []string{"game_id", "player_id", "dock_id"},
		},
	}, c.handleDivest)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "load_cargo",
		Description: "Load cargo cards from a player's hand onto the ship berthed at a dock. All cards must share one colour and the load must fit the ship's capacity and tonnage.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id":   gameIDProperty(),
				"player_id": playerIDProperty(),
				"dock_id":   dockIDProperty(),
				"card_ids": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "IDs of hand cards to load",
				},
				"side": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"left", "right"},
					"description": "Which side of the ship to load (default left)",
				},
			},
			Required: []string{"game_id", "player_id", "dock_id", "card_ids"},
		},
	}, c.handleLoadCargo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "remove_time_cube",
		Description: "Remove time cubes from the ship berthed at a dock, bringing its departure closer",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameIDProperty(),
				"dock_id": dockIDProperty(),
				"amount": map[string]interface{}{
					"type":        "integer",
					"description": "Cubes to remove (default 1)",
				},
			},
			Required: []string{"game_id", "dock_id"},
		},
	}, c.handleRemoveTimeCube)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "payout",
		Description: "Pay the seated investors and send a ready ship to sea",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameIDProperty(),
				"dock_id": dockIDProperty(),
			},
			Required: []string{"game_id", "dock_id"},
		},
	}, c.handlePayout)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pass_turn",
		Description: "Pass the turn in exchange for the pass bonus",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameIDProperty(),
			},
			Required: []string{"game_id"},
		},
	}, c.handlePassTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "next_turn",
		Description: "Advance to the next player without the pass bonus",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameIDProperty(),
			},
			Required: []string{"game_id"},
		},
	}, c.handleNextTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "sell_cargo",
		Description: "Sell all of a player's cargo cards of one colour at their tonnage value",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id":   gameIDProperty(),
				"player_id": playerIDProperty(),
				"colour": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"red", "yellow", "green", "blue", "grey", "white"},
					"description": "Cargo colour to sell",
				},
			},
			Required: []string{"game_id", "player_id", "colour"},
		},
	}, c.handleSellCargo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "draw_cargo",
		Description: "Draw a cargo card from the deck into a player's hand",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id":   gameIDProperty(),
				"player_id": playerIDProperty(),
			},
			Required: []string{"game_id", "player_id"},
		},
	}, c.handleDrawCargo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "take_marketplace_card",
		Description: "Take a face-up marketplace card into a player's hand",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id":   gameIDProperty(),
				"player_id": playerIDProperty(),
				"card_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the marketplace card",
				},
			},
			Required: []string{"game_id", "player_id", "card_id"},
		},
	}, c.handleTakeMarketplaceCard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "record_delivery",
		Description: "Record completed deliveries for a player at a destination",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id":   gameIDProperty(),
				"player_id": playerIDProperty(),
				"destination": map[string]interface{}{
					"type":        "string",
					"description": "Destination port name",
				},
				"quantity": map[string]interface{}{
					"type":        "integer",
					"description": "Deliveries to record (default 1)",
				},
			},
			Required: []string{"game_id", "player_id", "destination"},
		},
	}, c.handleRecordDelivery)

	// Game state
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "standings",
		Description: "Get the score table and, for a finished game, the winners",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameIDProperty(),
			},
			Required: []string{"game_id"},
		},
	}, c.handleStandings)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "message_log",
		Description: "Get recent game events, newest first",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": gameIDProperty(),
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum entries to return",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleMessageLog)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_rules",
		Description: "List available rule sets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListRules)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func toolArgs(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	return args
}

func intArg(args map[string]interface{}, key string) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return 0
}

// Tool handlers

func (c *Client) handleCreateGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	rulesID, _ := args["rules_id"].(string)
	players := intArg(args, "players")

	body := map[string]interface{}{"players": players}
	if rulesID != "" {
		body["rules_id"] = rulesID
	}

	var info service.GameInfo
	if err := c.apiCall("POST", "/api/games", body, &info); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created game: %s\nRules: %s\nPlayers: %d\n",
		info.ID, info.RulesName, info.PlayerCount)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int                `json:"count"`
		Games []service.GameInfo `json:"games"`
	}

	if err := c.apiCall("GET", "/api/games", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Games (%d):\n\n", response.Count)
	for _, g := range response.Games {
		result += fmt.Sprintf("- %s (Rules: %s, Players: %d, State: %s, Created: %s)\n",
			g.ID, g.RulesName, g.PlayerCount, g.State, g.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleBeginGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	var result service.ActionResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/begin", gameID), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("%s\n\n%s", result.Message, formatSnapshot(result.Game))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleFinishGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	var result service.StandingsResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/finish", gameID), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatStandings(&result)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	var snapshot engine.GameSnapshot
	if err := c.apiCall("GET", fmt.Sprintf("/api/games/%s/state", gameID), nil, &snapshot); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSnapshot(&snapshot)), nil
}

func (c *Client) handleInvest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.seatAction(request, "POST")
}

func (c *Client) handleDivest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.seatAction(request, "DELETE")
}

// seatAction shares the invest/divest plumbing; only the HTTP method differs
func (c *Client) seatAction(request mcp.CallToolRequest, method string) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	body := map[string]interface{}{
		"player_id": intArg(args, "player_id"),
		"dock_id":   intArg(args, "dock_id"),
	}

	var result service.ActionResult
	if err := c.apiCall(method, fmt.Sprintf("/api/games/%s/investors", gameID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("%s\n\n%s", result.Message, formatSnapshot(result.Game))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleLoadCargo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)
	cardsRaw, _ := args["card_ids"].([]interface{})
	side, _ := args["side"].(string)

	cardIDs := make([]string, 0, len(cardsRaw))
	for _, raw := range cardsRaw {
		if id, ok := raw.(string); ok {
			cardIDs = append(cardIDs, id)
		}
	}

	body := map[string]interface{}{
		"player_id": intArg(args, "player_id"),
		"dock_id":   intArg(args, "dock_id"),
		"card_ids":  cardIDs,
		"side":      side,
	}

	var result service.ActionResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/load-cargo", gameID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("%s\n\n%s", result.Message, formatSnapshot(result.Game))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleRemoveTimeCube(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	body := map[string]interface{}{
		"dock_id": intArg(args, "dock_id"),
		"amount":  intArg(args, "amount"),
	}

	var result service.ActionResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/remove-time-cube", gameID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("%s\n\n%s", result.Message, formatSnapshot(result.Game))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePayout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	body := map[string]interface{}{
		"dock_id": intArg(args, "dock_id"),
	}

	var result service.PayoutResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/payout", gameID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Ship departed. Payouts:\n")
	for _, p := range result.Payouts {
		b.WriteString(fmt.Sprintf("- Player %d: %d coins\n", p.PlayerID, p.Amount))
	}
	b.WriteString("\n")
	b.WriteString(formatSnapshot(result.Game))
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handlePassTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.turnAction(request, "pass")
}

func (c *Client) handleNextTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.turnAction(request, "next-turn")
}

func (c *Client) turnAction(request mcp.CallToolRequest, endpoint string) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	var result service.ActionResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/%s", gameID, endpoint), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("%s\n\n%s", result.Message, formatSnapshot(result.Game))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleSellCargo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)
	colour, _ := args["colour"].(string)

	body := map[string]interface{}{
		"player_id": intArg(args, "player_id"),
		"colour":    colour,
	}

	var result service.SellResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/sell", gameID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Sold %d %s cards for %d coins\n\n%s",
		result.CardsSold, colour, result.Value, formatSnapshot(result.Game))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleDrawCargo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	body := map[string]interface{}{
		"player_id": intArg(args, "player_id"),
	}

	var result service.ActionResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/draw", gameID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("%s\n\n%s", result.Message, formatSnapshot(result.Game))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleTakeMarketplaceCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)
	cardID, _ := args["card_id"].(string)

	body := map[string]interface{}{
		"player_id": intArg(args, "player_id"),
		"card_id":   cardID,
	}

	var result service.ActionResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/marketplace", gameID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("%s\n\n%s", result.Message, formatSnapshot(result.Game))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleRecordDelivery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)
	destination, _ := args["destination"].(string)

	body := map[string]interface{}{
		"player_id":   intArg(args, "player_id"),
		"destination": destination,
		"quantity":    intArg(args, "quantity"),
	}

	var result service.ActionResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/deliver", gameID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("%s\n\n%s", result.Message, formatSnapshot(result.Game))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleStandings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	var result service.StandingsResult
	if err := c.apiCall("GET", fmt.Sprintf("/api/games/%s/standings", gameID), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatStandings(&result)), nil
}

func (c *Client) handleMessageLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := toolArgs(request)
	gameID, _ := args["game_id"].(string)

	path := fmt.Sprintf("/api/games/%s/messages", gameID)
	if limit := intArg(args, "limit"); limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var response struct {
		Count    int              `json:"count"`
		Messages []engine.Message `json:"messages"`
	}
	if err := c.apiCall("GET", path, nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Game Log (%d entries, newest first):\n\n", response.Count)
	for _, m := range response.Messages {
		result += fmt.Sprintf("[%s] %s\n", m.Time.Format("15:04:05"), m.Text)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var rules []config.RulesInfo
	if err := c.apiCall("GET", "/api/rules", nil, &rules); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Rule Sets:\n\n"
	for _, r := range rules {
		result += fmt.Sprintf("- %s: %s (%d-%d players)\n",
			r.RulesID, r.Name, r.MinPlayers, r.MaxPlayers)
	}
	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSnapshot(snap *engine.GameSnapshot) string {
	if snap == nil {
		return "No game state available"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("State: %s | Weather: %d", snap.State, snap.Weather))
	if snap.CurrentPlayer != 0 {
		b.WriteString(fmt.Sprintf(" | Active player: %d", snap.CurrentPlayer))
	}
	b.WriteString("\n\nDocks:\n")

	shipsByID := make(map[int]*engine.Ship, len(snap.Ships))
	for _, s := range snap.Ships {
		shipsByID[s.ID] = s
	}

	for _, d := range snap.Docks {
		b.WriteString(fmt.Sprintf("- Dock %d", d.ID))
		if d.Locked {
			b.WriteString(" [locked]")
		}
		if d.ShipID != nil {
			if ship := shipsByID[*d.ShipID]; ship != nil {
				b.WriteString(fmt.Sprintf(": Ship %d %s", ship.ID, formatShip(ship)))
			}
		} else {
			b.WriteString(": empty berth")
		}
		if len(d.InvestorIDs) > 0 {
			b.WriteString(fmt.Sprintf(" | investors %v", d.InvestorIDs))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nPlayers:\n")
	for _, p := range snap.Players {
		b.WriteString(fmt.Sprintf("- Player %d (%d): %d coins, %d tokens, %d cards in hand\n",
			p.ID, p.Avatar, p.Coins, p.Tokens, len(p.Hand)))
	}

	b.WriteString(fmt.Sprintf("\nMarketplace: %d cards | Cargo deck: %d | Ship deck: %d | Departed: %d\n",
		len(snap.Marketplace), len(snap.CargoDeck), len(snap.ShipDeckIDs), len(snap.ShipDiscardIDs)))
	return b.String()
}

func formatShip(ship *engine.Ship) string {
	tonnage := "unlimited"
	if ship.Tonnage != engine.Unlimited {
		tonnage = fmt.Sprintf("%d/%d t", ship.CurrentTonnage(), ship.Tonnage)
	}
	capacity := "unlimited"
	if ship.CardCapacity != engine.Unlimited {
		capacity = fmt.Sprintf("%d/%d cards", ship.TotalCargoCards(), ship.CardCapacity)
	}
	ready := ""
	if ship.IsReadyToSail() {
		ready = ", READY TO SAIL"
	}
	return fmt.Sprintf("(%s, %s, %d cubes left%s)",
		tonnage, capacity, ship.TimeCubesRemaining, ready)
}

func formatStandings(result *service.StandingsResult) string {
	var b strings.Builder
	if result.GameOver {
		b.WriteString("Final Standings:\n")
	} else {
		b.WriteString("Current Standings:\n")
	}
	for _, s := range result.Standings {
		b.WriteString(fmt.Sprintf("%d. Player %d - %d coins\n", s.Rank, s.PlayerID, s.Coins))
	}
	if result.GameOver && len(result.Winners) > 0 {
		b.WriteString(fmt.Sprintf("\nWinners: %v\n", result.Winners))
	}
	return b.String()
}
