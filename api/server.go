package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/hey-amo/ShippingInvestors/game/service"
	"github.com/hey-amo/ShippingInvestors/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.GameService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Game lifecycle
	api.HandleFunc("/games", s.handleCreateGame).Methods("POST")
	api.HandleFunc("/games", s.handleListGames).Methods("GET")
	api.HandleFunc("/games/{id}", s.handleGetGame).Methods("GET")
	api.HandleFunc("/games/{id}", s.handleDeleteGame).Methods("DELETE")
	api.HandleFunc("/games/{id}/begin", s.handleBegin).Methods("POST")
	api.HandleFunc("/games/{id}/finish", s.handleFinish).Methods("POST")

	// Turn actions
	api.HandleFunc("/games/{id}/load-cargo", s.handleLoadCargo).Methods("POST")
	api.HandleFunc("/games/{id}/remove-time-cube", s.handleRemoveTimeCube).Methods("POST")
	api.HandleFunc("/games/{id}/investors", s.handleInvest).Methods("POST")
	api.HandleFunc("/games/{id}/investors", s.handleDivest).Methods("DELETE")
	api.HandleFunc("/games/{id}/payout", s.handlePayout).Methods("POST")
	api.HandleFunc("/games/{id}/pass", s.handlePass).Methods("POST")
	api.HandleFunc("/games/{id}/next-turn", s.handleNextTurn).Methods("POST")
	api.HandleFunc("/games/{id}/sell", s.handleSellCargo).Methods("POST")
	api.HandleFunc("/games/{id}/draw", s.handleDrawCargo).Methods("POST")
	api.HandleFunc("/games/{id}/marketplace", s.handleTakeMarketplaceCard).Methods("POST")
	api.HandleFunc("/games/{id}/deliver", s.handleRecordDelivery).Methods("POST")

	// Game state
	api.HandleFunc("/games/{id}/state", s.handleGetState).Methods("GET")
	api.HandleFunc("/games/{id}/standings", s.handleStandings).Methods("GET")
	api.HandleFunc("/games/{id}/messages", s.handleMessages).Methods("GET")

	// Rule sets
	api.HandleFunc("/rules", s.handleListRules).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	// Health check
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// broadcast pushes a fresh snapshot to WebSocket watchers of a game
func (s *Server) broadcast(gameID string, result *service.ActionResult) {
	if s.hub != nil && result != nil && result.Game != nil {
		s.hub.BroadcastState(gameID, result.Game)
	}
}

// Game Lifecycle Handlers

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RulesID string `json:"rules_id,omitempty"`
		Players int    `json:"players"`
	}

	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	info, err := s.service.CreateGame(r.Context(), req.RulesID, req.Players)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, info)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.service.ListGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Parse query parameters
	query := r.URL.Query()
	sortBy := query.Get("sort")    // "created", "accessed" (default)
	order := query.Get("order")    // "asc", "desc" (default: "desc")
	limitStr := query.Get("limit") // number of games to return

	if sortBy == "" {
		sortBy = "accessed"
	}
	if order == "" {
		order = "desc"
	}

	sort.Slice(games, func(i, j int) bool {
		var ti, tj time.Time
		if sortBy == "created" {
			ti, tj = games[i].CreatedAt, games[j].CreatedAt
		} else { // "accessed"
			ti, tj = games[i].LastAccessedAt, games[j].LastAccessedAt
		}

		if order == "asc" {
			return ti.Before(tj)
		}
		return ti.After(tj) // desc
	})

	limit := len(games)
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(games) {
			limit = l
		}
	}
	games = games[:limit]

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(games),
		"games": games,
		"sort":  sortBy,
		"order": order,
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	info, err := s.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	if err := s.service.DeleteGame(r.Context(), gameID); err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Game %s deleted", gameID),
	})
}

func (s *Server) handleBegin(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	result, err := s.service.Begin(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	result, err := s.service.Finish(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(gameID, "game_over", result)
	}
	respondJSON(w, http.StatusOK, result)
}

// Turn Action Handlers

func (s *Server) handleLoadCargo(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		PlayerID int      `json:"player_id"`
		DockID   int      `json:"dock_id"`
		CardIDs  []string `json:"card_ids"`
		Side     string   `json:"side,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.LoadCargo(r.Context(), gameID, req.PlayerID, req.DockID, req.CardIDs, req.Side)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)

	// Compact server log for observability
	fmt.Printf("[LOAD] game=%s player=%d dock=%d cards=%d\n",
		gameID, req.PlayerID, req.DockID, len(req.CardIDs))

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRemoveTimeCube(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		DockID int `json:"dock_id"`
		Amount int `json:"amount,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount == 0 {
		req.Amount = 1
	}

	result, err := s.service.RemoveTimeCube(r.Context(), gameID, req.DockID, req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleInvest(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		PlayerID int `json:"player_id"`
		DockID   int `json:"dock_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.Invest(r.Context(), gameID, req.PlayerID, req.DockID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleDivest(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		PlayerID int `json:"player_id"`
		DockID   int `json:"dock_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.Divest(r.Context(), gameID, req.PlayerID, req.DockID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handlePayout(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		DockID int `json:"dock_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.Payout(r.Context(), gameID, req.DockID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.hub != nil && result.Game != nil {
		s.hub.BroadcastState(gameID, result.Game)
	}

	// Compact server log for observability
	total := 0
	for _, p := range result.Payouts {
		total += p.Amount
	}
	fmt.Printf("[PAYOUT] game=%s dock=%d investors=%d total=%d\n",
		gameID, req.DockID, len(result.Payouts), total)

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	result, err := s.service.Pass(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleNextTurn(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	result, err := s.service.NextTurn(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSellCargo(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		PlayerID int    `json:"player_id"`
		Colour   string `json:"colour"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.SellCargo(r.Context(), gameID, req.PlayerID, req.Colour)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.hub != nil && result.Game != nil {
		s.hub.BroadcastState(gameID, result.Game)
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleDrawCargo(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		PlayerID int `json:"player_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.DrawCargo(r.Context(), gameID, req.PlayerID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleTakeMarketplaceCard(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		PlayerID int    `json:"player_id"`
		CardID   string `json:"card_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.TakeMarketplaceCard(r.Context(), gameID, req.PlayerID, req.CardID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecordDelivery(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	var req struct {
		PlayerID    int    `json:"player_id"`
		Destination string `json:"destination"`
		Quantity    int    `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	result, err := s.service.RecordDelivery(r.Context(), gameID, req.PlayerID, req.Destination, req.Quantity)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.broadcast(gameID, result)
	respondJSON(w, http.StatusOK, result)
}

// Game State Handlers

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	snapshot, err := s.service.GetState(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	standings, err := s.service.Standings(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, standings)
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	messages, err := s.service.Messages(r.Context(), gameID, limit)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(messages),
		"messages": messages,
	})
}

// Rule Set Handlers

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := s.service.ListRules(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, rules)
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "game parameter required", http.StatusBadRequest)
		return
	}

	// Verify the game exists
	if _, err := s.service.GetGame(context.Background(), gameID); err != nil {
		http.Error(w, "Invalid game", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, gameID)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
